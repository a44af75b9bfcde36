package twentyeight

import "time"

// dealerAction is an action the "dealer" takes on a timer, such as clearing a
// completed trick off the table
type dealerAction int

const (
	dealerActionClearTrick dealerAction = iota
	dealerActionClearGame
)

type pendingDealerAction struct {
	Action       dealerAction
	ExecuteAfter time.Time
}
