package twentyeight

import (
	"twentyeight-server/pkg/deck"
)

// EventType identifies something that happened while applying an action
type EventType string

// event constants
const (
	EventRoundStarted  EventType = "roundStarted"
	EventBidPlaced     EventType = "bidPlaced"
	EventBidPassed     EventType = "bidPassed"
	EventAuctionWon    EventType = "auctionWon"
	EventRedeal        EventType = "redeal"
	EventTrumpSelected EventType = "trumpSelected"
	EventTrumpRevealed EventType = "trumpRevealed"
	EventCardPlayed    EventType = "cardPlayed"
	EventTrickWon      EventType = "trickWon"
	EventRoundOver     EventType = "roundOver"
	EventRoundReset    EventType = "roundReset"
)

// Event is a record of a state change produced by Apply. The host turns
// these into table log messages; the Card is only set when it is public
// knowledge (a played card, or the trump card once revealed).
type Event struct {
	Type     EventType
	Position int
	Amount   int
	Card     *deck.Card
}
