package twentyeight

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"twentyeight-server/internal/rng"
	"twentyeight-server/pkg/deck"
	"twentyeight-server/pkg/playable"
)

// Game hosts rounds of 28 for a table. It adapts the pure Apply reducer
// to the playable contract and owns the timed post-trick clear.
type Game struct {
	options      Options
	rand         rng.Generator
	state        *RoundState
	idToPosition map[int64]int

	// results collects the outcome of every finished round
	results []*Outcome

	logger  logrus.FieldLogger
	logChan chan []*playable.LogMessage

	pendingDealerAction *pendingDealerAction

	// sendUpdate will send update if true
	sendUpdate bool

	// done is set once the table agrees to put the game away
	done bool
}

// NewGame returns a new game of 28 with the four seated players.
// seats must already be in position order 0 through 3.
func NewGame(logger logrus.FieldLogger, seats []Seat, opts Options) (*Game, error) {
	if len(seats) != numPlayers {
		return nil, ErrInsufficientPlayers
	}

	idToPosition := make(map[int64]int)
	for _, seat := range seats {
		idToPosition[seat.PlayerID] = seat.Position
	}

	randSource := opts.Rand
	if randSource == nil {
		randSource = rng.Crypto{}
	}

	g := &Game{
		options:      opts,
		rand:         randSource,
		state:        NewRound(seats, 0),
		idToPosition: idToPosition,
		logger:       logger,
		logChan:      make(chan []*playable.LogMessage, 256),
	}

	return g, nil
}

// Name returns "twenty-eight"
func (g *Game) Name() string {
	return "twenty-eight"
}

// LogChan returns a channel for sending log messages
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

// Start deals the first round
func (g *Game) Start() error {
	return g.applyAction(Action{Kind: ActionStartRound, Position: noPosition})
}

// Delay determines how often Tick() should be called
func (g *Game) Delay() time.Duration {
	return time.Millisecond * 250
}

// Tick runs any due dealer action through the reducer
func (g *Game) Tick() (bool, error) {
	if g.sendUpdate {
		g.sendUpdate = false
		return true, nil
	}

	if g.done {
		return false, nil
	}

	if g.pendingDealerAction == nil {
		return false, nil
	}

	if !time.Now().After(g.pendingDealerAction.ExecuteAfter) {
		return false, nil
	}

	action := g.pendingDealerAction.Action
	g.pendingDealerAction = nil

	switch action {
	case dealerActionClearTrick:
		if err := g.applyAction(Action{Kind: ActionClearTrick, Position: noPosition}); err != nil {
			// a reset got in first; the clear is stale
			g.logger.WithError(err).Debug("skipping stale trick clear")
			return false, nil
		}

		return true, nil
	case dealerActionClearGame:
		g.done = true
		close(g.logChan)
		g.logChan = nil
		return true, nil
	default:
		panic(fmt.Sprintf("unknown dealer action: %d", action))
	}
}

// Action performs an action
func (g *Game) Action(playerID int64, message *playable.PayloadIn) (playerResponse *playable.Response, updateState bool, err error) {
	pos, ok := g.idToPosition[playerID]
	if !ok {
		return nil, false, errors.New("player not found with that ID")
	}

	log := g.logger.WithField("playerID", playerID)

	switch message.Action {
	case "bid":
		amount, ok := message.AdditionalData.GetInt("amount")
		if !ok {
			return nil, false, errors.New("bid requires an amount")
		}

		log.WithField("amount", amount).Debug("player bids")
		if err := g.applyAction(Action{Kind: ActionPlaceBid, Position: pos, Amount: amount}); err != nil {
			return nil, false, err
		}
	case "pass":
		log.Debug("player passes")
		if err := g.applyAction(Action{Kind: ActionPlaceBid, Position: pos, Pass: true}); err != nil {
			return nil, false, err
		}
	case "selectTrump":
		if message.Card == nil {
			return nil, false, errors.New("expected a card")
		}

		log.Debug("player selects the trump card")
		if err := g.applyAction(Action{Kind: ActionSelectTrump, Position: pos, Card: message.Card}); err != nil {
			return nil, false, err
		}
	case "askTrump":
		log.Debug("player asks for trump")
		if err := g.applyAction(Action{Kind: ActionAskTrump, Position: pos}); err != nil {
			return nil, false, err
		}
	case "playCard":
		if message.Card == nil {
			return nil, false, errors.New("expected a card")
		}

		log.WithField("card", message.Card).Debug("play card")
		if err := g.applyAction(Action{Kind: ActionPlayCard, Position: pos, Card: message.Card}); err != nil {
			return nil, false, err
		}
	case "playAgain":
		// a reset cancels any scheduled trick clear before it lands
		g.pendingDealerAction = nil
		if err := g.applyAction(Action{Kind: ActionResetRound, Position: pos}); err != nil {
			return nil, false, err
		}

		if err := g.applyAction(Action{Kind: ActionStartRound, Position: noPosition}); err != nil {
			return nil, false, err
		}
	case "endGame":
		if g.state.Phase() != PhaseGameOver {
			return nil, false, ErrInvalidPhase
		}

		g.pendingDealerAction = &pendingDealerAction{
			Action:       dealerActionClearGame,
			ExecuteAfter: time.Now().Add(time.Second),
		}

		g.sendLogMessages(g.newLogMessage(playerID, nil, "{} ended the game"))
	default:
		return nil, false, fmt.Errorf("unknown action: %s", message.Action)
	}

	return playable.OK(), true, nil
}

// applyAction runs an action through the reducer, swaps in the new state
// and fans out the resulting events
func (g *Game) applyAction(action Action) error {
	next, events, err := Apply(g.state, action, g.rand)
	if err != nil {
		return err
	}

	g.state = next
	g.handleEvents(events)

	return nil
}

func (g *Game) handleEvents(events []Event) {
	messages := make([]*playable.LogMessage, 0, len(events))
	for _, event := range events {
		if msg := g.logMessageForEvent(event); msg != nil {
			messages = append(messages, msg)
		}

		switch event.Type {
		case EventTrickWon:
			g.pendingDealerAction = &pendingDealerAction{
				Action:       dealerActionClearTrick,
				ExecuteAfter: time.Now().Add(g.options.TrickClearDelay),
			}
		case EventRoundOver:
			g.results = append(g.results, g.state.Outcome())
			g.sendUpdate = true
		}
	}

	g.sendLogMessages(messages...)
}

func (g *Game) logMessageForEvent(event Event) *playable.LogMessage {
	playerID := g.playerIDAt(event.Position)

	switch event.Type {
	case EventRoundStarted:
		return g.newLogMessage(0, nil, "A round of 28 started")
	case EventBidPlaced:
		return g.newLogMessage(playerID, nil, "{} bid %d", event.Amount)
	case EventBidPassed:
		return g.newLogMessage(playerID, nil, "{} passed")
	case EventAuctionWon:
		return g.newLogMessage(playerID, nil, "{} won the bid at %d", event.Amount)
	case EventRedeal:
		return g.newLogMessage(0, nil, "Everyone passed; throwing the deal in")
	case EventTrumpSelected:
		return g.newLogMessage(playerID, nil, "{} put away the trump card")
	case EventTrumpRevealed:
		return g.newLogMessage(playerID, event.Card, "{} revealed the trump card")
	case EventCardPlayed:
		return g.newLogMessage(playerID, event.Card, "{} played a card")
	case EventTrickWon:
		return g.newLogMessage(playerID, nil, "{} won the trick (+%d)", event.Amount)
	case EventRoundOver:
		outcome := g.state.Outcome()
		if outcome.BidMade {
			return g.newLogMessage(0, nil, "The bidding team made their %d bid with %d points", outcome.Bid, outcome.BiddingTeamPoints)
		}

		return g.newLogMessage(0, nil, "The bidding team fell short of %d with %d points", outcome.Bid, outcome.BiddingTeamPoints)
	case EventRoundReset:
		return g.newLogMessage(0, nil, "Setting up the next round")
	}

	return nil
}

func (g *Game) playerIDAt(pos int) int64 {
	if seat, ok := g.state.seatAt(pos); ok {
		return seat.PlayerID
	}

	return 0
}

// GetEndOfGameDetails returns details at the end of the game
func (g *Game) GetEndOfGameDetails() (gameOverDetails *playable.GameOverDetails, isGameOver bool) {
	if !g.done {
		return nil, false
	}

	return &playable.GameOverDetails{
		Log: g.results,
	}, true
}

func (g *Game) sendLogMessages(msg ...*playable.LogMessage) {
	if len(msg) == 0 || g.logChan == nil {
		return
	}

	g.logChan <- msg
}

func (g *Game) newLogMessage(playerID int64, card *deck.Card, format string, a ...interface{}) *playable.LogMessage {
	var playerIDs []int64
	if playerID > 0 {
		playerIDs = []int64{playerID}
	}

	return &playable.LogMessage{
		UUID:      uuid.New().String(),
		PlayerIDs: playerIDs,
		Card:      card,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}
