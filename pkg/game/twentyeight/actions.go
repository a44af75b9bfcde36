package twentyeight

import (
	"twentyeight-server/internal/rng"
	"twentyeight-server/pkg/deck"
)

// ActionKind identifies a round action
type ActionKind int

// action constants
const (
	ActionStartRound ActionKind = iota
	ActionPlaceBid
	ActionSelectTrump
	ActionAskTrump
	ActionPlayCard
	ActionClearTrick
	ActionResetRound
)

// Action is a single submitted action. Position is the acting seat;
// ClearTrick is dealer-originated and ignores it.
type Action struct {
	Kind     ActionKind
	Position int
	Amount   int
	Pass     bool
	Card     *deck.Card
}

// Apply validates the action against the state and returns the successor
// state along with the events it produced. On a rejection the input state
// is returned untouched and the error names the reason. Apply is a pure
// function of (state, action, generator): the host is responsible for
// serializing concurrent submissions.
func Apply(state *RoundState, action Action, g rng.Generator) (*RoundState, []Event, error) {
	next := state.Clone()

	events, err := next.apply(action, g)
	if err != nil {
		return state, nil, err
	}

	return next, events, nil
}

func (s *RoundState) apply(action Action, g rng.Generator) ([]Event, error) {
	switch action.Kind {
	case ActionStartRound:
		return s.applyStartRound(g)
	case ActionPlaceBid:
		return s.applyPlaceBid(action, g)
	case ActionSelectTrump:
		return s.applySelectTrump(action)
	case ActionAskTrump:
		return s.applyAskTrump(action)
	case ActionPlayCard:
		return s.applyPlayCard(action)
	case ActionClearTrick:
		return s.applyClearTrick()
	case ActionResetRound:
		return s.applyResetRound()
	}

	return nil, ErrInvalidPhase
}

func (s *RoundState) applyStartRound(g rng.Generator) ([]Event, error) {
	if s.phase != PhaseLobby {
		return nil, ErrInvalidPhase
	}

	if len(s.seats) != numPlayers {
		return nil, ErrInsufficientPlayers
	}

	s.deal(g)

	return []Event{{Type: EventRoundStarted, Position: s.dealerPos}}, nil
}

func (s *RoundState) applyPlaceBid(action Action, g rng.Generator) ([]Event, error) {
	if s.phase != PhaseBidding {
		return nil, ErrInvalidPhase
	}

	if action.Position != s.currentBidder {
		return nil, ErrInvalidTurn
	}

	if action.Pass {
		return s.applyPass(action.Position, g)
	}

	if !isValidBidAmount(action.Amount) {
		return nil, ErrInvalidBidAmount
	}

	if s.highestBid > 0 && action.Amount <= s.highestBid {
		return nil, ErrBidNotHigherThanCurrent
	}

	if !s.canBid(action.Position) {
		return nil, ErrTeamBidRestricted
	}

	s.bids = append(s.bids, Bid{Position: action.Position, Amount: action.Amount})
	s.highestBid = action.Amount
	s.bidWinner = action.Position
	s.passCount = 0
	s.currentBidder = nextPosition(s.currentBidder)

	return []Event{{Type: EventBidPlaced, Position: action.Position, Amount: action.Amount}}, nil
}

func (s *RoundState) applyPass(pos int, g rng.Generator) ([]Event, error) {
	s.bids = append(s.bids, Bid{Position: pos, Pass: true})
	s.passCount++

	events := []Event{{Type: EventBidPassed, Position: pos}}

	// three consecutive passes lock in the standing high bid
	if s.bidWinner != noPosition && s.passCount >= numPlayers-1 {
		s.phase = PhaseTrumpSelection
		s.currentBidder = noPosition
		return append(events, Event{Type: EventAuctionWon, Position: s.bidWinner, Amount: s.highestBid}), nil
	}

	// nobody ever committed; re-deal with the button advanced
	if s.bidWinner == noPosition && s.passCount >= numPlayers {
		s.dealerPos = nextPosition(s.dealerPos)
		s.deal(g)
		return append(events, Event{Type: EventRedeal, Position: s.dealerPos}), nil
	}

	s.currentBidder = nextPosition(s.currentBidder)
	return events, nil
}

func (s *RoundState) applySelectTrump(action Action) ([]Event, error) {
	if s.phase != PhaseTrumpSelection {
		return nil, ErrInvalidPhase
	}

	if action.Position != s.bidWinner {
		return nil, ErrInvalidTurn
	}

	if !s.hands[action.Position].HasCard(action.Card) {
		return nil, ErrCardNotInPlayersHand
	}

	// the card stays in the bid winner's hand, tagged as the trump card
	s.trumpCard = action.Card.Clone()
	s.trumpRevealed = false

	s.dealRemaining()

	s.phase = PhasePlaying
	s.currentPlayer = nextPosition(s.dealerPos)

	return []Event{{Type: EventTrumpSelected, Position: action.Position}}, nil
}

func (s *RoundState) applyAskTrump(action Action) ([]Event, error) {
	if s.phase != PhasePlaying {
		return nil, ErrInvalidPhase
	}

	if s.pendingTrickClear {
		return nil, ErrTrickDisplayLocked
	}

	if action.Position != s.currentPlayer {
		return nil, ErrInvalidTurn
	}

	if s.trumpRevealed {
		return nil, ErrTrumpAlreadyRevealed
	}

	if len(s.currentTrick) == 0 {
		return nil, ErrAskTrumpWhileLeading
	}

	leadSuit := s.currentTrick[0].Card.Suit
	if s.hands[action.Position].HasSuit(leadSuit) {
		return nil, ErrMustFollowLeadSuit
	}

	s.trumpRevealed = true
	s.trumpAskedBy = action.Position
	s.trumpPlayedAfterAsk = false

	return []Event{{Type: EventTrumpRevealed, Position: action.Position, Card: s.trumpCard}}, nil
}

func (s *RoundState) applyPlayCard(action Action) ([]Event, error) {
	if s.phase != PhasePlaying {
		return nil, ErrInvalidPhase
	}

	if s.pendingTrickClear {
		return nil, ErrTrickDisplayLocked
	}

	if action.Position != s.currentPlayer {
		return nil, ErrInvalidTurn
	}

	hand := s.hands[action.Position]
	if !hand.HasCard(action.Card) {
		return nil, ErrCardNotInPlayersHand
	}

	if err := s.canPlayCard(action.Position, action.Card); err != nil {
		return nil, err
	}

	s.hands[action.Position].Discard(action.Card)
	s.currentTrick = append(s.currentTrick, TrickPlay{Position: action.Position, Card: action.Card.Clone()})

	events := []Event{{Type: EventCardPlayed, Position: action.Position, Card: action.Card}}

	// playing the concealed trump card exposes it
	if !s.trumpRevealed && action.Card.Equal(s.trumpCard) {
		s.trumpRevealed = true
		events = append(events, Event{Type: EventTrumpRevealed, Position: action.Position, Card: s.trumpCard})
	}

	if s.trumpAskedBy == action.Position && !s.trumpPlayedAfterAsk && action.Card.Suit == s.trumpCard.Suit {
		s.trumpPlayedAfterAsk = true
	}

	if len(s.currentTrick) == numPlayers {
		events = append(events, s.resolveTrick())
	} else {
		s.currentPlayer = nextPosition(s.currentPlayer)
	}

	return events, nil
}

func (s *RoundState) applyClearTrick() ([]Event, error) {
	if s.phase != PhasePlaying || !s.pendingTrickClear {
		return nil, ErrInvalidPhase
	}

	s.currentTrick = nil
	s.pendingTrickClear = false
	s.currentPlayer = s.trickWinner
	s.trickWinner = noPosition

	// the asker's obligation does not survive the trick
	s.trumpPlayedAfterAsk = true

	if len(s.completedTricks) == tricksPerRound {
		s.phase = PhaseGameOver
		s.currentPlayer = noPosition
		s.outcome = s.buildOutcome()

		return []Event{{Type: EventRoundOver, Position: s.bidWinner, Amount: s.highestBid}}, nil
	}

	return nil, nil
}

func (s *RoundState) applyResetRound() ([]Event, error) {
	if s.phase == PhaseLobby {
		return nil, ErrInvalidPhase
	}

	seats := s.seats
	dealerPos := nextPosition(s.dealerPos)

	*s = *NewRound(seats, dealerPos)

	return []Event{{Type: EventRoundReset, Position: dealerPos}}, nil
}
