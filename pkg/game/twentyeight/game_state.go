package twentyeight

import (
	"twentyeight-server/pkg/deck"
	"twentyeight-server/pkg/playable"
)

// GameState is the public view of the round.
// This is safe for all players (and spectators) to see: it never carries
// a hand, and it names the trump suit only once the reveal has happened.
type GameState struct {
	Phase             Phase              `json:"phase"`
	Players           []*GameStatePlayer `json:"players"`
	DealerPosition    int                `json:"dealerPosition"`
	CurrentTurn       int                `json:"currentTurn"`
	Bids              []Bid              `json:"bids"`
	HighestBid        int                `json:"highestBid"`
	BidWinner         int                `json:"bidWinner"`
	TrumpRevealed     bool               `json:"trumpRevealed"`
	TrumpSuit         deck.Suit          `json:"trumpSuit,omitempty"`
	TrumpAskedBy      int                `json:"trumpAskedBy"`
	CurrentTrick      []TrickPlay        `json:"currentTrick"`
	LastTrick         *CompletedTrick    `json:"lastTrick,omitempty"`
	TricksCompleted   int                `json:"tricksCompleted"`
	TeamTricks        [2]int             `json:"teamTricks"`
	TeamPoints        [2]int             `json:"teamPoints"`
	PendingTrickClear bool               `json:"pendingTrickClear"`
	Outcome           *Outcome           `json:"outcome,omitempty"`
}

// GameStatePlayer is the public state of a seat
type GameStatePlayer struct {
	PlayerID    int64  `json:"playerId"`
	Name        string `json:"name"`
	Position    int    `json:"position"`
	Team        int    `json:"team"`
	CardsInHand int    `json:"cardsInHand"`
	IsDealer    bool   `json:"isDealer"`
	IsBidWinner bool   `json:"isBidWinner"`
}

// Response is the per-player response format.
// Hand and TrumpCard are private and must only reach the intended player.
type Response struct {
	GameState *GameState `json:"gameState"`
	Hand      deck.Hand  `json:"hand"`
	TrumpCard *deck.Card `json:"trumpCard,omitempty"`
	IsTurn    bool       `json:"isTurn"`
}

func (s *RoundState) gameState() *GameState {
	players := make([]*GameStatePlayer, 0, len(s.seats))
	for _, seat := range s.seats {
		players = append(players, &GameStatePlayer{
			PlayerID:    seat.PlayerID,
			Name:        seat.Name,
			Position:    seat.Position,
			Team:        teamForPosition(seat.Position),
			CardsInHand: len(s.hands[seat.Position]),
			IsDealer:    seat.Position == s.dealerPos,
			IsBidWinner: seat.Position == s.bidWinner,
		})
	}

	var trumpSuit deck.Suit
	if s.trumpRevealed {
		trumpSuit = s.trumpCard.Suit
	}

	var lastTrick *CompletedTrick
	if s.pendingTrickClear && len(s.completedTricks) > 0 {
		trick := s.completedTricks[len(s.completedTricks)-1]
		trick.Plays = append([]TrickPlay{}, trick.Plays...)
		lastTrick = &trick
	}

	return &GameState{
		Phase:             s.phase,
		Players:           players,
		DealerPosition:    s.dealerPos,
		CurrentTurn:       s.CurrentTurn(),
		Bids:              append([]Bid{}, s.bids...),
		HighestBid:        s.highestBid,
		BidWinner:         s.bidWinner,
		TrumpRevealed:     s.trumpRevealed,
		TrumpSuit:         trumpSuit,
		TrumpAskedBy:      s.trumpAskedBy,
		CurrentTrick:      append([]TrickPlay{}, s.currentTrick...),
		LastTrick:         lastTrick,
		TricksCompleted:   len(s.completedTricks),
		TeamTricks:        s.tricksWon,
		TeamPoints:        s.points,
		PendingTrickClear: s.pendingTrickClear,
		Outcome:           s.Outcome(),
	}
}

// GetPlayerState returns the state for the given player.
// Unknown player IDs get the spectator view: public state, no hand.
func (g *Game) GetPlayerState(playerID int64) (*playable.Response, error) {
	state := g.state.gameState()

	response := &Response{
		GameState: state,
	}

	if pos, ok := g.idToPosition[playerID]; ok {
		response.Hand = g.state.Hand(pos)
		response.IsTurn = state.CurrentTurn == pos

		// the bid winner sees their concealed trump card; everyone sees
		// it after the reveal
		if g.state.trumpCard != nil && (g.state.trumpRevealed || pos == g.state.bidWinner) {
			response.TrumpCard = g.state.trumpCard.Clone()
		}
	}

	return &playable.Response{
		Key:   "game",
		Value: g.Name(),
		Data:  response,
	}, nil
}
