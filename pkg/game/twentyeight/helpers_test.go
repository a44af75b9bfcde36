package twentyeight

import (
	"testing"

	"github.com/stretchr/testify/require"

	"twentyeight-server/pkg/deck"
)

func testSeats() []Seat {
	return []Seat{
		{PlayerID: 101, Name: "alice", Position: 0},
		{PlayerID: 102, Name: "bob", Position: 1},
		{PlayerID: 103, Name: "carol", Position: 2},
		{PlayerID: 104, Name: "dave", Position: 3},
	}
}

func handFromString(t *testing.T, s string) deck.Hand {
	t.Helper()

	cards := deck.CardsFromString(s)
	require.NotEmpty(t, cards)
	for _, card := range cards {
		require.NotNil(t, card)
	}

	return cards
}

// biddingRound returns a round in the bidding phase with dealer at seat 3,
// so seat 0 opens the auction. Each player holds the given four cards and
// the drawPile is dealt out in seat order 0,1,2,3 repeating.
func biddingRound(t *testing.T, hands [numPlayers]string, drawPile string) *RoundState {
	t.Helper()

	s := NewRound(testSeats(), 3)
	s.phase = PhaseBidding
	s.currentBidder = 0
	for i, h := range hands {
		s.hands[i] = handFromString(t, h)
	}
	if drawPile != "" {
		s.drawPile = handFromString(t, drawPile)
	}

	return s
}

// playingRound returns a round in the playing phase with dealer at seat 3,
// seat 0 leading the first trick, and the trump card still hidden.
func playingRound(t *testing.T, bidWinner, bid int, trumpCard string, hands [numPlayers]string) *RoundState {
	t.Helper()

	s := NewRound(testSeats(), 3)
	s.phase = PhasePlaying
	s.currentBidder = noPosition
	s.bidWinner = bidWinner
	s.highestBid = bid
	s.trumpCard = deck.CardFromString(trumpCard)
	require.NotNil(t, s.trumpCard)
	s.currentPlayer = 0
	for i, h := range hands {
		s.hands[i] = handFromString(t, h)
	}

	return s
}

// mustApply applies the action and fails the test on a rejection
func mustApply(t *testing.T, s *RoundState, action Action) (*RoundState, []Event) {
	t.Helper()

	next, events, err := Apply(s, action, nil)
	require.NoError(t, err)
	require.NotNil(t, next)

	return next, events
}

func bidAction(pos, amount int) Action {
	return Action{Kind: ActionPlaceBid, Position: pos, Amount: amount}
}

func passAction(pos int) Action {
	return Action{Kind: ActionPlaceBid, Position: pos, Pass: true}
}

func playAction(pos int, card string) Action {
	return Action{Kind: ActionPlayCard, Position: pos, Card: deck.CardFromString(card)}
}
