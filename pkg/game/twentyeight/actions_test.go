package twentyeight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twentyeight-server/pkg/deck"
)

// TestApply_fullRound walks a complete round from the auction through the
// eighth trick. The hands are single-suited so every play is forced to be
// legal and the bid winner takes every trick on trump.
func TestApply_fullRound(t *testing.T) {
	a := assert.New(t)

	s := biddingRound(t,
		[numPlayers]string{"7h,8h,9h,10h", "7s,8s,9s,10s", "7c,8c,9c,10c", "7d,8d,9d,10d"},
		"11h,11s,11c,11d,12h,12s,12c,12d,13h,13s,13c,13d,14h,14s,14c,14d")

	s, _ = mustApply(t, s, passAction(0))
	s, _ = mustApply(t, s, bidAction(1, 16))
	s, _ = mustApply(t, s, passAction(2))
	s, _ = mustApply(t, s, passAction(3))
	s, _ = mustApply(t, s, passAction(0))
	require.Equal(t, PhaseTrumpSelection, s.Phase())

	s, _ = mustApply(t, s, Action{Kind: ActionSelectTrump, Position: 1, Card: deck.CardFromString("7s")})
	require.Equal(t, PhasePlaying, s.Phase())

	// trick one: seat 1 is void in hearts, asks for trump and must play it
	s, _ = mustApply(t, s, playAction(0, "13h"))
	s, _ = mustApply(t, s, Action{Kind: ActionAskTrump, Position: 1})
	s, _ = mustApply(t, s, playAction(1, "14s"))
	s, _ = mustApply(t, s, playAction(2, "13c"))
	s, _ = mustApply(t, s, playAction(3, "13d"))
	require.True(t, s.pendingTrickClear)
	require.Equal(t, 1, s.trickWinner)
	s, _ = mustApply(t, s, Action{Kind: ActionClearTrick})

	// seat 1 leads trump for the rest of the round and takes every trick
	spades := []string{"13s", "12s", "11s", "10s", "9s", "8s", "7s"}
	for trick := 0; trick < 7; trick++ {
		s, _ = mustApply(t, s, playAction(1, spades[trick]))
		s, _ = mustApply(t, s, playAction(2, deck.CardsToString(s.hands[2][:1])))
		s, _ = mustApply(t, s, playAction(3, deck.CardsToString(s.hands[3][:1])))
		s, _ = mustApply(t, s, playAction(0, deck.CardsToString(s.hands[0][:1])))

		var events []Event
		s, events = mustApply(t, s, Action{Kind: ActionClearTrick})

		if trick < 6 {
			a.Empty(events)
		} else {
			require.Len(t, events, 1)
			a.Equal(EventRoundOver, events[0].Type)
		}
	}

	a.Equal(PhaseGameOver, s.Phase())
	a.Equal(noPosition, s.CurrentTurn())

	outcome := s.Outcome()
	require.NotNil(t, outcome)
	a.Equal(1, outcome.BidWinner)
	a.Equal(16, outcome.Bid)
	a.Equal(1, outcome.BiddingTeam)
	a.Equal(deck.TotalPoints, outcome.BiddingTeamPoints)
	a.Equal(0, outcome.DefendingTeamPoints)
	a.True(outcome.BidMade)

	a.Equal(deck.TotalPoints, outcome.BiddingTeamPoints+outcome.DefendingTeamPoints)
	a.Equal([2]int{0, 8}, s.tricksWon)
}

func TestApply_resetRound(t *testing.T) {
	a := assert.New(t)

	s := playingRound(t, 1, 16, "7s", [numPlayers]string{
		"7h,8h,9h,10h,11h,12h,13h,14h",
		"7s,8s,9s,10s,11s,12s,13s,14s",
		"7c,8c,9c,10c,11c,12c,13c,14c",
		"7d,8d,9d,10d,11d,12d,13d,14d",
	})

	next, events, err := Apply(s, Action{Kind: ActionResetRound, Position: 0}, nil)
	a.NoError(err)
	a.Equal(PhaseLobby, next.Phase())
	a.Equal(EventRoundReset, events[0].Type)

	// the deal moves to the next seat
	a.Equal(0, next.DealerPosition())
	a.Len(next.Seats(), 4)
	a.Empty(next.Hand(0))

	// the original round is untouched
	a.Equal(PhasePlaying, s.Phase())
	a.Len(s.Hand(0), 8)

	// cannot reset out of the lobby
	_, _, err = Apply(next, Action{Kind: ActionResetRound, Position: 0}, nil)
	a.Equal(ErrInvalidPhase, err)
}

func TestApply_unknownActionKind(t *testing.T) {
	a := assert.New(t)

	s := NewRound(testSeats(), 0)
	_, _, err := Apply(s, Action{Kind: ActionKind(99)}, nil)
	a.Equal(ErrInvalidPhase, err)
}
