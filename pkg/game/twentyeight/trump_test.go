package twentyeight

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"twentyeight-server/pkg/deck"
)

func TestApply_selectTrump(t *testing.T) {
	a := assert.New(t)

	s := biddingRound(t,
		[numPlayers]string{"7h,8h,9h,10h", "7s,8s,9s,10s", "7c,8c,9c,10c", "7d,8d,9d,10d"},
		"11h,11s,11c,11d,12h,12s,12c,12d,13h,13s,13c,13d,14h,14s,14c,14d")

	s, _ = mustApply(t, s, bidAction(0, 14))
	s, _ = mustApply(t, s, passAction(1))
	s, _ = mustApply(t, s, passAction(2))
	s, _ = mustApply(t, s, passAction(3))
	a.Equal(PhaseTrumpSelection, s.Phase())

	// only the bid winner selects
	_, _, err := Apply(s, Action{Kind: ActionSelectTrump, Position: 1, Card: deck.CardFromString("7s")}, nil)
	a.Equal(ErrInvalidTurn, err)

	// the card must come from the four dealt cards
	_, _, err = Apply(s, Action{Kind: ActionSelectTrump, Position: 0, Card: deck.CardFromString("14h")}, nil)
	a.Equal(ErrCardNotInPlayersHand, err)

	s, events := mustApply(t, s, Action{Kind: ActionSelectTrump, Position: 0, Card: deck.CardFromString("7h")})
	a.Equal(PhasePlaying, s.Phase())
	a.Equal(EventTrumpSelected, events[0].Type)
	a.False(s.trumpRevealed)

	// the event never exposes the chosen card
	a.Nil(events[0].Card)

	// the rest of the deck goes out and the seat after the dealer leads
	a.Empty(s.drawPile)
	for pos := 0; pos < numPlayers; pos++ {
		a.Len(s.Hand(pos), 8)
	}
	a.Equal(0, s.CurrentTurn())

	// the trump card stays in the bid winner's hand
	a.True(s.hands[0].HasCard(deck.CardFromString("7h")))
}

func TestApply_askTrump(t *testing.T) {
	a := assert.New(t)

	s := playingRound(t, 2, 16, "14s", [numPlayers]string{
		"7h,8h,9h,10h,11h,12h,13h,14h",
		"7s,8s,9s,10s,11s,12s,13s,7c",
		"8c,9c,10c,11c,12c,13c,14c,14s",
		"7d,8d,9d,10d,11d,12d,13d,14d",
	})

	// the trick leader cannot ask
	_, _, err := Apply(s, Action{Kind: ActionAskTrump, Position: 0}, nil)
	a.Equal(ErrAskTrumpWhileLeading, err)

	s, _ = mustApply(t, s, playAction(0, "13h"))

	// out of turn
	_, _, err = Apply(s, Action{Kind: ActionAskTrump, Position: 2}, nil)
	a.Equal(ErrInvalidTurn, err)

	s, events := mustApply(t, s, Action{Kind: ActionAskTrump, Position: 1})
	a.True(s.trumpRevealed)
	a.Equal(1, s.trumpAskedBy)
	a.Equal(EventTrumpRevealed, events[0].Type)
	a.Equal(deck.CardFromString("14s").ID(), events[0].Card.ID())

	// cannot ask twice
	_, _, err = Apply(s, Action{Kind: ActionAskTrump, Position: 1}, nil)
	a.Equal(ErrTrumpAlreadyRevealed, err)
}

func TestApply_askTrump_requiresVoidInLeadSuit(t *testing.T) {
	a := assert.New(t)

	s := playingRound(t, 2, 16, "14s", [numPlayers]string{
		"7h,8h,9h,10h,11h,12h,13h,7s",
		"8s,9s,10s,11s,12s,13s,7c,14h",
		"8c,9c,10c,11c,12c,13c,14c,14s",
		"7d,8d,9d,10d,11d,12d,13d,14d",
	})

	s, _ = mustApply(t, s, playAction(0, "13h"))

	// seat 1 still holds a heart, so the ask is rejected
	_, _, err := Apply(s, Action{Kind: ActionAskTrump, Position: 1}, nil)
	a.Equal(ErrMustFollowLeadSuit, err)
}

func TestApply_askObligation(t *testing.T) {
	a := assert.New(t)

	s := playingRound(t, 2, 16, "14s", [numPlayers]string{
		"7h,8h,9h,10h,11h,12h,13h,14h",
		"7s,8s,9s,10s,11s,12s,13s,7c",
		"8c,9c,10c,11c,12c,13c,14c,14s",
		"7d,8d,9d,10d,11d,12d,13d,14d",
	})

	s, _ = mustApply(t, s, playAction(0, "13h"))
	s, _ = mustApply(t, s, Action{Kind: ActionAskTrump, Position: 1})

	// seat 1 asked while holding trump: an off-suit play is rejected
	_, _, err := Apply(s, playAction(1, "7c"), nil)
	a.Equal(ErrTrumpAskedMustFollowTrump, err)

	s, _ = mustApply(t, s, playAction(1, "8s"))
	a.True(s.trumpPlayedAfterAsk)
}

func TestCanPlayCard_followSuit(t *testing.T) {
	a := assert.New(t)

	s := playingRound(t, 1, 16, "7s", [numPlayers]string{
		"7h,8h,9h,10h,11h,12h,13h,14h",
		"7s,8s,9s,10s,11s,12s,13s,7c",
		"8c,9c,10c,11c,12c,13c,14c,14s",
		"7d,8d,9d,10d,11d,12d,13d,14d",
	})
	s.trumpRevealed = true

	s, _ = mustApply(t, s, playAction(0, "13h"))

	// seat 1 holds no hearts; any card is legal
	s, _ = mustApply(t, s, playAction(1, "7c"))

	// a mirror of the trump card held by another seat is not the trump card
	s, _ = mustApply(t, s, playAction(2, "14s"))

	a.Len(s.currentTrick, 3)

	// seat 3 holds no hearts either
	_, _, err := Apply(s, playAction(3, "7d"), nil)
	a.NoError(err)
}

func TestCanPlayCard_mustFollowLeadSuit(t *testing.T) {
	a := assert.New(t)

	s := playingRound(t, 1, 16, "7s", [numPlayers]string{
		"7h,8h,9h,10h,11h,12h,13h,14h",
		"7s,8s,9s,10s,11s,12s,13s,14h",
		"7c,8c,9c,10c,11c,12c,13c,14c",
		"7d,8d,9d,10d,11d,12d,13d,14d",
	})

	s, _ = mustApply(t, s, playAction(0, "13h"))

	// seat 1 holds the ace of hearts, so a spade is rejected
	_, _, err := Apply(s, playAction(1, "8s"), nil)
	a.Equal(ErrMustFollowLeadSuit, err)

	_, _, err = Apply(s, playAction(1, "14h"), nil)
	a.NoError(err)
}

func TestCanPlayCard_hiddenTrumpLeadRestriction(t *testing.T) {
	a := assert.New(t)

	s := playingRound(t, 0, 16, "7s", [numPlayers]string{
		"7s,8s,9h,10h,11h,12h,13h,14h",
		"7h,8h,9s,10s,11s,12s,13s,14s",
		"7c,8c,9c,10c,11c,12c,13c,14c",
		"7d,8d,9d,10d,11d,12d,13d,14d",
	})

	// before the reveal, the bid winner may not lead the trump suit
	_, _, err := Apply(s, playAction(0, "8s"), nil)
	a.Equal(ErrTrumpHiddenLeadRestricted, err)

	// nor lead the concealed trump card itself
	_, _, err = Apply(s, playAction(0, "7s"), nil)
	a.Equal(ErrTrumpHiddenLeadRestricted, err)

	// any other suit is fine
	_, _, err = Apply(s, playAction(0, "9h"), nil)
	a.NoError(err)

	// after the reveal the restriction is gone
	s.trumpRevealed = true
	_, _, err = Apply(s, playAction(0, "8s"), nil)
	a.NoError(err)
}

func TestCanPlayCard_hiddenTrumpLeadAllowedWhenOnlySuit(t *testing.T) {
	a := assert.New(t)

	s := playingRound(t, 0, 16, "7s", [numPlayers]string{
		"7s,8s,9s,10s,11s,12s,13s,14s",
		"7h,8h,9h,10h,11h,12h,13h,14h",
		"7c,8c,9c,10c,11c,12c,13c,14c",
		"7d,8d,9d,10d,11d,12d,13d,14d",
	})

	// the bid winner's whole hand is trump, so leading it is legal
	_, _, err := Apply(s, playAction(0, "8s"), nil)
	a.NoError(err)
}

func TestCanPlayCard_concealedTrumpCardStaysBack(t *testing.T) {
	a := assert.New(t)

	s := playingRound(t, 1, 16, "7s", [numPlayers]string{
		"7h,8h,9h,10h,11h,12h,13h,14h",
		"7s,8s,9s,10s,11s,12s,13s,7c",
		"8c,9c,10c,11c,12c,13c,14c,14s",
		"7d,8d,9d,10d,11d,12d,13d,14d",
	})

	s, _ = mustApply(t, s, playAction(0, "13h"))

	// seat 1 is void in hearts but holds other spades, so the concealed
	// trump card itself must stay back
	_, _, err := Apply(s, playAction(1, "7s"), nil)
	a.Equal(ErrTrumpHiddenLeadRestricted, err)

	_, _, err = Apply(s, playAction(1, "8s"), nil)
	a.NoError(err)
}

func TestApply_playingConcealedTrumpCardRevealsIt(t *testing.T) {
	a := assert.New(t)

	s := playingRound(t, 1, 16, "7s", [numPlayers]string{
		"7h,8h,9h,10h,11h,12h,13h,14h",
		"7s,8c,9c,10c,11c,12c,13c,14c",
		"8s,9s,10s,11s,12s,13s,14s,7c",
		"7d,8d,9d,10d,11d,12d,13d,14d",
	})

	s, _ = mustApply(t, s, playAction(0, "13h"))

	// the trump card is seat 1's only spade, so playing it is legal and
	// exposes the trump suit
	s, events := mustApply(t, s, playAction(1, "7s"))
	a.True(s.trumpRevealed)
	a.Len(events, 2)
	a.Equal(EventCardPlayed, events[0].Type)
	a.Equal(EventTrumpRevealed, events[1].Type)
}
