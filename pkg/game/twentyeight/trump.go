package twentyeight

import (
	"twentyeight-server/pkg/deck"
)

// canPlayCard returns nil if the card is a legal play for the position.
// The turn and hand-membership checks happen before this is called.
func (s *RoundState) canPlayCard(pos int, card *deck.Card) error {
	hand := s.hands[pos]
	trumpSuit := s.trumpCard.Suit

	if len(s.currentTrick) == 0 {
		// while the trump card is hidden, the bid winner may not lead its
		// suit unless their entire hand is that suit
		if !s.trumpRevealed && pos == s.bidWinner && card.Suit == trumpSuit && !hand.OnlySuit(trumpSuit) {
			return ErrTrumpHiddenLeadRestricted
		}

		return nil
	}

	leadSuit := s.currentTrick[0].Card.Suit
	if hand.HasSuit(leadSuit) && card.Suit != leadSuit {
		return ErrMustFollowLeadSuit
	}

	// the concealed trump card stays back while the bid winner holds
	// another card of its suit
	if !s.trumpRevealed && pos == s.bidWinner && card.Equal(s.trumpCard) && hand.CountSuit(trumpSuit) > 1 {
		return ErrTrumpHiddenLeadRestricted
	}

	// the player who asked for trump owes a trump-suit card if they hold one
	if s.trumpAskedBy == pos && !s.trumpPlayedAfterAsk && hand.HasSuit(trumpSuit) && card.Suit != trumpSuit {
		return ErrTrumpAskedMustFollowTrump
	}

	return nil
}
