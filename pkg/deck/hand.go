package deck

import (
	"strings"
)

// Hand represents a collection of cards
type Hand []*Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	if cmp := strings.Compare(string(h[i].Suit), string(h[j].Suit)); cmp != 0 {
		return cmp < 0
	}

	return TrickValue(h[i].Rank) < TrickValue(h[j].Rank) ||
		(TrickValue(h[i].Rank) == TrickValue(h[j].Rank) && h[i].Rank < h[j].Rank)
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card *Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// HasSuit returns true if the hand contains at least one card of the suit
func (h Hand) HasSuit(suit Suit) bool {
	return h.CountSuit(suit) > 0
}

// CountSuit returns the number of cards of the given suit in the hand
func (h Hand) CountSuit(suit Suit) int {
	count := 0
	for _, c := range h {
		if c.Suit == suit {
			count++
		}
	}

	return count
}

// OnlySuit returns true if every card in the hand is of the given suit
func (h Hand) OnlySuit(suit Suit) bool {
	return len(h) > 0 && h.CountSuit(suit) == len(h)
}

// Discard removes the card from the hand and reports whether it was found
func (h *Hand) Discard(card *Card) bool {
	newHand := make(Hand, 0, len(*h))
	found := false
	for _, c := range *h {
		if !found && c.Equal(card) {
			found = true
			continue
		}

		newHand = append(newHand, c)
	}

	*h = newHand
	return found
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
