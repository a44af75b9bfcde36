package deck

// TotalPoints is the point value of the full deck. The game takes its
// name from this number.
const TotalPoints = 28

// trumpStrengthBonus lifts any trump-suit card above every plain card
// when ranking a hand for display
const trumpStrengthBonus = 100

// TrickValue returns the base trick strength of a rank.
// Jacks are high, then nines, then aces and tens.
func TrickValue(rank int) int {
	switch rank {
	case Jack:
		return 3
	case 9:
		return 2
	case Ace, 10:
		return 1
	default:
		return 0
	}
}

// PointValue returns the scoring value of a rank.
// The tables are the same: J=3, 9=2, A=1, 10=1, everything else 0.
func PointValue(rank int) int {
	return TrickValue(rank)
}

// CardStrength ranks a card for display and heuristics. Trick
// resolution uses its own lead/trump category ranking instead.
func CardStrength(card *Card, trumpSuit Suit) int {
	strength := TrickValue(card.Rank)
	if card.Suit == trumpSuit {
		strength += trumpStrengthBonus
	}

	return strength
}
