package twentyeight

import (
	"twentyeight-server/pkg/deck"
)

// category bases keep trump plays above lead-suit plays above everything else
const (
	trumpRankBase = 1000
	leadRankBase  = 100
)

// rankedValue scores a play for trick resolution. Trump only counts once
// it has been revealed; until then the trick is decided on the lead suit.
func rankedValue(card *deck.Card, leadSuit deck.Suit, trumpSuit deck.Suit, trumpLive bool) int {
	if trumpLive && card.Suit == trumpSuit {
		return trumpRankBase + deck.TrickValue(card.Rank)
	}

	if card.Suit == leadSuit {
		return leadRankBase + deck.TrickValue(card.Rank)
	}

	return 0
}

// winningPlay scans the plays in order and keeps the first play that
// strictly exceeds the running maximum, so an exact tie keeps the
// earlier play. That is the canonical tie-break.
func winningPlay(plays []TrickPlay, trumpSuit deck.Suit, trumpLive bool) int {
	leadSuit := plays[0].Card.Suit

	winner := 0
	best := rankedValue(plays[0].Card, leadSuit, trumpSuit, trumpLive)
	for i := 1; i < len(plays); i++ {
		if v := rankedValue(plays[i].Card, leadSuit, trumpSuit, trumpLive); v > best {
			best = v
			winner = i
		}
	}

	return winner
}

// resolveTrick archives the completed trick, credits the winning team and
// opens the post-trick display window. The trick is cleared by a
// scheduled ClearTrick action, not here.
func (s *RoundState) resolveTrick() Event {
	winner := s.currentTrick[winningPlay(s.currentTrick, s.trumpCard.Suit, s.trumpRevealed)].Position

	points := 0
	for _, play := range s.currentTrick {
		points += deck.PointValue(play.Card.Rank)
	}

	team := teamForPosition(winner)
	s.tricksWon[team]++
	s.points[team] += points

	s.completedTricks = append(s.completedTricks, CompletedTrick{
		Plays:  append([]TrickPlay{}, s.currentTrick...),
		Winner: winner,
		Points: points,
	})

	s.pendingTrickClear = true
	s.trickWinner = winner

	return Event{Type: EventTrickWon, Position: winner, Amount: points}
}
