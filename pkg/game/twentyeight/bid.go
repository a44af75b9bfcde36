package twentyeight

// isValidBidAmount returns true if the amount is inside the 14-28 window
func isValidBidAmount(amount int) bool {
	return amount >= minBid && amount <= maxBid
}

// canBid enforces the partnership restriction: while a player's own team
// holds the bid, they may only raise if an opposing-team numeric bid has
// been logged after the bid winner's winning bid. Cross-team bids are
// always allowed.
func (s *RoundState) canBid(pos int) bool {
	if s.bidWinner == noPosition {
		return true
	}

	winningTeam := teamForPosition(s.bidWinner)
	if teamForPosition(pos) != winningTeam {
		return true
	}

	// the winning bid is the most recent numeric bid in the log
	winningIndex := -1
	for i := len(s.bids) - 1; i >= 0; i-- {
		if !s.bids[i].Pass {
			winningIndex = i
			break
		}
	}

	for _, bid := range s.bids[winningIndex+1:] {
		if !bid.Pass && teamForPosition(bid.Position) != winningTeam {
			return true
		}
	}

	return false
}
