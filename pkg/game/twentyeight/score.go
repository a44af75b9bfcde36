package twentyeight

// Outcome is the result of a finished round. The two team totals always
// sum to the full 28 points of the deck.
type Outcome struct {
	BidWinner           int  `json:"bidWinner"`
	Bid                 int  `json:"bid"`
	BiddingTeam         int  `json:"biddingTeam"`
	BiddingTeamPoints   int  `json:"biddingTeamPoints"`
	DefendingTeamPoints int  `json:"defendingTeamPoints"`
	BidMade             bool `json:"bidMade"`
}

// buildOutcome computes the round result after the eighth trick
func (s *RoundState) buildOutcome() *Outcome {
	biddingTeam := teamForPosition(s.bidWinner)
	bidderPoints := s.points[biddingTeam]

	return &Outcome{
		BidWinner:           s.bidWinner,
		Bid:                 s.highestBid,
		BiddingTeam:         biddingTeam,
		BiddingTeamPoints:   bidderPoints,
		DefendingTeamPoints: s.points[1-biddingTeam],
		BidMade:             bidderPoints >= s.highestBid,
	}
}
