package twentyeight

import (
	"twentyeight-server/internal/rng"
	"twentyeight-server/pkg/deck"
)

// Phase represents where the round is in its life cycle
type Phase string

// phase constants
const (
	PhaseLobby          Phase = "lobby"
	PhaseBidding        Phase = "bidding"
	PhaseTrumpSelection Phase = "trumpSelection"
	PhasePlaying        Phase = "playing"
	PhaseGameOver       Phase = "gameOver"
)

// numPlayers is always four; 28 is a fixed-partnership game
const numPlayers = 4

// tricksPerRound is 32 cards divided among 4 players
const tricksPerRound = 8

// bid range
const (
	minBid = 14
	maxBid = 28
)

// noPosition marks an unset seat reference (bid winner, asker, etc.)
const noPosition = -1

// Seat is a seated player. Team membership is derived from the position:
// positions 0 and 2 are one partnership, 1 and 3 the other.
type Seat struct {
	PlayerID int64  `json:"playerId"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// teamForPosition returns the partnership (0 or 1) for a seat position
func teamForPosition(pos int) int {
	return pos % 2
}

// nextPosition returns the seat to the left
func nextPosition(pos int) int {
	return (pos + 1) % numPlayers
}

// Bid is a single entry in the ordered bid log
type Bid struct {
	Position int  `json:"position"`
	Amount   int  `json:"amount"`
	Pass     bool `json:"pass"`
}

// TrickPlay is a single card played into a trick
type TrickPlay struct {
	Position int        `json:"position"`
	Card     *deck.Card `json:"card"`
}

// CompletedTrick is an archived trick with its winner and point value
type CompletedTrick struct {
	Plays  []TrickPlay `json:"plays"`
	Winner int         `json:"winner"`
	Points int         `json:"points"`
}

// RoundState is the complete state of one round of 28.
// It is a value: Apply() clones it and returns the successor, so a held
// reference never changes underneath the caller.
type RoundState struct {
	phase     Phase
	seats     []Seat
	dealerPos int

	hands    [numPlayers]deck.Hand
	drawPile deck.Hand // second half of the deal, held back until trump selection

	currentBidder int
	highestBid    int // 0 until the first numeric bid
	bidWinner     int
	passCount     int
	bids          []Bid

	trumpCard           *deck.Card
	trumpRevealed       bool
	trumpAskedBy        int
	trumpPlayedAfterAsk bool

	currentTrick      []TrickPlay
	completedTricks   []CompletedTrick
	currentPlayer     int
	pendingTrickClear bool
	trickWinner       int

	tricksWon [2]int
	points    [2]int

	outcome *Outcome
}

// NewRound returns a round in the lobby phase. Seats may still be filling
// up; StartRound enforces the four-player requirement.
func NewRound(seats []Seat, dealerPos int) *RoundState {
	return &RoundState{
		phase:         PhaseLobby,
		seats:         append([]Seat{}, seats...),
		dealerPos:     dealerPos % numPlayers,
		currentBidder: noPosition,
		bidWinner:     noPosition,
		trumpAskedBy:  noPosition,
		currentPlayer: noPosition,
		trickWinner:   noPosition,
	}
}

// Clone returns a deep copy of the round state.
// Cards are never mutated, so sharing card pointers is safe.
func (s *RoundState) Clone() *RoundState {
	next := *s

	next.seats = append([]Seat{}, s.seats...)
	for i := range s.hands {
		next.hands[i] = s.hands[i].Clone()
	}
	next.drawPile = s.drawPile.Clone()
	next.bids = append([]Bid{}, s.bids...)
	next.currentTrick = append([]TrickPlay{}, s.currentTrick...)

	next.completedTricks = make([]CompletedTrick, len(s.completedTricks))
	for i, trick := range s.completedTricks {
		trick.Plays = append([]TrickPlay{}, trick.Plays...)
		next.completedTricks[i] = trick
	}

	if s.outcome != nil {
		outcome := *s.outcome
		next.outcome = &outcome
	}

	return &next
}

// Phase returns the current phase
func (s *RoundState) Phase() Phase {
	return s.phase
}

// DealerPosition returns the seat currently holding the deal
func (s *RoundState) DealerPosition() int {
	return s.dealerPos
}

// Seats returns the seated players
func (s *RoundState) Seats() []Seat {
	return append([]Seat{}, s.seats...)
}

// Hand returns a copy of the hand at the given position
func (s *RoundState) Hand(pos int) deck.Hand {
	if pos < 0 || pos >= numPlayers {
		return nil
	}

	return s.hands[pos].Clone()
}

// Outcome returns the round result, or nil while the round is in progress
func (s *RoundState) Outcome() *Outcome {
	if s.outcome == nil {
		return nil
	}

	outcome := *s.outcome
	return &outcome
}

// CurrentTurn returns the position whose action is expected, or -1 if no
// player action is pending (lobby, display window, game over)
func (s *RoundState) CurrentTurn() int {
	switch s.phase {
	case PhaseBidding:
		return s.currentBidder
	case PhaseTrumpSelection:
		return s.bidWinner
	case PhasePlaying:
		if s.pendingTrickClear {
			return noPosition
		}

		return s.currentPlayer
	}

	return noPosition
}

// seatAt returns the seat at the position
func (s *RoundState) seatAt(pos int) (Seat, bool) {
	for _, seat := range s.seats {
		if seat.Position == pos {
			return seat, true
		}
	}

	return Seat{}, false
}

// deal shuffles a fresh deck and deals the first four cards to each seat,
// holding the rest back until trump selection. The auction state is reset.
func (s *RoundState) deal(g rng.Generator) {
	d := deck.New()
	d.Shuffle(g)

	for i := range s.hands {
		s.hands[i] = make(deck.Hand, 0, tricksPerRound)
	}

	// deal starts at the seat after the dealer
	for i := 0; i < numPlayers; i++ {
		pos := nextPosition(s.dealerPos + i)
		for j := 0; j < 4; j++ {
			card, err := d.Draw()
			if err != nil {
				panic(err) // a fresh deck always has 32 cards
			}

			s.hands[pos].AddCard(card)
		}
	}

	s.drawPile = deck.Hand(d.Cards).Clone()

	s.phase = PhaseBidding
	s.currentBidder = nextPosition(s.dealerPos)
	s.highestBid = 0
	s.bidWinner = noPosition
	s.passCount = 0
	s.bids = nil

	s.trumpCard = nil
	s.trumpRevealed = false
	s.trumpAskedBy = noPosition
	s.trumpPlayedAfterAsk = false

	s.currentTrick = nil
	s.completedTricks = nil
	s.currentPlayer = noPosition
	s.pendingTrickClear = false
	s.trickWinner = noPosition

	s.tricksWon = [2]int{}
	s.points = [2]int{}
	s.outcome = nil
}

// dealRemaining deals the held-back half of the deck after trump selection
func (s *RoundState) dealRemaining() {
	i := 0
	for ; len(s.drawPile) > 0; i++ {
		pos := nextPosition(s.dealerPos + i%numPlayers)
		card := s.drawPile[0]
		s.drawPile = s.drawPile[1:]
		s.hands[pos].AddCard(card)
	}
}
