package twentyeight

import (
	"errors"
)

// ErrInvalidPhase is an error when the action is not part of the current phase
var ErrInvalidPhase = errors.New("action is not valid in the current phase")

// ErrInvalidTurn is returned when it's not the player's turn
var ErrInvalidTurn = errors.New("not player's turn")

// ErrInvalidBidAmount happens when a bid is outside of the 14-28 range
var ErrInvalidBidAmount = errors.New("bid must be between 14 and 28")

// ErrBidNotHigherThanCurrent happens when a bid does not beat the standing high bid
var ErrBidNotHigherThanCurrent = errors.New("bid must be higher than the current bid")

// ErrTeamBidRestricted happens when a player re-raises over their own partner
// before an opposing bid
var ErrTeamBidRestricted = errors.New("cannot raise over your partner until an opponent bids")

// ErrCardNotInPlayersHand happens when the player tries to play a card they don't have
var ErrCardNotInPlayersHand = errors.New("card is not in player's hand")

// ErrMustFollowLeadSuit happens when a player holds the lead suit and plays an off-suit card
var ErrMustFollowLeadSuit = errors.New("player has a lead-suit card")

// ErrTrumpHiddenLeadRestricted happens when the bid winner tries to expose the
// trump suit before the reveal
var ErrTrumpHiddenLeadRestricted = errors.New("cannot play the trump suit while the trump card is hidden")

// ErrTrumpAskedMustFollowTrump happens when the player who asked for trump
// holds a trump-suit card and plays something else
var ErrTrumpAskedMustFollowTrump = errors.New("player asked for trump and must play a trump-suit card")

// ErrTrumpAlreadyRevealed happens when trump is asked for twice
var ErrTrumpAlreadyRevealed = errors.New("the trump card is already revealed")

// ErrAskTrumpWhileLeading happens when the trick leader tries to ask for trump
var ErrAskTrumpWhileLeading = errors.New("the trick leader cannot ask for trump")

// ErrTrickDisplayLocked happens when an action arrives during the post-trick
// display window
var ErrTrickDisplayLocked = errors.New("the completed trick is still being displayed")

// ErrInsufficientPlayers is an error when a round starts without four seated players
var ErrInsufficientPlayers = errors.New("four seated players are required")
