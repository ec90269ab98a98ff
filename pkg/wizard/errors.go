package wizard

import "errors"

// ErrUnknownPlayer is an error when the acting player is not in the game
var ErrUnknownPlayer = errors.New("player is not in the game")

// ErrPlayerAlreadyJoined is an error when a player joins a game twice
var ErrPlayerAlreadyJoined = errors.New("player already joined the game")

// ErrNotEnoughPlayers is an error when a round is started with fewer than two players
var ErrNotEnoughPlayers = errors.New("need at least two players to start")

// ErrTooManyPlayers is an error when a full deck cannot cover the round's deal
var ErrTooManyPlayers = errors.New("the deck cannot cover a hand for every player")

// ErrRoundInProgress is an error when a round is started while one is already running
var ErrRoundInProgress = errors.New("a round is already in progress")

// ErrRoundNotStarted is an error when a bid or play arrives before any round started
var ErrRoundNotStarted = errors.New("the round has not started")

// ErrBiddingNotComplete is an error when a card is played before every player has bid
var ErrBiddingNotComplete = errors.New("bidding is not complete")

// ErrBiddingComplete is an error when a bid is submitted after bidding closed
var ErrBiddingComplete = errors.New("bidding is complete")

// ErrDuplicateBid is an error when a player bids twice in the same round
var ErrDuplicateBid = errors.New("player already submitted a bid this round")

// ErrInvalidBid is an error when a bid is negative
var ErrInvalidBid = errors.New("bid must be zero or greater")

// ErrCardNotInHand happens when the player tries to play a card they don't have
var ErrCardNotInHand = errors.New("card is not in player's hand")

// ErrNotPlayersTurn is returned in strict mode when a player plays out of turn
var ErrNotPlayersTurn = errors.New("not player's turn")

// ErrMustFollowSuit is returned in strict mode when a player holds the lead
// suit but plays a different one
var ErrMustFollowSuit = errors.New("player must follow the lead suit")

// ErrGameOver is an error when an action is attempted on an ended game
var ErrGameOver = errors.New("game is over")
