package wizard

import (
	"time"

	"github.com/google/uuid"

	"wizard-server/pkg/deck"
)

// event keys
const (
	EventPlayerJoined   = "playerJoined"
	EventPlayerLeft     = "playerLeft"
	EventHandDealt      = "handDealt"
	EventRoundStarted   = "roundStarted"
	EventDeckReshuffled = "deckReshuffled"
	EventBidRecorded    = "bidRecorded"
	EventBidsComplete   = "bidsComplete"
	EventCardPlayed     = "cardPlayed"
	EventTrickResolved  = "trickResolved"
	EventRoundScored    = "roundScored"
	EventGameOver       = "gameOver"
)

// Event is a single output produced by a session mutation. Events are
// returned in order and broadcast by the transport layer.
// If To is empty the event is intended for every player in the game,
// otherwise only for the addressed player.
type Event struct {
	UUID string      `json:"uuid"`
	Key  string      `json:"key"`
	To   string      `json:"-"`
	Data interface{} `json:"data,omitempty"`
	Time time.Time   `json:"time"`
}

// IsBroadcast returns true if the event is meant for every player
func (e Event) IsBroadcast() bool {
	return e.To == ""
}

func newEvent(key string, data interface{}) Event {
	return Event{
		UUID: uuid.New().String(),
		Key:  key,
		Data: data,
		Time: time.Now(),
	}
}

func newPrivateEvent(to, key string, data interface{}) Event {
	e := newEvent(key, data)
	e.To = to
	return e
}

// PlayerInfo is the public view of a player
type PlayerInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// PlayerJoinedData announces the updated player list
type PlayerJoinedData struct {
	Players []PlayerInfo `json:"players"`
}

// PlayerLeftData announces a departed player
type PlayerLeftData struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// HandDealtData carries a single player's hand. Sent privately.
type HandDealtData struct {
	Hand deck.Hand `json:"hand"`
}

// RoundStartedData announces a new round
type RoundStartedData struct {
	Round        int `json:"round"`
	CardsPerHand int `json:"cardsPerHand"`
}

// DeckReshuffledData announces that the deck was rebuilt before dealing
type DeckReshuffledData struct {
	Round int `json:"round"`
}

// BidRecordedData announces a single bid
type BidRecordedData struct {
	PlayerID string `json:"playerId"`
	Bid      int    `json:"bid"`
}

// BidsCompleteData carries the full bid map once every player has bid
type BidsCompleteData struct {
	Bids map[string]int `json:"bids"`
}

// CardPlayedData announces a played card
type CardPlayedData struct {
	PlayerID string     `json:"playerId"`
	Card     *deck.Card `json:"card"`
}

// TrickResolvedData announces the outcome of a completed trick.
// WinnerID is empty when the trick had no winner (all Jesters).
type TrickResolvedData struct {
	WinnerID string       `json:"winnerId,omitempty"`
	Trick    []PlayedCard `json:"trick"`
}

// RoundScoredData carries the cumulative scores after a round
type RoundScoredData struct {
	Round  int            `json:"round"`
	Scores map[string]int `json:"scores"`
}

// GameOverData carries the final scores, in player order
type GameOverData struct {
	FinalScores []PlayerInfo `json:"finalScores"`
}
