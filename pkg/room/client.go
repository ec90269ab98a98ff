package room

import (
	"fmt"

	"github.com/gorilla/websocket"

	"wizard-server/pkg/deck"
)

// PayloadIn is the format we expect from the JS client
type PayloadIn struct {
	Action string     `json:"action"`
	Bid    int        `json:"bid"`
	Card   *deck.Card `json:"card"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// Client is a player connected to a game via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// PlayerID is the player's stable identity, independent of the connection
	PlayerID string

	// Name is the player's display name
	Name string

	// GameID is the game the client is connected to
	GameID string

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	dealer *Dealer
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, gameID, playerID, name string) *Client {
	return &Client{
		Conn:     conn,
		PlayerID: playerID,
		Name:     name,
		GameID:   gameID,
		send:     make(chan interface{}, 256),
		Close:    make(chan string),
	}
}

// Send sends a message to the web client.
// It returns false if the client's buffer is full and the message was dropped.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel of messages destined for the client
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the player and game
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.PlayerID, c.GameID)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *PayloadIn) {
	if c.dealer == nil {
		c.Send(newErrorResponse(msg.Context, ErrUnknownGame))
		return
	}

	c.dealer.ReceivedMessage(c, msg)
}
