package room

import (
	"errors"

	"github.com/sirupsen/logrus"

	"wizard-server/pkg/wizard"
)

// ErrUnknownGame is an error when a command references a nonexistent game
var ErrUnknownGame = errors.New("game not found")

// Registry dispatches players to game sessions. A client connecting with an
// unseen game ID creates the session; the session is torn down when its last
// client disconnects.
type Registry struct {
	options    wizard.Options
	dealers    map[string]*Dealer
	connect    chan *Client
	disconnect chan *Client
}

// NewRegistry returns a new registry. Sessions it creates use the supplied
// game options.
func NewRegistry(options wizard.Options) *Registry {
	return &Registry{
		options:    options,
		dealers:    make(map[string]*Dealer),
		connect:    make(chan *Client, 256),
		disconnect: make(chan *Client, 256),
	}
}

// StartShift starts the registry run loop
func (r *Registry) StartShift() {
	go r.runLoop()
}

func (r *Registry) runLoop() {
	for {
		select {
		case client := <-r.connect:
			logrus.WithField("client", client.String()).Debug("client connected")
			dealer, found := r.dealers[client.GameID]
			if !found {
				dealer = NewDealer(r, client.GameID, r.options)
				dealer.StartShift()
				r.dealers[client.GameID] = dealer
			}

			dealer.AddClient(client)
		case client := <-r.disconnect:
			logrus.WithField("client", client.String()).Debug("client disconnected")
			dealer, found := r.dealers[client.GameID]
			if !found {
				logrus.WithField("game", client.GameID).Error(ErrUnknownGame)
				continue
			}

			if dealer.RemoveClient(client) {
				dealer.EndShift()
				delete(r.dealers, client.GameID)
			}
		}
	}
}

// ClientConnected is called when a client connects to the server
func (r *Registry) ClientConnected(client *Client) {
	r.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (r *Registry) ClientDisconnected(client *Client) {
	r.disconnect <- client
}
