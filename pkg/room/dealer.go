package room

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"wizard-server/pkg/wizard"
)

// Dealer owns a single game session and its connected clients. All session
// mutations happen on the dealer's run loop, one command at a time in arrival
// order, so the session itself never sees concurrent access.
type Dealer struct {
	registry *Registry
	gameID   string
	clients  map[*Client]bool
	lock     sync.RWMutex
	session  *wizard.Session

	execInRunLoop chan func()
	close         chan bool
}

// NewDealer creates a new dealer object with a fresh session.
// This is called from a blocking state, so it needs to return quickly
func NewDealer(registry *Registry, gameID string, options wizard.Options) *Dealer {
	return &Dealer{
		registry:      registry,
		gameID:        gameID,
		clients:       make(map[*Client]bool),
		session:       wizard.NewSession(logrus.StandardLogger(), gameID, options),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	log := logrus.WithField("game", d.gameID)
	log.Debug("creating dealer run loop")

	for {
		select {
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			log.Debug("terminating dealer run loop")
			return
		}
	}
}

// AddClient adds a client and joins its player to the session.
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	d.execInRunLoop <- func() {
		events, err := d.session.Join(client.PlayerID, client.Name)
		if err != nil {
			if err == wizard.ErrPlayerAlreadyJoined {
				// a reconnect, nothing to announce
				return
			}

			logrus.WithError(err).WithField("client", client.String()).Error("could not join game")
			client.Send(newErrorResponse("", err))
			return
		}

		d.broadcast(events)
	}
}

// RemoveClient removes a client, and removes its player from the session if
// this was the player's last connection.
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)

	playerConnected := false
	for c := range d.clients {
		if c.PlayerID == client.PlayerID {
			playerConnected = true
			break
		}
	}

	nClients := len(d.clients)
	d.lock.Unlock()

	if !playerConnected {
		d.execInRunLoop <- func() {
			events, err := d.session.Leave(client.PlayerID)
			if err != nil {
				logrus.WithError(err).WithField("client", client.String()).Error("could not leave game")
				return
			}

			d.broadcast(events)
		}
	}

	return nClients == 0
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	close(d.close)
}

// ReceivedMessage is called when a client sends a command to the server.
// The command is applied on the run loop; the issuing client gets a direct
// OK or error response, and resulting events go out to the whole game.
func (d *Dealer) ReceivedMessage(c *Client, msg *PayloadIn) {
	d.execInRunLoop <- func() {
		events, err := d.handleCommand(c, msg)
		if err != nil {
			c.Send(newErrorResponse(msg.Context, err))
			return
		}

		c.Send(okResponse(msg.Context))
		d.broadcast(events)
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) handleCommand(c *Client, msg *PayloadIn) ([]wizard.Event, error) {
	log := logrus.WithField("client", c.String())

	switch msg.Action {
	case "startRound":
		log.Debug("start round")
		return d.session.StartRound()
	case "bid":
		log.WithField("bid", msg.Bid).Debug("submit bid")
		return d.session.SubmitBid(c.PlayerID, msg.Bid)
	case "playCard":
		if msg.Card == nil {
			return nil, fmt.Errorf("expected a card")
		}

		log.WithField("card", msg.Card).Debug("play card")
		return d.session.PlayCard(c.PlayerID, msg.Card)
	default:
		return nil, fmt.Errorf("unknown action: %s", msg.Action)
	}
}

// broadcast delivers events in order: broadcast events to every client,
// private events only to the addressed player's clients.
// NOTE: must only be called from the run loop
func (d *Dealer) broadcast(events []wizard.Event) {
	clients := d.Clients()

	for _, event := range events {
		for _, client := range clients {
			if !event.IsBroadcast() && client.PlayerID != event.To {
				continue
			}

			if !client.Send(event) {
				logrus.WithField("client", client.String()).Warn("client send buffer full, dropping event")
			}
		}
	}
}
