package wizard

import (
	"wizard-server/pkg/deck"
)

// Player is a player in a game of Wizard
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	hand      deck.Hand
	tricksWon int
	score     int
}

// NewPlayer returns a new player
func NewPlayer(id, name string) *Player {
	return &Player{
		ID:   id,
		Name: name,
	}
}

// Hand returns the cards the player currently holds
func (p *Player) Hand() deck.Hand {
	return p.hand
}

// TricksWon returns the number of tricks the player won this round
func (p *Player) TricksWon() int {
	return p.tricksWon
}

// Score returns the player's cumulative score
func (p *Player) Score() int {
	return p.score
}

// takeCard removes the first matching card from the player's hand and
// returns the held instance, or nil if the player doesn't have the card.
// The held instance is returned so that a Wizard or Jester played with an
// arbitrary suit resolves to the composed card.
func (p *Player) takeCard(card *deck.Card) *deck.Card {
	for i, c := range p.hand {
		if c.Equal(card) {
			p.hand = append(p.hand[:i], p.hand[i+1:]...)
			return c
		}
	}

	return nil
}

// newRound resets the player's per-round state and hands out new cards
func (p *Player) newRound(hand deck.Hand) {
	p.hand = hand
	p.tricksWon = 0
}

func (p *Player) info() PlayerInfo {
	return PlayerInfo{
		ID:    p.ID,
		Name:  p.Name,
		Score: p.score,
	}
}
