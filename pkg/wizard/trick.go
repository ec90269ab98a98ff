package wizard

import (
	"wizard-server/pkg/deck"
)

// PlayedCard is a card played into a trick along with who played it
type PlayedCard struct {
	PlayerID string     `json:"playerId"`
	Card     *deck.Card `json:"card"`
}

// ResolveTrick determines the winner of a completed trick:
//  1. The first Wizard in play order wins outright.
//  2. Otherwise the lead suit is the suit of the first non-Jester play, and the
//     highest card of the lead suit wins. Jesters never win.
//  3. If every card is a Jester there is no winner and ok is false.
func ResolveTrick(plays []PlayedCard) (winnerID string, ok bool) {
	for _, play := range plays {
		if play.Card.IsWizard() {
			return play.PlayerID, true
		}
	}

	var winner *PlayedCard
	var leadSuit deck.Suit
	for i, play := range plays {
		if play.Card.IsJester() {
			continue
		}

		if winner == nil {
			winner = &plays[i]
			leadSuit = play.Card.Suit
			continue
		}

		if play.Card.Suit == leadSuit && play.Card.Rank > winner.Card.Rank {
			winner = &plays[i]
		}
	}

	// every card was a Jester
	if winner == nil {
		return "", false
	}

	return winner.PlayerID, true
}

// leadSuit returns the suit of the first non-Jester play in the trick.
// ok is false if no card has established a suit yet. A Wizard lead means
// there is no suit to follow.
func leadSuit(plays []PlayedCard) (deck.Suit, bool) {
	for _, play := range plays {
		if play.Card.IsWizard() {
			return "", false
		}

		if !play.Card.IsJester() {
			return play.Card.Suit, true
		}
	}

	return "", false
}
