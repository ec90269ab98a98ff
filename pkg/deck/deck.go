package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"math/rand"

	"wizard-server/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// ErrInsufficientDeck is an error when a deal requires more cards than remain
var ErrInsufficientDeck = errors.New("not enough cards left in the deck")

// Size is the number of cards in a full deck: ranks 1–13 plus a Wizard and a
// Jester, once per suit
const Size = 60

// Deck represents a playing deck
type Deck struct {
	Cards []*Card `json:"cards"`
	rng   rng.Generator
}

// New returns a new deck of cards using a crypto-backed random source.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		rng: rng.Crypto{},
	}

	d.buildDeck()
	return d
}

// SetSeed replaces the random source with a deterministic one.
// This should only be used by tests so shuffles produce a fixed permutation.
func (d *Deck) SetSeed(seed int64) {
	d.rng = rand.New(rand.NewSource(seed))
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, Size)
	for _, suit := range Suits {
		for rank := 1; rank <= King; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}

		// one Wizard and one Jester per suit. The suit on these is an
		// artifact of the composition loop and carries no meaning.
		cards = append(cards, &Card{Rank: Wizard, Suit: suit})
		cards = append(cards, &Card{Rank: Jester, Suit: suit})
	}

	d.Cards = cards
}

// Shuffle will rebuild the full deck and shuffle it.
// Any previously dealt cards are forgotten.
func (d *Deck) Shuffle() {
	d.buildDeck()

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) <= 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// Deal removes numPlayers×cardsPerHand cards from the front of the deck and
// returns one hand per player, in player order.
// If not enough cards remain, ErrInsufficientDeck is returned and the deck is
// left untouched; the caller decides the recovery policy.
func (d *Deck) Deal(numPlayers, cardsPerHand int) ([]Hand, error) {
	if !d.CanDraw(numPlayers * cardsPerHand) {
		return nil, ErrInsufficientDeck
	}

	hands := make([]Hand, numPlayers)
	for i := range hands {
		hand := make(Hand, 0, cardsPerHand)
		for j := 0; j < cardsPerHand; j++ {
			card, err := d.Draw()
			if err != nil {
				// cannot happen after the CanDraw check
				panic(err)
			}

			hand.AddCard(card)
		}

		hands[i] = hand
	}

	return hands, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
