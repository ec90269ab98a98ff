package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

// Suits is the list of suits in deck-composition order
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// rank constants. Numeric ranks run 1–13 with Jack/Queen/King at 11/12/13.
// Wizard and Jester sit outside the numeric ordering and are compared by
// special-case rules, never by their constant values.
const (
	Jester = 0
	Jack   = 11
	Queen  = 12
	King   = 13
	Wizard = 14
)

// Card is an individual playing card.
// Wizard and Jester cards carry a suit because the deck composes one of each
// per suit; that suit has no meaning and must never factor into comparisons.
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// IsWizard returns true if the card is a Wizard
func (c *Card) IsWizard() bool {
	return c.Rank == Wizard
}

// IsJester returns true if the card is a Jester
func (c *Card) IsJester() bool {
	return c.Rank == Jester
}

// Equal returns true if the cards are equal.
// Suit is ignored for Wizards and Jesters.
func (c *Card) Equal(card *Card) bool {
	if c.Rank != card.Rank {
		return false
	}

	if c.IsWizard() || c.IsJester() {
		return true
	}

	return c.Suit == card.Suit
}

func (c *Card) String() string {
	var rank string
	switch c.Rank {
	case Wizard:
		rank = "W"
	case Jester:
		rank = "J"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

var cardRx = regexp.MustCompile(`(?i)^([0-9]|1[0-3]|[wj])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank is 1–13, "w"
// (Wizard), or "j" (Jester), and suit is in [cdhs]
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	var rank int
	switch strings.ToLower(match[1]) {
	case "w":
		rank = Wizard
	case "j":
		rank = Jester
	default:
		var err error
		rank, err = strconv.Atoi(match[1])
		if err != nil {
			panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
		}
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return &Card{
		Rank: rank,
		Suit: suit,
	}
}

// CardsFromString will return a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Wizard of Clubs) to a string (wc)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	var rank string
	switch card.Rank {
	case Wizard:
		rank = "w"
	case Jester:
		rank = "j"
	default:
		rank = strconv.Itoa(card.Rank)
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,ws,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
