package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)

	a.True(CardFromString("5h").Equal(CardFromString("5h")))
	a.False(CardFromString("5h").Equal(CardFromString("5s")))
	a.False(CardFromString("5h").Equal(CardFromString("6h")))

	// suit carries no meaning on Wizards and Jesters
	a.True(CardFromString("wh").Equal(CardFromString("ws")))
	a.True(CardFromString("jc").Equal(CardFromString("jd")))
	a.False(CardFromString("wh").Equal(CardFromString("jh")))
}

func TestCard_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("5♡", CardFromString("5h").String())
	a.Equal("13♠", CardFromString("13s").String())
	a.Equal("W♣", CardFromString("wc").String())
	a.Equal("J♢", CardFromString("jd").String())
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)
	a.Equal(Card{Rank: 1, Suit: Clubs}, *CardFromString("1c"))
	a.Equal(Card{Rank: King, Suit: Hearts}, *CardFromString("13h"))
	a.Equal(Card{Rank: Wizard, Suit: Spades}, *CardFromString("ws"))
	a.Equal(Card{Rank: Jester, Suit: Diamonds}, *CardFromString("jd"))
	a.Nil(CardFromString(""))

	a.PanicsWithValue("could not parse card: 14c", func() {
		CardFromString("14c")
	})
}

func TestCardsToString(t *testing.T) {
	cards := CardsFromString("2c,13h,ws,jd")
	assert.Equal(t, "2c,13h,ws,jd", CardsToString(cards))
}

func TestCard_specials(t *testing.T) {
	a := assert.New(t)
	a.True(CardFromString("wh").IsWizard())
	a.False(CardFromString("wh").IsJester())
	a.True(CardFromString("jh").IsJester())
	a.False(CardFromString("5h").IsWizard())
}
