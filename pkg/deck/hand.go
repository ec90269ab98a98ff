package deck

// Hand represents a collection of cards
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h *Hand) HasCard(card *Card) bool {
	for _, c := range *h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// HasSuit returns true if the hand contains a non-special card of the suit
func (h *Hand) HasSuit(suit Suit) bool {
	for _, c := range *h {
		if c.IsWizard() || c.IsJester() {
			continue
		}

		if c.Suit == suit {
			return true
		}
	}

	return false
}

// Discard will remove the first matching card from the hand.
// It returns true if a card was removed.
func (h *Hand) Discard(card *Card) bool {
	for i, c := range *h {
		if c.Equal(card) {
			*h = append((*h)[:i], (*h)[i+1:]...)
			return true
		}
	}

	return false
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
