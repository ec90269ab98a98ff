package wizard

// Options configure a game of Wizard
type Options struct {
	// MaxRounds is the round number after which the game ends.
	// If 0, the standard schedule is used: deck size divided by the number
	// of players at the first deal.
	MaxRounds int

	// CardsPerRoundOffset is added to the round number to determine how many
	// cards each player is dealt. The canonical game deals round-number
	// cards; an offset of 1 deals one extra.
	CardsPerRoundOffset int

	// StrictPlay enforces turn order and suit-following during trick play.
	// When false (the default), any card from the player's hand is accepted
	// at any time while a trick is open.
	StrictPlay bool
}

// DefaultOptions returns the default game options
func DefaultOptions() Options {
	return Options{}
}

func (o Options) cardsPerHand(round int) int {
	return round + o.CardsPerRoundOffset
}
