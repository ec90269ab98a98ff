package wizard

// scoring constants
const (
	exactBidBonus = 20
	pointsPerDiff = 10
)

// RoundScore returns the score delta for a single player at the end of a
// round. An exact bid earns 20 plus 10 per trick won; a missed bid costs 10
// per trick of difference. Deltas accumulate and scores are unbounded in
// both directions.
func RoundScore(bid, tricksWon int) int {
	if bid == tricksWon {
		return exactBidBonus + pointsPerDiff*tricksWon
	}

	diff := bid - tricksWon
	if diff < 0 {
		diff = -diff
	}

	return -pointsPerDiff * diff
}
