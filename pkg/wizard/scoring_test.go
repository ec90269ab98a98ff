package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundScore(t *testing.T) {
	testCases := []struct {
		bid       int
		tricksWon int
		expected  int
	}{
		{0, 0, 20},
		{1, 1, 30},
		{3, 3, 50},
		{2, 0, -20},
		{0, 2, -20},
		{1, 4, -30},
		{5, 1, -40},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, RoundScore(tc.bid, tc.tricksWon), "bid=%d tricksWon=%d", tc.bid, tc.tricksWon)
	}
}
