package leveling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		name          string
		xp            int
		expectedLevel int
		expectedBonus int
		expectedNext  int // XPRequired of next tier, 0 when none
	}{
		{name: "Zero XP is tier 1", xp: 0, expectedLevel: 1, expectedBonus: 500, expectedNext: 1000},
		{name: "Just below tier 2", xp: 999, expectedLevel: 1, expectedBonus: 500, expectedNext: 1000},
		{name: "Exactly tier 2", xp: 1000, expectedLevel: 2, expectedBonus: 600, expectedNext: 2500},
		{name: "Mid tier 3", xp: 3000, expectedLevel: 3, expectedBonus: 700, expectedNext: 5000},
		{name: "Exactly tier 4", xp: 5000, expectedLevel: 4, expectedBonus: 900, expectedNext: 8000},
		{name: "Top tier has no next", xp: 8000, expectedLevel: 5, expectedBonus: 1200, expectedNext: 0},
		{name: "Far beyond top tier", xp: 1_000_000, expectedLevel: 5, expectedBonus: 1200, expectedNext: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, next := LevelFor(tt.xp)
			assert.Equal(t, tt.expectedLevel, current.Level)
			assert.Equal(t, tt.expectedBonus, current.BonusAmount)
			if tt.expectedNext == 0 {
				assert.Nil(t, next)
			} else {
				require.NotNil(t, next)
				assert.Equal(t, tt.expectedNext, next.XPRequired)
			}
		})
	}
}

func TestLevelForMonotonic(t *testing.T) {
	prev := 0
	for xp := 0; xp <= 10000; xp += 100 {
		current, _ := LevelFor(xp)
		require.GreaterOrEqual(t, current.Level, prev, "level regressed at xp=%d", xp)
		prev = current.Level
	}
}

func TestTiersAscending(t *testing.T) {
	all := Tiers()
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.Greater(t, all[i].XPRequired, all[i-1].XPRequired)
		assert.Equal(t, all[i-1].Level+1, all[i].Level)
	}
}
