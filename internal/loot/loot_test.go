package loot

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoll_Deterministic(t *testing.T) {
	table := Table{
		Entries: []Entry{
			{ItemID: "wild_berry", Amount: 1, Weight: 60},
			{ItemID: "crunchy_root", Amount: 1, Weight: 30},
			{ItemID: "glimmer_cap", Amount: 1, Weight: 10},
		},
		BonusChancePct: 40,
	}

	rngA := rand.New(rand.NewSource(7))
	rngB := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		assert.Equal(t, table.Roll(rngA), table.Roll(rngB))
	}
}

func TestRoll_EmptyAndZeroWeight(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	assert.Nil(t, Table{}.Roll(rng))
	assert.Nil(t, Table{Entries: []Entry{{ItemID: "x", Weight: 0}}}.Roll(rng))
}

func TestRoll_AlwaysYieldsKnownEntry(t *testing.T) {
	table := Table{
		Entries: []Entry{
			{ItemID: "wild_berry", Amount: 2, Weight: 50},
			{ItemID: "river_stone", Amount: 1, Weight: 50},
		},
		BonusChancePct: 100,
	}
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 200; i++ {
		drops := table.Roll(rng)
		require.NotEmpty(t, drops)
		for _, d := range drops {
			assert.Contains(t, []string{"wild_berry", "river_stone"}, d.ItemID)
			assert.Greater(t, d.Amount, 0)
		}
		// Bonus roll merges duplicates instead of listing them twice.
		assert.LessOrEqual(t, len(drops), 2)
		if len(drops) == 2 {
			assert.NotEqual(t, drops[0].ItemID, drops[1].ItemID)
		}
	}
}
