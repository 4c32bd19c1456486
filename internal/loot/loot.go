// Package loot provides weighted drop tables. Tables are rolled with an
// injected rand source so that offline replay reproduces identical drops.
package loot

import "math/rand"

// Drop is a quantity of one item.
type Drop struct {
	ItemID string `json:"item_id"`
	Amount int    `json:"amount"`
}

// Entry is a weighted table row.
type Entry struct {
	ItemID string `yaml:"item_id" json:"item_id"`
	Amount int    `yaml:"amount" json:"amount"`
	Weight int    `yaml:"weight" json:"weight"`
}

// Table is a weighted loot table. BonusChancePct is the percent chance of a
// second roll on the same table.
type Table struct {
	Entries        []Entry `yaml:"entries" json:"entries"`
	BonusChancePct int     `yaml:"bonus_chance_pct" json:"bonus_chance_pct"`
}

// Roll draws one guaranteed entry plus an optional bonus entry, merging
// duplicates. An empty table yields nothing.
func (t Table) Roll(rng *rand.Rand) []Drop {
	if len(t.Entries) == 0 {
		return nil
	}

	totalWeight := 0
	for _, e := range t.Entries {
		totalWeight += e.Weight
	}
	if totalWeight <= 0 {
		return nil
	}

	drops := []Drop{pick(t.Entries, totalWeight, rng)}

	if t.BonusChancePct > 0 && rng.Intn(100) < t.BonusChancePct {
		bonus := pick(t.Entries, totalWeight, rng)
		merged := false
		for i := range drops {
			if drops[i].ItemID == bonus.ItemID {
				drops[i].Amount += bonus.Amount
				merged = true
				break
			}
		}
		if !merged {
			drops = append(drops, bonus)
		}
	}

	return drops
}

func pick(entries []Entry, totalWeight int, rng *rand.Rand) Drop {
	roll := rng.Intn(totalWeight)
	current := 0
	for _, e := range entries {
		current += e.Weight
		if roll < current {
			amount := e.Amount
			if amount <= 0 {
				amount = 1
			}
			return Drop{ItemID: e.ItemID, Amount: amount}
		}
	}
	last := entries[len(entries)-1]
	return Drop{ItemID: last.ItemID, Amount: 1}
}
