package item

import "sort"

// Inventory tracks item counts by id. It is treated as an immutable value by
// the engine: mutate only a Clone, never a shared instance.
type Inventory map[string]int

// Clone returns an independent copy.
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for id, n := range inv {
		out[id] = n
	}
	return out
}

// Count returns how many of an item are held.
func (inv Inventory) Count(id string) int {
	return inv[id]
}

// Has checks whether at least amount of an item is held.
func (inv Inventory) Has(id string, amount int) bool {
	return inv[id] >= amount
}

// Add puts amount of an item into the inventory.
func (inv Inventory) Add(id string, amount int) {
	if amount <= 0 {
		return
	}
	inv[id] += amount
}

// Spend removes amount of an item, failing without change when short.
func (inv Inventory) Spend(id string, amount int) bool {
	if amount <= 0 {
		return true
	}
	if inv[id] < amount {
		return false
	}
	inv[id] -= amount
	if inv[id] == 0 {
		delete(inv, id)
	}
	return true
}

// IDs returns held item ids, sorted for stable display.
func (inv Inventory) IDs() []string {
	ids := make([]string, 0, len(inv))
	for id, n := range inv {
		if n > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
