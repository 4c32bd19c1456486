package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInventory_AddSpendHas(t *testing.T) {
	inv := Inventory{}

	inv.Add("food_apple", 3)
	assert.True(t, inv.Has("food_apple", 3))
	assert.False(t, inv.Has("food_apple", 4))

	assert.True(t, inv.Spend("food_apple", 2))
	assert.Equal(t, 1, inv.Count("food_apple"))

	assert.False(t, inv.Spend("food_apple", 5))
	assert.Equal(t, 1, inv.Count("food_apple"))

	assert.True(t, inv.Spend("food_apple", 1))
	assert.NotContains(t, inv, "food_apple")
}

func TestInventory_CloneIsIndependent(t *testing.T) {
	inv := Inventory{"water_flask": 2}
	cp := inv.Clone()
	cp.Add("water_flask", 5)

	assert.Equal(t, 2, inv.Count("water_flask"))
	assert.Equal(t, 7, cp.Count("water_flask"))
}

func TestInventory_IgnoresNonPositiveAdd(t *testing.T) {
	inv := Inventory{}
	inv.Add("plush_burr", 0)
	inv.Add("plush_burr", -2)
	assert.Empty(t, inv)
}

func TestRegistry_Lookup(t *testing.T) {
	reg := NewRegistry(Defaults())

	apple, ok := reg.Get("food_apple")
	assert.True(t, ok)
	assert.Equal(t, KindFood, apple.Kind)
	assert.Equal(t, 25, apple.SatietyRestore)

	_, ok = reg.Get("mystery_meat")
	assert.False(t, ok)
}
