// Package item holds the read-only item definitions and the player inventory.
package item

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Kind categorizes items by how they are used.
type Kind string

const (
	KindFood     Kind = "food"
	KindDrink    Kind = "drink"
	KindToy      Kind = "toy"
	KindMaterial Kind = "material"
)

// Item is a static item definition. Restore amounts are display units.
type Item struct {
	ID               string `yaml:"id" json:"id"`
	Name             string `yaml:"name" json:"name"`
	Kind             Kind   `yaml:"kind" json:"kind"`
	SatietyRestore   int    `yaml:"satiety_restore" json:"satiety_restore"`
	HydrationRestore int    `yaml:"hydration_restore" json:"hydration_restore"`
	HappinessRestore int    `yaml:"happiness_restore" json:"happiness_restore"`
	EnergyRestore    int    `yaml:"energy_restore" json:"energy_restore"`
	Value            int    `yaml:"value" json:"value"` // coins
}

// Registry is a read-only id -> definition lookup.
type Registry struct {
	byID map[string]Item
}

func NewRegistry(list []Item) *Registry {
	r := &Registry{byID: make(map[string]Item, len(list))}
	for _, it := range list {
		r.byID[it.ID] = it
	}
	return r
}

func (r *Registry) Get(id string) (Item, bool) {
	it, ok := r.byID[id]
	return it, ok
}

func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LoadFile reads item definitions from a YAML file.
func LoadFile(path string) ([]Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var list []Item
	if err := yaml.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Defaults returns the built-in item set.
func Defaults() []Item {
	return []Item{
		{ID: "food_apple", Name: "Apple", Kind: KindFood, SatietyRestore: 25, HappinessRestore: 2, Value: 5},
		{ID: "food_honey_loaf", Name: "Honey Loaf", Kind: KindFood, SatietyRestore: 50, HappinessRestore: 5, Value: 12},
		{ID: "water_flask", Name: "Water Flask", Kind: KindDrink, HydrationRestore: 30, Value: 3},
		{ID: "berry_juice", Name: "Berry Juice", Kind: KindDrink, HydrationRestore: 40, HappinessRestore: 5, Value: 10},
		{ID: "plush_burr", Name: "Plush Burr", Kind: KindToy, HappinessRestore: 20, Value: 15},
		{ID: "chime_ball", Name: "Chime Ball", Kind: KindToy, HappinessRestore: 30, Value: 25},
		{ID: "wild_berry", Name: "Wild Berry", Kind: KindFood, SatietyRestore: 10, Value: 2},
		{ID: "crunchy_root", Name: "Crunchy Root", Kind: KindFood, SatietyRestore: 15, Value: 3},
		{ID: "glimmer_cap", Name: "Glimmer Cap", Kind: KindMaterial, Value: 20},
		{ID: "river_stone", Name: "River Stone", Kind: KindMaterial, Value: 8},
	}
}
