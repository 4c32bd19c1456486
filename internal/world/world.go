// Package world holds the read-only location definitions: connectivity,
// which activities a location offers, and its forage drop table.
package world

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"petden/internal/loot"
)

// Activity names a thing a location offers.
type Activity string

const (
	ActivityExplore Activity = "explore"
	ActivityTrain   Activity = "train"
	ActivityShop    Activity = "shop"
	ActivityBattle  Activity = "battle"
)

// Location is one place the player can be.
type Location struct {
	ID               string     `yaml:"id" json:"id"`
	Name             string     `yaml:"name" json:"name"`
	Description      string     `yaml:"description" json:"description"`
	Connections      []string   `yaml:"connections" json:"connections"`
	Activities       []Activity `yaml:"activities" json:"activities"`
	ForageTable      loot.Table `yaml:"forage_table" json:"forage_table"`
	ForageDuration   int        `yaml:"forage_duration_ticks" json:"forage_duration_ticks"`
	ForageEnergyCost int        `yaml:"forage_energy_cost" json:"forage_energy_cost"` // display units
}

// Offers reports whether the location supports an activity.
func (l Location) Offers(a Activity) bool {
	for _, act := range l.Activities {
		if act == a {
			return true
		}
	}
	return false
}

// Registry is a read-only id -> location lookup.
type Registry struct {
	byID    map[string]Location
	startID string
}

func NewRegistry(list []Location, startID string) *Registry {
	r := &Registry{byID: make(map[string]Location, len(list)), startID: startID}
	for _, l := range list {
		r.byID[l.ID] = l
	}
	return r
}

func (r *Registry) Get(id string) (Location, bool) {
	l, ok := r.byID[id]
	return l, ok
}

// StartID is where a new game begins.
func (r *Registry) StartID() string {
	return r.startID
}

func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Connected reports whether to is directly reachable from from.
func (r *Registry) Connected(from, to string) bool {
	l, ok := r.byID[from]
	if !ok {
		return false
	}
	for _, c := range l.Connections {
		if c == to {
			return true
		}
	}
	return false
}

// LoadFile reads location definitions from a YAML file.
func LoadFile(path string) ([]Location, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var list []Location
	if err := yaml.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Defaults returns the built-in location set.
func Defaults() []Location {
	return []Location{
		{
			ID:          "meadow_hollow",
			Name:        "Meadow Hollow",
			Description: "The den and its surrounding meadow.",
			Connections: []string{"whispering_woods", "training_grounds", "riverbend_market"},
			Activities:  []Activity{ActivityExplore},
			ForageTable: loot.Table{
				Entries: []loot.Entry{
					{ItemID: "wild_berry", Amount: 1, Weight: 70},
					{ItemID: "crunchy_root", Amount: 1, Weight: 25},
					{ItemID: "river_stone", Amount: 1, Weight: 5},
				},
				BonusChancePct: 30,
			},
			ForageDuration:   20,
			ForageEnergyCost: 10,
		},
		{
			ID:          "whispering_woods",
			Name:        "Whispering Woods",
			Description: "Dense woods with richer pickings and longer trails.",
			Connections: []string{"meadow_hollow"},
			Activities:  []Activity{ActivityExplore, ActivityBattle},
			ForageTable: loot.Table{
				Entries: []loot.Entry{
					{ItemID: "crunchy_root", Amount: 2, Weight: 45},
					{ItemID: "wild_berry", Amount: 2, Weight: 30},
					{ItemID: "glimmer_cap", Amount: 1, Weight: 25},
				},
				BonusChancePct: 40,
			},
			ForageDuration:   40,
			ForageEnergyCost: 20,
		},
		{
			ID:          "training_grounds",
			Name:        "Training Grounds",
			Description: "Packed-earth yards and balance beams.",
			Connections: []string{"meadow_hollow"},
			Activities:  []Activity{ActivityTrain},
		},
		{
			ID:          "riverbend_market",
			Name:        "Riverbend Market",
			Description: "Stalls along the river; quests are posted here.",
			Connections: []string{"meadow_hollow"},
			Activities:  []Activity{ActivityShop},
		},
	}
}
