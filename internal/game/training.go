package game

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"petden/internal/species"
)

// Facility is one training option: which battle stat it raises, how long a
// session runs, and what it costs.
type Facility struct {
	ID            string        `yaml:"id" json:"id"`
	Name          string        `yaml:"name" json:"name"`
	LocationID    string        `yaml:"location_id" json:"location_id"`
	Stat          string        `yaml:"stat" json:"stat"` // strength|agility|vitality|wisdom
	DurationTicks int           `yaml:"duration_ticks" json:"duration_ticks"`
	EnergyCost    int           `yaml:"energy_cost" json:"energy_cost"` // display units
	StatGain      int           `yaml:"stat_gain" json:"stat_gain"`
	MinStage      species.Stage `yaml:"min_stage" json:"min_stage"`
}

// FacilityRegistry is a read-only id -> facility lookup.
type FacilityRegistry struct {
	byID map[string]Facility
}

func NewFacilityRegistry(list []Facility) *FacilityRegistry {
	r := &FacilityRegistry{byID: make(map[string]Facility, len(list))}
	for _, f := range list {
		r.byID[f.ID] = f
	}
	return r
}

func (r *FacilityRegistry) Get(id string) (Facility, bool) {
	f, ok := r.byID[id]
	return f, ok
}

func (r *FacilityRegistry) IDs() []string {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LoadFacilities reads facility definitions from a YAML file.
func LoadFacilities(path string) ([]Facility, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var list []Facility
	if err := yaml.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// DefaultFacilities returns the built-in training options.
func DefaultFacilities() []Facility {
	return []Facility{
		{ID: "boulder_yard", Name: "Boulder Yard", LocationID: "training_grounds", Stat: "strength", DurationTicks: 30, EnergyCost: 20, StatGain: 1, MinStage: species.StageBaby},
		{ID: "balance_beams", Name: "Balance Beams", LocationID: "training_grounds", Stat: "agility", DurationTicks: 30, EnergyCost: 20, StatGain: 1, MinStage: species.StageBaby},
		{ID: "endurance_track", Name: "Endurance Track", LocationID: "training_grounds", Stat: "vitality", DurationTicks: 45, EnergyCost: 30, StatGain: 2, MinStage: species.StageChild},
		{ID: "puzzle_garden", Name: "Puzzle Garden", LocationID: "training_grounds", Stat: "wisdom", DurationTicks: 45, EnergyCost: 25, StatGain: 2, MinStage: species.StageChild},
	}
}
