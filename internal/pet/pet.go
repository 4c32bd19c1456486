// Package pet implements the per-pet slice of the simulation: care stats,
// energy, sleep, poop, growth, and the single-tick processor composing them.
// Everything here is pure; callers pass a Pet value in and get a new one back.
package pet

import (
	"time"

	"petden/internal/species"
	"petden/internal/stat"
)

// ActivityState gates which actions are permitted. A pet is in exactly one
// activity at a time.
type ActivityState string

const (
	ActivityIdle      ActivityState = "idle"
	ActivitySleeping  ActivityState = "sleeping"
	ActivityTraining  ActivityState = "training"
	ActivityExploring ActivityState = "exploring"
	ActivityBattling  ActivityState = "battling"
)

// CareStats are the decaying needs, in micro-units.
type CareStats struct {
	Satiety   stat.Micro `json:"satiety"`
	Hydration stat.Micro `json:"hydration"`
	Happiness stat.Micro `json:"happiness"`
}

// EnergyStats holds the regenerating energy pool.
type EnergyStats struct {
	Energy stat.Micro `json:"energy"`
}

// CareLifeStats holds the long-term survival stat.
type CareLifeStats struct {
	CareLife stat.Micro `json:"care_life"`
}

// PoopState is a fixed micro threshold counted down at a sleep-dependent
// rate; hitting zero increments Count and rearms the countdown.
type PoopState struct {
	Count          int        `json:"count"`
	TicksUntilNext stat.Micro `json:"ticks_until_next"`
}

// SleepState tracks whether the pet is asleep and how much it slept today.
type SleepState struct {
	IsSleeping     bool       `json:"is_sleeping"`
	SleepStartTime *time.Time `json:"sleep_start_time,omitempty"`
	SleepTicksToday int       `json:"sleep_ticks_today"`
}

// Growth ties age to the derived stage/substage. Stage and Substage are
// recomputed from AgeTicks every tick and never drift independently.
type Growth struct {
	Stage     species.Stage    `json:"stage"`
	Substage  species.Substage `json:"substage"`
	BirthTime time.Time        `json:"birth_time"`
	AgeTicks  int              `json:"age_ticks"`
}

// Training is an in-progress training session.
type Training struct {
	FacilityID     string `json:"facility_id"`
	Stat           string `json:"stat"`
	DurationTicks  int    `json:"duration_ticks"`
	TicksRemaining int    `json:"ticks_remaining"`
	StatGain       int    `json:"stat_gain"`
}

// Exploration is an in-progress foraging trip.
type Exploration struct {
	LocationID     string `json:"location_id"`
	DurationTicks  int    `json:"duration_ticks"`
	TicksRemaining int    `json:"ticks_remaining"`
}

// MaxStats are the clamping ceilings derived from species, stage, and bonus
// stats, in micro-units.
type MaxStats struct {
	Satiety   stat.Micro `json:"satiety"`
	Hydration stat.Micro `json:"hydration"`
	Happiness stat.Micro `json:"happiness"`
	Energy    stat.Micro `json:"energy"`
	CareLife  stat.Micro `json:"care_life"`
}

// BonusMaxStats raise the derived maxima, in display units.
type BonusMaxStats struct {
	CareStats int `json:"care_stats"`
	Energy    int `json:"energy"`
	CareLife  int `json:"care_life"`
}

// Pet is the full per-pet state.
type Pet struct {
	Name      string `json:"name"`
	SpeciesID string `json:"species_id"`

	Growth        Growth        `json:"growth"`
	CareStats     CareStats     `json:"care_stats"`
	EnergyStats   EnergyStats   `json:"energy_stats"`
	CareLifeStats CareLifeStats `json:"care_life_stats"`

	// BattleStats is the species-stage-base component; stage transitions
	// replace it. TrainedStats accumulates training gains and survives
	// transitions; the two are summed on read.
	BattleStats  species.BattleStats `json:"battle_stats"`
	TrainedStats species.BattleStats `json:"trained_stats"`

	Resistances map[string]int `json:"resistances,omitempty"`

	Poop  PoopState  `json:"poop"`
	Sleep SleepState `json:"sleep"`

	Activity          ActivityState  `json:"activity"`
	ActiveTraining    *Training      `json:"active_training,omitempty"`
	ActiveExploration *Exploration   `json:"active_exploration,omitempty"`
	BonusMaxStats     *BonusMaxStats `json:"bonus_max_stats,omitempty"`
}

// New creates a newborn pet with full stats. Returns false when the species
// is unknown.
func New(name, speciesID string, reg *species.Registry, birth time.Time, poopThreshold int) (Pet, bool) {
	sp, ok := reg.Get(speciesID)
	if !ok {
		return Pet{}, false
	}
	stage, sub := sp.StageFor(0)
	base, ok := sp.BaseStats(stage, sub)
	if !ok {
		return Pet{}, false
	}

	p := Pet{
		Name:      name,
		SpeciesID: speciesID,
		Growth: Growth{
			Stage:     stage,
			Substage:  sub,
			BirthTime: birth,
			AgeTicks:  0,
		},
		BattleStats: base,
		Resistances: sp.Resistances,
		Poop:        PoopState{Count: 0, TicksUntilNext: stat.Micro(poopThreshold)},
		Activity:    ActivityIdle,
	}

	max, _ := MaxFor(p, reg)
	p.CareStats = CareStats{Satiety: max.Satiety, Hydration: max.Hydration, Happiness: max.Happiness}
	p.EnergyStats = EnergyStats{Energy: max.Energy}
	p.CareLifeStats = CareLifeStats{CareLife: max.CareLife}
	return p, true
}

// MaxFor derives the stat ceilings for the pet's current stage. Returns false
// when the species is unknown, leaving the caller's prior stats untouched.
func MaxFor(p Pet, reg *species.Registry) (MaxStats, bool) {
	sp, ok := reg.Get(p.SpeciesID)
	if !ok {
		return MaxStats{}, false
	}
	def, ok := sp.StageDefFor(p.Growth.Stage)
	if !ok {
		return MaxStats{}, false
	}

	care := def.CareStatMax
	energy := def.EnergyMax
	life := def.CareLifeMax
	if p.BonusMaxStats != nil {
		care += p.BonusMaxStats.CareStats
		energy += p.BonusMaxStats.Energy
		life += p.BonusMaxStats.CareLife
	}

	return MaxStats{
		Satiety:   stat.FromDisplay(care),
		Hydration: stat.FromDisplay(care),
		Happiness: stat.FromDisplay(care),
		Energy:    stat.FromDisplay(energy),
		CareLife:  stat.FromDisplay(life),
	}, true
}

// EffectiveBattleStats sums the stage-base and trained components.
func (p Pet) EffectiveBattleStats() species.BattleStats {
	return p.BattleStats.Add(p.TrainedStats)
}

// IsAsleep reports the sleep flag used by the sleep-sensitive sub-systems.
func (p Pet) IsAsleep() bool {
	return p.Sleep.IsSleeping
}

// Clone returns a deep copy.
func (p Pet) Clone() Pet {
	out := p
	if p.ActiveTraining != nil {
		t := *p.ActiveTraining
		out.ActiveTraining = &t
	}
	if p.ActiveExploration != nil {
		e := *p.ActiveExploration
		out.ActiveExploration = &e
	}
	if p.BonusMaxStats != nil {
		b := *p.BonusMaxStats
		out.BonusMaxStats = &b
	}
	if p.Sleep.SleepStartTime != nil {
		t := *p.Sleep.SleepStartTime
		out.Sleep.SleepStartTime = &t
	}
	if p.Resistances != nil {
		out.Resistances = make(map[string]int, len(p.Resistances))
		for k, v := range p.Resistances {
			out.Resistances[k] = v
		}
	}
	return out
}
