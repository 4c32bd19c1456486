// Package species holds the read-only species definitions: growth-stage
// thresholds, per-stage base battle stats, and care-stat maxima.
package species

// Stage is a main growth stage. Order is fixed; adult is terminal.
type Stage string

const (
	StageBaby       Stage = "baby"
	StageChild      Stage = "child"
	StageTeen       Stage = "teen"
	StageYoungAdult Stage = "youngAdult"
	StageAdult      Stage = "adult"
)

// StageOrder lists stages youngest-first.
var StageOrder = []Stage{StageBaby, StageChild, StageTeen, StageYoungAdult, StageAdult}

// StageRank returns the index of a stage in StageOrder, or -1.
func StageRank(s Stage) int {
	for i, st := range StageOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// Substage subdivides a stage.
type Substage string

const (
	SubstageEarly  Substage = "early"
	SubstageMiddle Substage = "middle"
	SubstageLate   Substage = "late"
)

// BattleStats is the stage-base component of a pet's combat stats.
type BattleStats struct {
	Strength int `yaml:"strength" json:"strength"`
	Agility  int `yaml:"agility" json:"agility"`
	Vitality int `yaml:"vitality" json:"vitality"`
	Wisdom   int `yaml:"wisdom" json:"wisdom"`
}

// Add returns the component-wise sum.
func (b BattleStats) Add(o BattleStats) BattleStats {
	return BattleStats{
		Strength: b.Strength + o.Strength,
		Agility:  b.Agility + o.Agility,
		Vitality: b.Vitality + o.Vitality,
		Wisdom:   b.Wisdom + o.Wisdom,
	}
}

// SubstageDef varies base stats within a stage.
type SubstageDef struct {
	Substage    Substage    `yaml:"substage" json:"substage"`
	MinAgeTicks int         `yaml:"min_age_ticks" json:"min_age_ticks"`
	BaseStats   BattleStats `yaml:"base_stats" json:"base_stats"`
}

// StageDef describes one growth stage of a species.
type StageDef struct {
	Stage       Stage         `yaml:"stage" json:"stage"`
	MinAgeTicks int           `yaml:"min_age_ticks" json:"min_age_ticks"`
	CareStatMax int           `yaml:"care_stat_max" json:"care_stat_max"` // display units
	EnergyMax   int           `yaml:"energy_max" json:"energy_max"`
	CareLifeMax int           `yaml:"care_life_max" json:"care_life_max"`
	Substages   []SubstageDef `yaml:"substages" json:"substages"`
}

// Species is one creature kind. Stages must be ordered by MinAgeTicks with
// the baby stage at 0.
type Species struct {
	ID          string         `yaml:"id" json:"id"`
	Name        string         `yaml:"name" json:"name"`
	Description string         `yaml:"description" json:"description"`
	Stages      []StageDef     `yaml:"stages" json:"stages"`
	Resistances map[string]int `yaml:"resistances" json:"resistances"`
}

// StageFor derives (stage, substage) from an age in ticks.
func (s Species) StageFor(ageTicks int) (Stage, Substage) {
	stage := s.Stages[0]
	for _, def := range s.Stages {
		if ageTicks >= def.MinAgeTicks {
			stage = def
		}
	}
	sub := SubstageEarly
	for _, sd := range stage.Substages {
		if ageTicks >= sd.MinAgeTicks {
			sub = sd.Substage
		}
	}
	return stage.Stage, sub
}

// StageDefFor returns the definition of a stage.
func (s Species) StageDefFor(stage Stage) (StageDef, bool) {
	for _, def := range s.Stages {
		if def.Stage == stage {
			return def, true
		}
	}
	return StageDef{}, false
}

// BaseStats returns the species-defined base battle stats for a stage and
// substage. Falls back to the stage's first substage when the substage has no
// entry of its own.
func (s Species) BaseStats(stage Stage, sub Substage) (BattleStats, bool) {
	def, ok := s.StageDefFor(stage)
	if !ok || len(def.Substages) == 0 {
		return BattleStats{}, false
	}
	stats := def.Substages[0].BaseStats
	for _, sd := range def.Substages {
		if sd.Substage == sub {
			stats = sd.BaseStats
		}
	}
	return stats, true
}

// MinAgeFor returns the minimum age in ticks for a stage.
func (s Species) MinAgeFor(stage Stage) (int, bool) {
	def, ok := s.StageDefFor(stage)
	if !ok {
		return 0, false
	}
	return def.MinAgeTicks, true
}
