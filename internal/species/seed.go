package species

// One day of ticks at 30s per tick.
const ticksPerDay = 2880

// flatSubstages gives all three substages the same base stats.
func flatSubstages(minAge, span int, stats BattleStats) []SubstageDef {
	return []SubstageDef{
		{Substage: SubstageEarly, MinAgeTicks: minAge, BaseStats: stats},
		{Substage: SubstageMiddle, MinAgeTicks: minAge + span/3, BaseStats: stats},
		{Substage: SubstageLate, MinAgeTicks: minAge + 2*span/3, BaseStats: stats},
	}
}

// rampSubstages bumps strength by one per substage within the stage.
func rampSubstages(minAge, span int, stats BattleStats) []SubstageDef {
	mid := stats
	mid.Strength++
	late := mid
	late.Strength++
	return []SubstageDef{
		{Substage: SubstageEarly, MinAgeTicks: minAge, BaseStats: stats},
		{Substage: SubstageMiddle, MinAgeTicks: minAge + span/3, BaseStats: mid},
		{Substage: SubstageLate, MinAgeTicks: minAge + 2*span/3, BaseStats: late},
	}
}

// Defaults returns the built-in species set.
func Defaults() []Species {
	return []Species{
		{
			ID:          "florabit",
			Name:        "Florabit",
			Description: "A hardy sprout-creature with a medium growth rate.",
			Resistances: map[string]int{"water": 10, "fire": -10},
			Stages: []StageDef{
				{
					Stage: StageBaby, MinAgeTicks: 0,
					CareStatMax: 100, EnergyMax: 100, CareLifeMax: 100,
					Substages: flatSubstages(0, ticksPerDay, BattleStats{Strength: 5, Agility: 5, Vitality: 6, Wisdom: 4}),
				},
				{
					Stage: StageChild, MinAgeTicks: ticksPerDay,
					CareStatMax: 120, EnergyMax: 120, CareLifeMax: 100,
					Substages: flatSubstages(ticksPerDay, 2*ticksPerDay, BattleStats{Strength: 8, Agility: 8, Vitality: 9, Wisdom: 7}),
				},
				{
					Stage: StageTeen, MinAgeTicks: 3 * ticksPerDay,
					CareStatMax: 140, EnergyMax: 140, CareLifeMax: 100,
					Substages: flatSubstages(3*ticksPerDay, 4*ticksPerDay, BattleStats{Strength: 11, Agility: 11, Vitality: 12, Wisdom: 10}),
				},
				{
					Stage: StageYoungAdult, MinAgeTicks: 7 * ticksPerDay,
					CareStatMax: 160, EnergyMax: 160, CareLifeMax: 100,
					Substages: flatSubstages(7*ticksPerDay, 7*ticksPerDay, BattleStats{Strength: 14, Agility: 14, Vitality: 15, Wisdom: 13}),
				},
				{
					Stage: StageAdult, MinAgeTicks: 14 * ticksPerDay,
					CareStatMax: 180, EnergyMax: 180, CareLifeMax: 100,
					Substages: flatSubstages(14*ticksPerDay, 12*ticksPerDay, BattleStats{Strength: 17, Agility: 17, Vitality: 18, Wisdom: 16}),
				},
			},
		},
		{
			ID:          "emberling",
			Name:        "Emberling",
			Description: "A fast-growing cinder sprite; base stats climb within each stage.",
			Resistances: map[string]int{"fire": 20, "water": -15},
			Stages: []StageDef{
				{
					Stage: StageBaby, MinAgeTicks: 0,
					CareStatMax: 90, EnergyMax: 110, CareLifeMax: 90,
					Substages: rampSubstages(0, ticksPerDay/2, BattleStats{Strength: 6, Agility: 7, Vitality: 4, Wisdom: 4}),
				},
				{
					Stage: StageChild, MinAgeTicks: ticksPerDay / 2,
					CareStatMax: 110, EnergyMax: 130, CareLifeMax: 90,
					Substages: rampSubstages(ticksPerDay/2, ticksPerDay, BattleStats{Strength: 10, Agility: 11, Vitality: 7, Wisdom: 6}),
				},
				{
					Stage: StageTeen, MinAgeTicks: 3 * ticksPerDay / 2,
					CareStatMax: 130, EnergyMax: 150, CareLifeMax: 90,
					Substages: rampSubstages(3*ticksPerDay/2, 2*ticksPerDay, BattleStats{Strength: 14, Agility: 15, Vitality: 10, Wisdom: 9}),
				},
				{
					Stage: StageYoungAdult, MinAgeTicks: 7 * ticksPerDay / 2,
					CareStatMax: 150, EnergyMax: 170, CareLifeMax: 90,
					Substages: rampSubstages(7*ticksPerDay/2, 7*ticksPerDay/2, BattleStats{Strength: 18, Agility: 19, Vitality: 13, Wisdom: 12}),
				},
				{
					Stage: StageAdult, MinAgeTicks: 7 * ticksPerDay,
					CareStatMax: 170, EnergyMax: 190, CareLifeMax: 90,
					Substages: rampSubstages(7*ticksPerDay, 6*ticksPerDay, BattleStats{Strength: 22, Agility: 23, Vitality: 16, Wisdom: 15}),
				},
			},
		},
		{
			ID:          "aquafin",
			Name:        "Aquafin",
			Description: "A patient river-dweller; slow to mature, sturdy once grown.",
			Resistances: map[string]int{"water": 25, "fire": -20},
			Stages: []StageDef{
				{
					Stage: StageBaby, MinAgeTicks: 0,
					CareStatMax: 110, EnergyMax: 90, CareLifeMax: 120,
					Substages: flatSubstages(0, 2*ticksPerDay, BattleStats{Strength: 4, Agility: 4, Vitality: 8, Wisdom: 5}),
				},
				{
					Stage: StageChild, MinAgeTicks: 2 * ticksPerDay,
					CareStatMax: 130, EnergyMax: 110, CareLifeMax: 120,
					Substages: flatSubstages(2*ticksPerDay, 4*ticksPerDay, BattleStats{Strength: 7, Agility: 7, Vitality: 12, Wisdom: 8}),
				},
				{
					Stage: StageTeen, MinAgeTicks: 6 * ticksPerDay,
					CareStatMax: 150, EnergyMax: 130, CareLifeMax: 120,
					Substages: flatSubstages(6*ticksPerDay, 8*ticksPerDay, BattleStats{Strength: 10, Agility: 10, Vitality: 16, Wisdom: 11}),
				},
				{
					Stage: StageYoungAdult, MinAgeTicks: 14 * ticksPerDay,
					CareStatMax: 170, EnergyMax: 150, CareLifeMax: 120,
					Substages: flatSubstages(14*ticksPerDay, 14*ticksPerDay, BattleStats{Strength: 13, Agility: 13, Vitality: 20, Wisdom: 14}),
				},
				{
					Stage: StageAdult, MinAgeTicks: 28 * ticksPerDay,
					CareStatMax: 190, EnergyMax: 170, CareLifeMax: 120,
					Substages: flatSubstages(28*ticksPerDay, 20*ticksPerDay, BattleStats{Strength: 16, Agility: 16, Vitality: 24, Wisdom: 17}),
				},
			},
		},
	}
}
