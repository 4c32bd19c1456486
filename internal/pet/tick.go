package pet

import (
	"petden/internal/config"
	"petden/internal/species"
)

// TickReport carries the per-tick signals the game layer acts on. Completion
// rewards are deliberately not applied here.
type TickReport struct {
	Growth            GrowthReport
	TrainingCompleted *Training
}

// Tick advances one pet by one simulated tick, in fixed order: growth, care
// decay, poop accumulation, care-life, energy regen, sleep accumulation,
// training countdown. Growth resolves first so care-life sees the new stage's
// maxima; the happiness poop multiplier reads the count from before this
// tick's poop step. Unknown species degrade to a pure age increment.
func Tick(p Pet, reg *species.Registry, bal config.Balance) (Pet, TickReport) {
	next := p.Clone()
	var report TickReport

	sp, known := reg.Get(next.SpeciesID)
	if known {
		next, report.Growth = AdvanceGrowth(next, sp)
	} else {
		report.Growth = GrowthReport{
			PreviousStage:    next.Growth.Stage,
			PreviousSubstage: next.Growth.Substage,
		}
		next.Growth.AgeTicks++
	}

	asleep := next.IsAsleep()
	startPoopCount := next.Poop.Count

	next.CareStats = DecayCareStats(next.CareStats, asleep, startPoopCount, bal)
	next.Poop = AdvancePoop(next.Poop, asleep, bal)

	if max, ok := MaxFor(next, reg); ok {
		next.CareLifeStats.CareLife = AdvanceCareLife(
			next.CareLifeStats.CareLife, next.CareStats, max, next.Poop.Count, bal)
		next.EnergyStats.Energy = RegenEnergy(next.EnergyStats.Energy, asleep, max.Energy, bal)
	}

	next.Sleep = AccumulateSleep(next.Sleep)

	if next.Activity == ActivityTraining && next.ActiveTraining != nil {
		t := *next.ActiveTraining
		t.TicksRemaining--
		if t.TicksRemaining <= 0 {
			report.TrainingCompleted = &t
			next.ActiveTraining = nil
			next.Activity = ActivityIdle
		} else {
			next.ActiveTraining = &t
		}
	}

	return next, report
}
