package pet

import "petden/internal/species"

// GrowthReport describes what a growth step did, for notifications.
type GrowthReport struct {
	StageChanged     bool
	SubstageChanged  bool
	PreviousStage    species.Stage
	PreviousSubstage species.Substage
}

// AdvanceGrowth ages the pet by one tick and recomputes stage/substage from
// the new age. On a main-stage transition the base battle stats are replaced
// by the new stage's species base; a substage-only transition likewise
// recomputes from the new substage's base. Trained stats are stored
// separately and untouched here.
func AdvanceGrowth(p Pet, sp species.Species) (Pet, GrowthReport) {
	report := GrowthReport{
		PreviousStage:    p.Growth.Stage,
		PreviousSubstage: p.Growth.Substage,
	}

	p.Growth.AgeTicks++
	stage, sub := sp.StageFor(p.Growth.AgeTicks)
	report.StageChanged = stage != report.PreviousStage
	report.SubstageChanged = !report.StageChanged && sub != report.PreviousSubstage

	p.Growth.Stage = stage
	p.Growth.Substage = sub

	if report.StageChanged || report.SubstageChanged {
		if base, ok := sp.BaseStats(stage, sub); ok {
			p.BattleStats = base
		}
	}

	return p, report
}
