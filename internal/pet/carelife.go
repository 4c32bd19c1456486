package pet

import (
	"petden/internal/config"
	"petden/internal/stat"
)

// AdvanceCareLife applies one tick of care-life drain or recovery, never
// both. Drain rules are evaluated first and take precedence: any zeroed care
// stat drains at a tiered rate, with a surcharge once the poop count reaches
// the high threshold. With no drain, recovery applies when all three care
// stats clear a percent-of-max tier. The result clamps to [0, max].
func AdvanceCareLife(life stat.Micro, cs CareStats, max MaxStats, poopCount int, bal config.Balance) stat.Micro {
	zeroed := 0
	if cs.Satiety == 0 {
		zeroed++
	}
	if cs.Hydration == 0 {
		zeroed++
	}
	if cs.Happiness == 0 {
		zeroed++
	}

	drain := 0
	switch zeroed {
	case 1:
		drain = bal.CareLifeDrain1
	case 2:
		drain = bal.CareLifeDrain2
	case 3:
		drain = bal.CareLifeDrain3
	}
	if poopCount >= bal.PoopHighCount {
		drain += bal.CareLifeDrainDirty
	}

	if drain > 0 {
		return (life - stat.Micro(drain)).Clamp(max.CareLife)
	}

	recover := 0
	if allAtLeastPct(cs, max, 100) {
		recover = bal.CareLifeRecover100
	} else if allAtLeastPct(cs, max, 75) {
		recover = bal.CareLifeRecover75
	} else if allAtLeastPct(cs, max, 50) {
		recover = bal.CareLifeRecover50
	}

	return (life + stat.Micro(recover)).Clamp(max.CareLife)
}

func allAtLeastPct(cs CareStats, max MaxStats, pct int) bool {
	return cs.Satiety.AtLeastPct(max.Satiety, pct) &&
		cs.Hydration.AtLeastPct(max.Hydration, pct) &&
		cs.Happiness.AtLeastPct(max.Happiness, pct)
}
