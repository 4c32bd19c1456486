package pet

import (
	"petden/internal/config"
	"petden/internal/stat"
)

// DecayCareStats applies one tick of care-stat decay. Sleeping pets decay
// slower. Happiness decay is scaled by the poop multiplier for poopCount,
// which callers read at the start of the tick (before this tick's poop
// accumulation); satiety and hydration ignore poop. Results clamp at zero.
func DecayCareStats(cs CareStats, asleep bool, poopCount int, bal config.Balance) CareStats {
	satietyRate := bal.SatietyDecayAwake
	hydrationRate := bal.HydrationDecayAwake
	happinessRate := bal.HappinessDecayAwake
	if asleep {
		satietyRate = bal.SatietyDecayAsleep
		hydrationRate = bal.HydrationDecayAsleep
		happinessRate = bal.HappinessDecayAsleep
	}

	happinessRate = happinessRate * bal.HappinessMultiplierPct(poopCount) / 100

	return CareStats{
		Satiety:   floorZero(cs.Satiety - stat.Micro(satietyRate)),
		Hydration: floorZero(cs.Hydration - stat.Micro(hydrationRate)),
		Happiness: floorZero(cs.Happiness - stat.Micro(happinessRate)),
	}
}

func floorZero(m stat.Micro) stat.Micro {
	if m < 0 {
		return 0
	}
	return m
}
