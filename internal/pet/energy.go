package pet

import (
	"petden/internal/config"
	"petden/internal/stat"
)

// RegenEnergy applies one tick of energy regeneration, clamped to max.
// Sleeping regenerates faster than being awake.
func RegenEnergy(energy stat.Micro, asleep bool, max stat.Micro, bal config.Balance) stat.Micro {
	rate := bal.EnergyRegenAwake
	if asleep {
		rate = bal.EnergyRegenAsleep
	}
	return (energy + stat.Micro(rate)).Clamp(max)
}
