package pet

import (
	"petden/internal/config"
	"petden/internal/stat"
)

// AdvancePoop counts the fixed threshold down by a sleep-dependent rate.
// Reaching zero increments the count (capped) and rearms the full threshold.
// The fixed-threshold/variable-rate shape keeps partial progress when the pet
// falls asleep or wakes mid-cycle.
func AdvancePoop(ps PoopState, asleep bool, bal config.Balance) PoopState {
	rate := bal.PoopRateAwake
	if asleep {
		rate = bal.PoopRateAsleep
	}

	next := ps
	next.TicksUntilNext -= stat.Micro(rate)
	if next.TicksUntilNext <= 0 {
		if next.Count < bal.PoopMaxCount {
			next.Count++
		}
		next.TicksUntilNext = stat.Micro(bal.PoopThreshold)
	}
	return next
}
