package config

import (
	"os"
	"strconv"
)

// FromEnv loads balance configuration from environment variables, falling
// back to defaults when unset.
func FromEnv() Balance {
	if mode := os.Getenv("PETDEN_DIFFICULTY"); mode != "" {
		switch mode {
		case "gentle":
			return Gentle()
		case "harsh":
			return Harsh()
		}
	}

	cfg := Default()

	if val := getEnvInt("PETDEN_MAX_OFFLINE_TICKS"); val > 0 {
		cfg.MaxOfflineTicks = val
	}
	if val := getEnvInt("PETDEN_POOP_MAX_COUNT"); val > 0 {
		cfg.PoopMaxCount = val
	}
	if val := getEnvInt("PETDEN_SATIETY_DECAY_AWAKE"); val > 0 {
		cfg.SatietyDecayAwake = val
	}
	if val := getEnvInt("PETDEN_HYDRATION_DECAY_AWAKE"); val > 0 {
		cfg.HydrationDecayAwake = val
	}
	if val := getEnvInt("PETDEN_HAPPINESS_DECAY_AWAKE"); val > 0 {
		cfg.HappinessDecayAwake = val
	}
	if val := getEnvInt("PETDEN_ENERGY_REGEN_ASLEEP"); val > 0 {
		cfg.EnergyRegenAsleep = val
	}

	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}
