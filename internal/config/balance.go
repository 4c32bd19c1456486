package config

// Balance holds every gameplay tunable. Rates are micro-units per tick
// (1000 micro = 1 display unit, 1 tick = 30s).
type Balance struct {
	// Care-stat decay
	SatietyDecayAwake    int `yaml:"satiety_decay_awake" json:"satiety_decay_awake"`
	SatietyDecayAsleep   int `yaml:"satiety_decay_asleep" json:"satiety_decay_asleep"`
	HydrationDecayAwake  int `yaml:"hydration_decay_awake" json:"hydration_decay_awake"`
	HydrationDecayAsleep int `yaml:"hydration_decay_asleep" json:"hydration_decay_asleep"`
	HappinessDecayAwake  int `yaml:"happiness_decay_awake" json:"happiness_decay_awake"`
	HappinessDecayAsleep int `yaml:"happiness_decay_asleep" json:"happiness_decay_asleep"`

	// Energy regeneration
	EnergyRegenAwake  int `yaml:"energy_regen_awake" json:"energy_regen_awake"`
	EnergyRegenAsleep int `yaml:"energy_regen_asleep" json:"energy_regen_asleep"`

	// Poop accumulation: fixed micro threshold counted down at a
	// sleep-dependent rate so partial progress survives sleep changes.
	PoopThreshold  int `yaml:"poop_threshold" json:"poop_threshold"`
	PoopRateAwake  int `yaml:"poop_rate_awake" json:"poop_rate_awake"`
	PoopRateAsleep int `yaml:"poop_rate_asleep" json:"poop_rate_asleep"`
	PoopMaxCount   int `yaml:"poop_max_count" json:"poop_max_count"`
	PoopHighCount  int `yaml:"poop_high_count" json:"poop_high_count"`

	// Happiness decay multiplier (percent) by poop count tiers.
	DirtyMildCount  int `yaml:"dirty_mild_count" json:"dirty_mild_count"`
	DirtyMildPct    int `yaml:"dirty_mild_pct" json:"dirty_mild_pct"`
	DirtyBadCount   int `yaml:"dirty_bad_count" json:"dirty_bad_count"`
	DirtyBadPct     int `yaml:"dirty_bad_pct" json:"dirty_bad_pct"`
	DirtyAwfulCount int `yaml:"dirty_awful_count" json:"dirty_awful_count"`
	DirtyAwfulPct   int `yaml:"dirty_awful_pct" json:"dirty_awful_pct"`

	// Care-life drain per tick by number of zeroed care stats, plus a
	// surcharge when poop count reaches PoopHighCount.
	CareLifeDrain1     int `yaml:"care_life_drain_1" json:"care_life_drain_1"`
	CareLifeDrain2     int `yaml:"care_life_drain_2" json:"care_life_drain_2"`
	CareLifeDrain3     int `yaml:"care_life_drain_3" json:"care_life_drain_3"`
	CareLifeDrainDirty int `yaml:"care_life_drain_dirty" json:"care_life_drain_dirty"`

	// Care-life recovery per tick when all care stats clear a percent-of-max
	// tier. Drain always takes precedence over recovery.
	CareLifeRecover50  int `yaml:"care_life_recover_50" json:"care_life_recover_50"`
	CareLifeRecover75  int `yaml:"care_life_recover_75" json:"care_life_recover_75"`
	CareLifeRecover100 int `yaml:"care_life_recover_100" json:"care_life_recover_100"`

	// Offline catch-up
	MaxOfflineTicks int `yaml:"max_offline_ticks" json:"max_offline_ticks"`

	// Skill progression: XP needed per level is level * SkillXPPerLevel.
	SkillXPPerLevel int `yaml:"skill_xp_per_level" json:"skill_xp_per_level"`
	ForageXP        int `yaml:"forage_xp" json:"forage_xp"`
	TrainingXP      int `yaml:"training_xp" json:"training_xp"`
}

// Default returns the default balance configuration.
func Default() Balance {
	return Balance{
		SatietyDecayAwake:    35,
		SatietyDecayAsleep:   15,
		HydrationDecayAwake:  45,
		HydrationDecayAsleep: 20,
		HappinessDecayAwake:  30,
		HappinessDecayAsleep: 10,

		EnergyRegenAwake:  10,
		EnergyRegenAsleep: 60,

		PoopThreshold:  12000,
		PoopRateAwake:  60,
		PoopRateAsleep: 15,
		PoopMaxCount:   12,
		PoopHighCount:  10,

		DirtyMildCount:  1,
		DirtyMildPct:    150,
		DirtyBadCount:   3,
		DirtyBadPct:     200,
		DirtyAwfulCount: 5,
		DirtyAwfulPct:   300,

		CareLifeDrain1:     10,
		CareLifeDrain2:     25,
		CareLifeDrain3:     50,
		CareLifeDrainDirty: 15,

		CareLifeRecover50:  5,
		CareLifeRecover75:  10,
		CareLifeRecover100: 20,

		MaxOfflineTicks: 30 * 2880, // 30 days

		SkillXPPerLevel: 100,
		ForageXP:        10,
		TrainingXP:      15,
	}
}

// Gentle returns easier balance: slower decay, faster recovery.
func Gentle() Balance {
	cfg := Default()
	cfg.SatietyDecayAwake = 25
	cfg.HydrationDecayAwake = 30
	cfg.HappinessDecayAwake = 20
	cfg.EnergyRegenAwake = 15
	cfg.CareLifeRecover50 = 10
	cfg.CareLifeRecover75 = 15
	cfg.CareLifeRecover100 = 30
	return cfg
}

// Harsh returns punishing balance for experienced keepers.
func Harsh() Balance {
	cfg := Default()
	cfg.SatietyDecayAwake = 50
	cfg.HydrationDecayAwake = 60
	cfg.HappinessDecayAwake = 40
	cfg.PoopRateAwake = 90
	cfg.CareLifeDrain1 = 20
	cfg.CareLifeDrain2 = 40
	cfg.CareLifeDrain3 = 80
	cfg.MaxOfflineTicks = 7 * 2880
	return cfg
}

// HappinessMultiplierPct returns the happiness decay multiplier in percent for
// a given start-of-tick poop count.
func (b Balance) HappinessMultiplierPct(poopCount int) int {
	switch {
	case poopCount >= b.DirtyAwfulCount:
		return b.DirtyAwfulPct
	case poopCount >= b.DirtyBadCount:
		return b.DirtyBadPct
	case poopCount >= b.DirtyMildCount:
		return b.DirtyMildPct
	default:
		return 100
	}
}
