package game

import (
	"time"

	"petden/internal/clock"
	"petden/internal/pet"
)

// ProcessMultipleTicks folds ProcessGameTick over count synthetic timestamps
// spaced exactly one tick apart from startTime. Boundary detection inside
// each tick therefore sees monotonically advancing simulated time, which is
// what makes multi-day catch-up fire each calendar reset exactly once.
func (e Engine) ProcessMultipleTicks(s State, count int, startTime time.Time) State {
	ts := startTime
	for i := 0; i < count; i++ {
		ts = ts.Add(clock.TickDuration)
		s = e.ProcessGameTick(s, ts)
	}
	return s
}

// CareSnapshot is the before/after view in an offline report, display units.
type CareSnapshot struct {
	Satiety   int `json:"satiety"`
	Hydration int `json:"hydration"`
	Happiness int `json:"happiness"`
	Energy    int `json:"energy"`
	CareLife  int `json:"care_life"`

	MaxSatiety  int `json:"max_satiety"`
	MaxEnergy   int `json:"max_energy"`
	MaxCareLife int `json:"max_care_life"`

	PoopCount int `json:"poop_count"`
}

// OfflineReport summarizes an offline catch-up for the welcome-back screen.
type OfflineReport struct {
	PetName            string              `json:"pet_name"`
	ElapsedMs          int64               `json:"elapsed_ms"`
	Before             CareSnapshot        `json:"before"`
	After              CareSnapshot        `json:"after"`
	ExplorationResults []ExplorationResult `json:"exploration_results,omitempty"`
}

// CatchupResult is the outcome of ProcessOfflineCatchup.
type CatchupResult struct {
	State          State
	TicksProcessed int
	WasCapped      bool
	Report         OfflineReport
}

// ProcessOfflineCatchup replays up to maxOfflineTicks ticks starting from the
// state's last save time. elapsedMs may be zero, in which case it is derived
// from the tick count. Every exploration completed along the way is collected
// into the report, not just the last.
func (e Engine) ProcessOfflineCatchup(s State, ticksElapsed, maxOfflineTicks int, elapsedMs int64) CatchupResult {
	ticks := ticksElapsed
	capped := false
	if ticks > maxOfflineTicks {
		ticks = maxOfflineTicks
		capped = true
	}
	if elapsedMs == 0 {
		elapsedMs = int64(ticksElapsed) * clock.TickDurationMs
	}

	report := OfflineReport{
		ElapsedMs: elapsedMs,
		Before:    e.snapshot(s),
	}
	if s.Pet != nil {
		report.PetName = s.Pet.Name
	}

	next := s
	ts := s.LastSaveTime
	for i := 0; i < ticks; i++ {
		ts = ts.Add(clock.TickDuration)
		next = e.ProcessGameTick(next, ts)
		if next.LastExplorationResult != nil {
			report.ExplorationResults = append(report.ExplorationResults, *next.LastExplorationResult)
		}
	}

	report.After = e.snapshot(next)

	return CatchupResult{
		State:          next,
		TicksProcessed: ticks,
		WasCapped:      capped,
		Report:         report,
	}
}

func (e Engine) snapshot(s State) CareSnapshot {
	if s.Pet == nil {
		return CareSnapshot{}
	}
	p := *s.Pet
	snap := CareSnapshot{
		Satiety:   p.CareStats.Satiety.Display(),
		Hydration: p.CareStats.Hydration.Display(),
		Happiness: p.CareStats.Happiness.Display(),
		Energy:    p.EnergyStats.Energy.Display(),
		CareLife:  p.CareLifeStats.CareLife.Display(),
		PoopCount: p.Poop.Count,
	}
	if max, ok := pet.MaxFor(p, e.Species); ok {
		snap.MaxSatiety = max.Satiety.Display()
		snap.MaxEnergy = max.Energy.Display()
		snap.MaxCareLife = max.CareLife.Display()
	}
	return snap
}
