package game

import (
	"log"
	"math/rand"
	"time"

	"petden/internal/clock"
	"petden/internal/config"
	"petden/internal/item"
	"petden/internal/pet"
	"petden/internal/quest"
	"petden/internal/species"
	"petden/internal/world"
)

// Engine bundles the injected read-only registries and balance the pure
// state-transition functions need. It holds no mutable state of its own.
type Engine struct {
	Species    *species.Registry
	Items      *item.Registry
	Quests     *quest.Registry
	Locations  *world.Registry
	Facilities *FacilityRegistry
	Balance    config.Balance
	Logger     *log.Logger
}

func (e Engine) logf(format string, args ...any) {
	if e.Logger != nil {
		e.Logger.Printf(format, args...)
	}
}

// NewGame creates an initialized state with a newborn pet at the start
// location, daily quests already active.
func (e Engine) NewGame(petName, speciesID string, now time.Time) (State, bool) {
	p, ok := pet.New(petName, speciesID, e.Species, now, e.Balance.PoopThreshold)
	if !ok {
		e.logf("unknown species %q", speciesID)
		return State{}, false
	}

	s := State{
		Pet: &p,
		Player: Player{
			Coins:     100,
			Inventory: item.Inventory{"food_apple": 2, "water_flask": 2},
			Skills: Skills{
				Levels: map[string]int{"foraging": 1, "training": 1},
				XP:     map[string]int{},
			},
			Location: e.Locations.StartID(),
			Visited:  map[string]bool{e.Locations.StartID(): true},
			Unlocks:  map[string]bool{},
		},
		TotalTicks:      0,
		LastSaveTime:    now,
		LastDailyReset:  clock.Midnight(now),
		LastWeeklyReset: clock.WeekStart(now),
		IsInitialized:   true,
	}
	s.Quests = quest.Refresh(nil, e.Quests, quest.TypeDaily, now, clock.NextDailyReset(now))
	s.Quests = quest.Refresh(s.Quests, e.Quests, quest.TypeWeekly, now, clock.NextWeeklyReset(now))
	return s, true
}

// ProcessGameTick advances the whole game by one tick at the simulated
// timestamp now. Order: calendar resets, stale notification clear, pet tick,
// exploration countdown/completion, training completion, bookkeeping.
func (e Engine) ProcessGameTick(s State, now time.Time) State {
	next := s.Clone()

	// Stale completion notifications never outlive the tick they happened in.
	next.LastExplorationResult = nil

	next = e.applyCalendarResets(next, now)

	if next.Pet == nil {
		next.TotalTicks++
		next.LastSaveTime = now
		return next
	}

	ticked, report := pet.Tick(*next.Pet, e.Species, e.Balance)
	next.Pet = &ticked

	if ticked.Activity == pet.ActivityExploring && ticked.ActiveExploration != nil {
		next = e.advanceExploration(next, now)
	}

	if report.TrainingCompleted != nil {
		next = e.completeTraining(next, *report.TrainingCompleted)
	}

	next.TotalTicks++
	next.LastSaveTime = now
	return next
}

// applyCalendarResets fires the daily and weekly resets for any boundary
// crossed since the stored stamps. Called with each tick's simulated
// timestamp, so multi-day offline replays reset once per crossed boundary.
func (e Engine) applyCalendarResets(s State, now time.Time) State {
	if clock.ShouldDailyReset(s.LastDailyReset, now) {
		if s.Pet != nil {
			p := s.Pet.Clone()
			p.Sleep = pet.ResetSleepDay(p.Sleep)
			s.Pet = &p
		}
		s.Quests = quest.Refresh(s.Quests, e.Quests, quest.TypeDaily, now, clock.NextDailyReset(now))
		s.LastDailyReset = clock.Midnight(now)
	}

	if clock.ShouldWeeklyReset(s.LastWeeklyReset, now) {
		s.Quests = quest.Refresh(s.Quests, e.Quests, quest.TypeWeekly, now, clock.NextWeeklyReset(now))
		s.LastWeeklyReset = clock.WeekStart(now)
	}

	if expired, changed := quest.ExpireTimed(s.Quests, now); changed {
		s.Quests = expired
	}

	return s
}

// advanceExploration counts the active trip down by one tick and applies
// completion: roll the location's drop table, merge loot, grant skill XP,
// progress quests, publish the result.
func (e Engine) advanceExploration(s State, now time.Time) State {
	p := s.Pet.Clone()
	ex := *p.ActiveExploration
	ex.TicksRemaining--

	if ex.TicksRemaining > 0 {
		p.ActiveExploration = &ex
		s.Pet = &p
		return s
	}

	p.ActiveExploration = nil
	p.Activity = pet.ActivityIdle
	s.Pet = &p

	loc, ok := e.Locations.Get(ex.LocationID)
	if !ok {
		e.logf("exploration finished at unknown location %q", ex.LocationID)
		return s
	}

	forageLevel := s.Player.Skills.Level("foraging")
	rng := rand.New(rand.NewSource(explorationSeed(s.TotalTicks, forageLevel)))
	drops := loc.ForageTable.Roll(rng)

	for _, d := range drops {
		if _, known := e.Items.Get(d.ItemID); !known {
			e.logf("dropping unknown item %q from forage table %q", d.ItemID, loc.ID)
			continue
		}
		s.Player.Inventory.Add(d.ItemID, d.Amount)
		s.Quests, _ = quest.UpdateProgress(s.Quests, e.Quests, quest.ActionAcquireItem, d.ItemID, d.Amount)
	}

	s.Player.Skills = grantSkillXP(s.Player.Skills, "foraging", e.Balance.ForageXP, e.Balance)
	s.Quests, _ = quest.UpdateProgress(s.Quests, e.Quests, quest.ActionForage, loc.ID, 1)

	s.LastExplorationResult = &ExplorationResult{
		LocationID:  loc.ID,
		Drops:       drops,
		SkillXP:     e.Balance.ForageXP,
		CompletedAt: now,
	}
	return s
}

// completeTraining applies the finished session's stat gain and progress.
func (e Engine) completeTraining(s State, done pet.Training) State {
	p := s.Pet.Clone()
	p.TrainedStats = addStat(p.TrainedStats, done.Stat, done.StatGain)
	s.Pet = &p

	s.Player.Skills = grantSkillXP(s.Player.Skills, "training", e.Balance.TrainingXP, e.Balance)
	s.Quests, _ = quest.UpdateProgress(s.Quests, e.Quests, quest.ActionCompleteTraining, done.FacilityID, 1)
	return s
}

// explorationSeed derives a deterministic drop seed from the tick counter and
// the forager's skill, so replays reproduce identical loot.
func explorationSeed(totalTicks, forageLevel int) int64 {
	return int64(totalTicks)*1099511628211 ^ int64(forageLevel)<<17
}

func addStat(b species.BattleStats, name string, gain int) species.BattleStats {
	switch name {
	case "strength":
		b.Strength += gain
	case "agility":
		b.Agility += gain
	case "vitality":
		b.Vitality += gain
	case "wisdom":
		b.Wisdom += gain
	}
	return b
}

// evalContext snapshots the state for quest requirement checks.
func (e Engine) evalContext(s State) quest.EvalContext {
	ctx := quest.EvalContext{
		CompletedQuests:  s.CompletedQuestIDs(),
		SkillLevels:      s.Player.Skills.Levels,
		HasItem:          s.Player.Inventory.Has,
		VisitedLocations: s.Player.Visited,
	}
	if s.Pet != nil {
		ctx.Stage = s.Pet.Growth.Stage
	}
	return ctx
}
