package game

import (
	"fmt"
	"time"

	"petden/internal/item"
	"petden/internal/pet"
	"petden/internal/quest"
	"petden/internal/species"
	"petden/internal/stat"
	"petden/internal/world"
)

// ActionResult is the outcome of every user-initiated action. Failure carries
// the input state unchanged; success carries the replacement state.
type ActionResult struct {
	Success bool   `json:"success"`
	State   State  `json:"state"`
	Message string `json:"message"`
}

func fail(s State, msg string) ActionResult {
	return ActionResult{Success: false, State: s, Message: msg}
}

func succeed(s State, msg string) ActionResult {
	return ActionResult{Success: true, State: s, Message: msg}
}

// awakeIdlePet fetches the pet for a care action, failing when there is no
// pet, it is asleep, or it is busy with an activity.
func awakeIdlePet(s State) (pet.Pet, string) {
	if s.Pet == nil {
		return pet.Pet{}, "no pet to care for"
	}
	if s.Pet.IsAsleep() {
		return pet.Pet{}, s.Pet.Name + " is sleeping"
	}
	if s.Pet.Activity != pet.ActivityIdle {
		return pet.Pet{}, s.Pet.Name + " is busy " + string(s.Pet.Activity)
	}
	return s.Pet.Clone(), ""
}

// Feed consumes a food item and restores satiety.
func (e Engine) Feed(s State, itemID string) ActionResult {
	p, msg := awakeIdlePet(s)
	if msg != "" {
		return fail(s, msg)
	}
	def, known := e.Items.Get(itemID)
	if !known || def.Kind != item.KindFood {
		return fail(s, fmt.Sprintf("%q is not food", itemID))
	}
	if !s.Player.Inventory.Has(itemID, 1) {
		return fail(s, "no "+def.Name+" in inventory")
	}

	next := s.Clone()
	next.Player.Inventory.Spend(itemID, 1)

	p.CareStats.Satiety += stat.FromDisplay(def.SatietyRestore)
	p.CareStats.Happiness += stat.FromDisplay(def.HappinessRestore)
	if max, found := pet.MaxFor(p, e.Species); found {
		p.CareStats.Satiety = p.CareStats.Satiety.Clamp(max.Satiety)
		p.CareStats.Happiness = p.CareStats.Happiness.Clamp(max.Happiness)
	}
	next.Pet = &p

	next.Quests, _ = quest.UpdateProgress(next.Quests, e.Quests, quest.ActionFeedPet, itemID, 1)
	return succeed(next, p.Name+" ate the "+def.Name)
}

// GiveDrink consumes a drink item and restores hydration.
func (e Engine) GiveDrink(s State, itemID string) ActionResult {
	p, msg := awakeIdlePet(s)
	if msg != "" {
		return fail(s, msg)
	}
	def, known := e.Items.Get(itemID)
	if !known || def.Kind != item.KindDrink {
		return fail(s, fmt.Sprintf("%q is not a drink", itemID))
	}
	if !s.Player.Inventory.Has(itemID, 1) {
		return fail(s, "no "+def.Name+" in inventory")
	}

	next := s.Clone()
	next.Player.Inventory.Spend(itemID, 1)

	p.CareStats.Hydration += stat.FromDisplay(def.HydrationRestore)
	p.CareStats.Happiness += stat.FromDisplay(def.HappinessRestore)
	if max, found := pet.MaxFor(p, e.Species); found {
		p.CareStats.Hydration = p.CareStats.Hydration.Clamp(max.Hydration)
		p.CareStats.Happiness = p.CareStats.Happiness.Clamp(max.Happiness)
	}
	next.Pet = &p

	next.Quests, _ = quest.UpdateProgress(next.Quests, e.Quests, quest.ActionGiveWater, itemID, 1)
	return succeed(next, p.Name+" drank the "+def.Name)
}

// Play restores happiness using a toy from the inventory. Toys are durable
// and are not consumed.
func (e Engine) Play(s State, itemID string) ActionResult {
	p, msg := awakeIdlePet(s)
	if msg != "" {
		return fail(s, msg)
	}
	def, known := e.Items.Get(itemID)
	if !known || def.Kind != item.KindToy {
		return fail(s, fmt.Sprintf("%q is not a toy", itemID))
	}
	if !s.Player.Inventory.Has(itemID, 1) {
		return fail(s, "no "+def.Name+" in inventory")
	}

	next := s.Clone()
	p.CareStats.Happiness += stat.FromDisplay(def.HappinessRestore)
	if max, found := pet.MaxFor(p, e.Species); found {
		p.CareStats.Happiness = p.CareStats.Happiness.Clamp(max.Happiness)
	}
	next.Pet = &p

	next.Quests, _ = quest.UpdateProgress(next.Quests, e.Quests, quest.ActionPlayWithPet, itemID, 1)
	return succeed(next, p.Name+" played with the "+def.Name)
}

// CleanPoop clears all accumulated poops. The countdown toward the next one
// keeps whatever progress it had.
func (e Engine) CleanPoop(s State) ActionResult {
	if s.Pet == nil {
		return fail(s, "no pet to clean up after")
	}
	if s.Pet.Poop.Count == 0 {
		return fail(s, "nothing to clean")
	}

	next := s.Clone()
	p := next.Pet.Clone()
	cleared := p.Poop.Count
	p.Poop.Count = 0
	next.Pet = &p

	next.Quests, _ = quest.UpdateProgress(next.Quests, e.Quests, quest.ActionCleanPoop, quest.TargetAny, 1)
	return succeed(next, fmt.Sprintf("cleaned up %d poop(s)", cleared))
}

// StartSleep puts an idle pet to sleep.
func (e Engine) StartSleep(s State, now time.Time) ActionResult {
	p, msg := awakeIdlePet(s)
	if msg != "" {
		return fail(s, msg)
	}

	next := s.Clone()
	start := now
	p.Sleep.IsSleeping = true
	p.Sleep.SleepStartTime = &start
	p.Activity = pet.ActivitySleeping
	next.Pet = &p
	return succeed(next, p.Name+" fell asleep")
}

// WakeUp wakes a sleeping pet.
func (e Engine) WakeUp(s State) ActionResult {
	if s.Pet == nil {
		return fail(s, "no pet to wake")
	}
	if !s.Pet.IsAsleep() {
		return fail(s, s.Pet.Name+" is already awake")
	}

	next := s.Clone()
	p := next.Pet.Clone()
	p.Sleep.IsSleeping = false
	p.Sleep.SleepStartTime = nil
	p.Activity = pet.ActivityIdle
	next.Pet = &p
	return succeed(next, p.Name+" woke up")
}

// StartTraining begins a session at a facility. The player must be at the
// facility's location, the pet idle, old enough, and with enough energy. The
// energy cost is paid up front and is not refunded on cancel.
func (e Engine) StartTraining(s State, facilityID string) ActionResult {
	p, msg := awakeIdlePet(s)
	if msg != "" {
		return fail(s, msg)
	}
	fac, known := e.Facilities.Get(facilityID)
	if !known {
		return fail(s, fmt.Sprintf("unknown facility %q", facilityID))
	}
	if s.Player.Location != fac.LocationID {
		return fail(s, "not at "+fac.Name)
	}
	if species.StageRank(p.Growth.Stage) < species.StageRank(fac.MinStage) {
		return fail(s, p.Name+" is too young for "+fac.Name)
	}
	cost := stat.FromDisplay(fac.EnergyCost)
	if p.EnergyStats.Energy < cost {
		return fail(s, p.Name+" is too tired to train")
	}

	next := s.Clone()
	p.EnergyStats.Energy -= cost
	p.Activity = pet.ActivityTraining
	p.ActiveTraining = &pet.Training{
		FacilityID:     fac.ID,
		Stat:           fac.Stat,
		DurationTicks:  fac.DurationTicks,
		TicksRemaining: fac.DurationTicks,
		StatGain:       fac.StatGain,
	}
	next.Pet = &p
	return succeed(next, p.Name+" started training at "+fac.Name)
}

// CancelTraining abandons an in-progress session without the stat gain.
func (e Engine) CancelTraining(s State) ActionResult {
	if s.Pet == nil || s.Pet.ActiveTraining == nil {
		return fail(s, "no training in progress")
	}

	next := s.Clone()
	p := next.Pet.Clone()
	p.ActiveTraining = nil
	p.Activity = pet.ActivityIdle
	next.Pet = &p
	return succeed(next, p.Name+" stopped training")
}

// StartExploration sends the pet foraging at the current location.
func (e Engine) StartExploration(s State) ActionResult {
	p, msg := awakeIdlePet(s)
	if msg != "" {
		return fail(s, msg)
	}
	loc, known := e.Locations.Get(s.Player.Location)
	if !known || !loc.Offers(world.ActivityExplore) {
		return fail(s, "nothing to explore here")
	}
	cost := stat.FromDisplay(loc.ForageEnergyCost)
	if p.EnergyStats.Energy < cost {
		return fail(s, p.Name+" is too tired to explore")
	}

	next := s.Clone()
	p.EnergyStats.Energy -= cost
	p.Activity = pet.ActivityExploring
	p.ActiveExploration = &pet.Exploration{
		LocationID:     loc.ID,
		DurationTicks:  loc.ForageDuration,
		TicksRemaining: loc.ForageDuration,
	}
	next.Pet = &p
	return succeed(next, p.Name+" set off into "+loc.Name)
}

// CancelExploration calls the pet back with no loot.
func (e Engine) CancelExploration(s State) ActionResult {
	if s.Pet == nil || s.Pet.ActiveExploration == nil {
		return fail(s, "no exploration in progress")
	}

	next := s.Clone()
	p := next.Pet.Clone()
	p.ActiveExploration = nil
	p.Activity = pet.ActivityIdle
	next.Pet = &p
	return succeed(next, p.Name+" came back early")
}

// CanTravel reports whether the player may move to the destination now.
func (e Engine) CanTravel(s State, destID string) bool {
	if !e.Locations.Connected(s.Player.Location, destID) {
		return false
	}
	if s.Pet != nil && s.Pet.Activity != pet.ActivityIdle && s.Pet.Activity != pet.ActivitySleeping {
		return false
	}
	return true
}

// Travel moves the player to a connected location.
func (e Engine) Travel(s State, destID string) ActionResult {
	if !e.Locations.Connected(s.Player.Location, destID) {
		return fail(s, fmt.Sprintf("cannot reach %q from here", destID))
	}
	if s.Pet != nil && s.Pet.Activity != pet.ActivityIdle && s.Pet.Activity != pet.ActivitySleeping {
		return fail(s, s.Pet.Name+" is busy "+string(s.Pet.Activity))
	}
	dest, known := e.Locations.Get(destID)
	if !known {
		return fail(s, fmt.Sprintf("unknown location %q", destID))
	}

	next := s.Clone()
	next.Player.Location = destID
	next.Player.Visited[destID] = true
	next.Quests, _ = quest.UpdateProgress(next.Quests, e.Quests, quest.ActionVisitLocation, destID, 1)
	return succeed(next, "arrived at "+dest.Name)
}

// StartBattle opens a battle session against an opponent. Battle resolution
// itself happens outside the engine; the session marks the pet busy until
// ApplyBattleRewards closes it.
func (e Engine) StartBattle(s State, opponentID string, now time.Time) ActionResult {
	p, msg := awakeIdlePet(s)
	if msg != "" {
		return fail(s, msg)
	}
	loc, known := e.Locations.Get(s.Player.Location)
	if !known || !loc.Offers(world.ActivityBattle) {
		return fail(s, "no battles here")
	}
	if s.ActiveBattle != nil {
		return fail(s, "a battle is already underway")
	}

	next := s.Clone()
	p.Activity = pet.ActivityBattling
	next.Pet = &p
	next.ActiveBattle = &BattleSession{OpponentID: opponentID, StartedAt: now}
	return succeed(next, p.Name+" squares up against "+opponentID)
}

// ApplyBattleRewards consumes an external battle result: coins, items, and
// skill XP land atomically, the win is counted, and the session closes.
func (e Engine) ApplyBattleRewards(s State, rewards BattleRewards) ActionResult {
	if s.ActiveBattle == nil {
		return fail(s, "no battle to resolve")
	}

	next := s.Clone()
	opponent := next.ActiveBattle.OpponentID

	next.Player.Coins += rewards.Coins
	for _, d := range rewards.Items {
		if _, known := e.Items.Get(d.ItemID); !known {
			e.logf("dropping unknown battle reward item %q", d.ItemID)
			continue
		}
		next.Player.Inventory.Add(d.ItemID, d.Amount)
		next.Quests, _ = quest.UpdateProgress(next.Quests, e.Quests, quest.ActionAcquireItem, d.ItemID, d.Amount)
	}
	for skill, xp := range rewards.XP {
		next.Player.Skills = grantSkillXP(next.Player.Skills, skill, xp, e.Balance)
	}

	next.Player.BattleWins++
	next.Quests, _ = quest.UpdateProgress(next.Quests, e.Quests, quest.ActionDefeatOpponent, opponent, 1)

	next.ActiveBattle = nil
	if next.Pet != nil {
		p := next.Pet.Clone()
		p.Activity = pet.ActivityIdle
		next.Pet = &p
	}
	return succeed(next, "victory against "+opponent)
}
