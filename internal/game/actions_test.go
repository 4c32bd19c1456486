package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petden/internal/pet"
	"petden/internal/quest"
	"petden/internal/stat"
)

func TestFeed(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	e, s := newTestGame(t, now)

	p := s.Pet.Clone()
	p.CareStats.Satiety = stat.FromDisplay(40)
	s.Pet = &p

	res := e.Feed(s, "food_apple")
	require.True(t, res.Success)
	assert.Equal(t, 65, res.State.Pet.CareStats.Satiety.Display())
	assert.Equal(t, 1, res.State.Player.Inventory.Count("food_apple"))

	daily, _, _ := quest.Find(res.State.Quests, "daily_care")
	assert.Equal(t, 1, daily.Objectives["feed"])

	// The caller's state is untouched on success and on failure alike.
	assert.Equal(t, 40, s.Pet.CareStats.Satiety.Display())
	assert.Equal(t, 2, s.Player.Inventory.Count("food_apple"))
}

func TestFeed_ClampsAtMax(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	e, s := newTestGame(t, now)

	res := e.Feed(s, "food_apple")
	require.True(t, res.Success)
	assert.Equal(t, s.Pet.CareStats.Satiety, res.State.Pet.CareStats.Satiety)
}

func TestFeed_Failures(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	e, s := newTestGame(t, now)

	res := e.Feed(s, "water_flask")
	assert.False(t, res.Success)

	res = e.Feed(s, "food_honey_loaf")
	assert.False(t, res.Success) // not in inventory

	sleeping := e.StartSleep(s, now)
	require.True(t, sleeping.Success)
	res = e.Feed(sleeping.State, "food_apple")
	assert.False(t, res.Success)

	res = e.Feed(State{IsInitialized: true}, "food_apple")
	assert.False(t, res.Success)
}

func TestGiveDrink(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	e, s := newTestGame(t, now)

	p := s.Pet.Clone()
	p.CareStats.Hydration = stat.FromDisplay(10)
	s.Pet = &p

	res := e.GiveDrink(s, "water_flask")
	require.True(t, res.Success)
	assert.Equal(t, 40, res.State.Pet.CareStats.Hydration.Display())
	assert.Equal(t, 1, res.State.Player.Inventory.Count("water_flask"))

	res = e.GiveDrink(s, "food_apple")
	assert.False(t, res.Success)
}

func TestPlay_ToyNotConsumed(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	e, s := newTestGame(t, now)

	s.Player.Inventory.Add("plush_burr", 1)
	p := s.Pet.Clone()
	p.CareStats.Happiness = stat.FromDisplay(50)
	s.Pet = &p

	res := e.Play(s, "plush_burr")
	require.True(t, res.Success)
	assert.Equal(t, 70, res.State.Pet.CareStats.Happiness.Display())
	assert.Equal(t, 1, res.State.Player.Inventory.Count("plush_burr"))
}

func TestCleanPoop(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	e, s := newTestGame(t, now)

	p := s.Pet.Clone()
	p.Poop.Count = 4
	p.Poop.TicksUntilNext = 777
	s.Pet = &p

	res := e.CleanPoop(s)
	require.True(t, res.Success)
	assert.Equal(t, 0, res.State.Pet.Poop.Count)
	// Progress toward the next poop is not reset by cleaning.
	assert.Equal(t, stat.Micro(777), res.State.Pet.Poop.TicksUntilNext)

	daily, _, _ := quest.Find(res.State.Quests, "daily_care")
	assert.Equal(t, 1, daily.Objectives["clean"])

	res = e.CleanPoop(res.State)
	assert.False(t, res.Success)
}

func TestSleepAndWake(t *testing.T) {
	now := time.Date(2026, 3, 10, 21, 0, 0, 0, time.UTC)
	e, s := newTestGame(t, now)

	res := e.StartSleep(s, now)
	require.True(t, res.Success)
	s = res.State
	assert.True(t, s.Pet.IsAsleep())
	assert.Equal(t, pet.ActivitySleeping, s.Pet.Activity)
	require.NotNil(t, s.Pet.Sleep.SleepStartTime)

	res = e.StartSleep(s, now)
	assert.False(t, res.Success)

	res = e.WakeUp(s)
	require.True(t, res.Success)
	assert.False(t, res.State.Pet.IsAsleep())
	assert.Equal(t, pet.ActivityIdle, res.State.Pet.Activity)
	assert.Nil(t, res.State.Pet.Sleep.SleepStartTime)

	res = e.WakeUp(res.State)
	assert.False(t, res.Success)
}

func TestTravel(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	e, s := newTestGame(t, now)

	assert.False(t, e.CanTravel(s, "meadow_hollow")) // not connected to itself
	require.True(t, e.CanTravel(s, "whispering_woods"))

	res := e.Travel(s, "whispering_woods")
	require.True(t, res.Success)
	s = res.State
	assert.Equal(t, "whispering_woods", s.Player.Location)
	assert.True(t, s.Player.Visited["whispering_woods"])

	// The woods only connect back to the meadow.
	res = e.Travel(s, "training_grounds")
	assert.False(t, res.Success)
}

func TestTravel_BlockedWhileExploring(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	e, s := newTestGame(t, now)

	res := e.StartExploration(s)
	require.True(t, res.Success)
	s = res.State

	assert.False(t, e.CanTravel(s, "whispering_woods"))
	assert.False(t, e.Travel(s, "whispering_woods").Success)
}

func TestStartTraining(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	e, s := newTestGame(t, now)

	// Wrong location.
	res := e.StartTraining(s, "boulder_yard")
	assert.False(t, res.Success)

	res = e.Travel(s, "training_grounds")
	require.True(t, res.Success)
	s = res.State

	energyBefore := s.Pet.EnergyStats.Energy.Display()
	res = e.StartTraining(s, "boulder_yard")
	require.True(t, res.Success)
	s = res.State
	assert.Equal(t, pet.ActivityTraining, s.Pet.Activity)
	require.NotNil(t, s.Pet.ActiveTraining)
	assert.Equal(t, 30, s.Pet.ActiveTraining.TicksRemaining)
	assert.Equal(t, energyBefore-20, s.Pet.EnergyStats.Energy.Display())

	// Busy pets cannot start another session.
	assert.False(t, e.StartTraining(s, "balance_beams").Success)
}

func TestStartTraining_StageGate(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	e, s := newTestGame(t, now)

	res := e.Travel(s, "training_grounds")
	require.True(t, res.Success)

	// endurance_track needs a child; a newborn is turned away.
	res = e.StartTraining(res.State, "endurance_track")
	assert.False(t, res.Success)
}

func TestTrainingCompletion(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	e, s := newTestGame(t, now)

	res := e.Travel(s, "training_grounds")
	require.True(t, res.Success)
	res = e.StartTraining(res.State, "boulder_yard")
	require.True(t, res.Success)
	s = res.State

	s = e.ProcessMultipleTicks(s, 30, now)
	assert.Nil(t, s.Pet.ActiveTraining)
	assert.Equal(t, pet.ActivityIdle, s.Pet.Activity)
	assert.Equal(t, 1, s.Pet.TrainedStats.Strength)
	assert.Equal(t, e.Balance.TrainingXP, s.Player.Skills.XP["training"])
}

func TestCancelTraining(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	e, s := newTestGame(t, now)

	res := e.Travel(s, "training_grounds")
	require.True(t, res.Success)
	res = e.StartTraining(res.State, "boulder_yard")
	require.True(t, res.Success)

	res = e.CancelTraining(res.State)
	require.True(t, res.Success)
	assert.Nil(t, res.State.Pet.ActiveTraining)
	assert.Equal(t, pet.ActivityIdle, res.State.Pet.Activity)
	assert.Equal(t, 0, res.State.Pet.TrainedStats.Strength)

	assert.False(t, e.CancelTraining(res.State).Success)
}

func TestStartExploration_EnergyGate(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	e, s := newTestGame(t, now)

	p := s.Pet.Clone()
	p.EnergyStats.Energy = stat.FromDisplay(5)
	s.Pet = &p

	res := e.StartExploration(s)
	assert.False(t, res.Success)
}

func TestStartExploration_NoForageHere(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	e, s := newTestGame(t, now)

	res := e.Travel(s, "training_grounds")
	require.True(t, res.Success)
	assert.False(t, e.StartExploration(res.State).Success)
}

func TestCancelExploration(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	e, s := newTestGame(t, now)

	res := e.StartExploration(s)
	require.True(t, res.Success)

	res = e.CancelExploration(res.State)
	require.True(t, res.Success)
	assert.Nil(t, res.State.Pet.ActiveExploration)
	assert.Equal(t, pet.ActivityIdle, res.State.Pet.Activity)
	assert.Nil(t, res.State.LastExplorationResult)
}

func TestBattleFlow(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	e, s := newTestGame(t, now)

	// Battles are only offered in the woods.
	assert.False(t, e.StartBattle(s, "bramble_wolf", now).Success)

	res := e.Travel(s, "whispering_woods")
	require.True(t, res.Success)
	res = e.StartBattle(res.State, "bramble_wolf", now)
	require.True(t, res.Success)
	s = res.State
	require.NotNil(t, s.ActiveBattle)
	assert.Equal(t, pet.ActivityBattling, s.Pet.Activity)

	res = e.ApplyBattleRewards(s, BattleRewards{
		Coins: 30,
		XP:    map[string]int{"training": 5},
	})
	require.True(t, res.Success)
	assert.Equal(t, 130, res.State.Player.Coins)
	assert.Equal(t, 1, res.State.Player.BattleWins)
	assert.Nil(t, res.State.ActiveBattle)
	assert.Equal(t, pet.ActivityIdle, res.State.Pet.Activity)
	assert.Equal(t, 5, res.State.Player.Skills.XP["training"])

	assert.False(t, e.ApplyBattleRewards(res.State, BattleRewards{}).Success)
}
