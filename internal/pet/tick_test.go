package pet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petden/internal/config"
	"petden/internal/species"
	"petden/internal/stat"
)

var (
	testReg = species.NewRegistry(species.Defaults())
	testBal = config.Default()
)

func newTestPet(t *testing.T) Pet {
	t.Helper()
	p, ok := New("Sprout", "florabit", testReg, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), testBal.PoopThreshold)
	require.True(t, ok)
	return p
}

func TestTick_MonotonicAging(t *testing.T) {
	p := newTestPet(t)

	for i := 0; i < 100; i++ {
		next, _ := Tick(p, testReg, testBal)
		assert.Equal(t, p.Growth.AgeTicks+1, next.Growth.AgeTicks)
		p = next
	}
}

func TestTick_InputNotMutated(t *testing.T) {
	p := newTestPet(t)
	before := p.CareStats

	_, _ = Tick(p, testReg, testBal)
	assert.Equal(t, before, p.CareStats)
}

func TestTick_SleepAsymmetry(t *testing.T) {
	awake := newTestPet(t)
	awake.EnergyStats.Energy = stat.FromDisplay(50)

	asleep := awake
	asleep.Sleep.IsSleeping = true
	asleep.Activity = ActivitySleeping

	for i := 0; i < 50; i++ {
		awake, _ = Tick(awake, testReg, testBal)
		asleep, _ = Tick(asleep, testReg, testBal)
	}

	assert.Greater(t, asleep.EnergyStats.Energy, awake.EnergyStats.Energy)
	assert.Greater(t, asleep.CareStats.Satiety, awake.CareStats.Satiety)
	assert.Greater(t, asleep.CareStats.Hydration, awake.CareStats.Hydration)
	assert.Greater(t, asleep.CareStats.Happiness, awake.CareStats.Happiness)
	assert.Equal(t, 50, asleep.Sleep.SleepTicksToday)
	assert.Equal(t, 0, awake.Sleep.SleepTicksToday)
}

func TestTick_PoopHappinessCoupling(t *testing.T) {
	clean := newTestPet(t)
	dirty := clean
	dirty.Poop.Count = 7

	cleanNext, _ := Tick(clean, testReg, testBal)
	dirtyNext, _ := Tick(dirty, testReg, testBal)

	cleanLoss := clean.CareStats.Happiness - cleanNext.CareStats.Happiness
	dirtyLoss := dirty.CareStats.Happiness - dirtyNext.CareStats.Happiness
	assert.Equal(t, cleanLoss*3, dirtyLoss)

	assert.Equal(t, cleanNext.CareStats.Satiety, dirtyNext.CareStats.Satiety)
	assert.Equal(t, cleanNext.CareStats.Hydration, dirtyNext.CareStats.Hydration)
}

func TestTick_MultiplierReadsStartOfTickPoopCount(t *testing.T) {
	// Pet on the verge of producing a poop: the happiness multiplier for this
	// tick must still reflect the pre-increment count of zero.
	p := newTestPet(t)
	p.Poop.TicksUntilNext = 1

	next, _ := Tick(p, testReg, testBal)
	require.Equal(t, 1, next.Poop.Count)

	loss := p.CareStats.Happiness - next.CareStats.Happiness
	assert.Equal(t, stat.Micro(testBal.HappinessDecayAwake), loss)
}

func TestTick_StageTransitionFlorabit(t *testing.T) {
	sp, ok := testReg.Get("florabit")
	require.True(t, ok)
	childMin, ok := sp.MinAgeFor(species.StageChild)
	require.True(t, ok)

	p := newTestPet(t)
	p.Growth.AgeTicks = childMin - 1
	p.Growth.Stage, p.Growth.Substage = sp.StageFor(p.Growth.AgeTicks)
	base, ok := sp.BaseStats(p.Growth.Stage, p.Growth.Substage)
	require.True(t, ok)
	p.BattleStats = base

	next, report := Tick(p, testReg, testBal)

	assert.Equal(t, species.StageChild, next.Growth.Stage)
	assert.True(t, report.Growth.StageChanged)
	assert.Equal(t, species.StageBaby, report.Growth.PreviousStage)
	assert.Equal(t, p.BattleStats.Strength+3, next.BattleStats.Strength)
}

func TestTick_StageReplacementKeepsTrainedStats(t *testing.T) {
	sp, _ := testReg.Get("florabit")
	childMin, _ := sp.MinAgeFor(species.StageChild)

	p := newTestPet(t)
	p.Growth.AgeTicks = childMin - 1
	p.TrainedStats = species.BattleStats{Strength: 4}

	next, _ := Tick(p, testReg, testBal)

	assert.Equal(t, 4, next.TrainedStats.Strength)
	assert.Equal(t, next.BattleStats.Strength+4, next.EffectiveBattleStats().Strength)
}

func TestTick_Clamping(t *testing.T) {
	full := newTestPet(t)
	full.Sleep.IsSleeping = true
	for i := 0; i < 500; i++ {
		full, _ = Tick(full, testReg, testBal)
		max, ok := MaxFor(full, testReg)
		require.True(t, ok)
		assert.LessOrEqual(t, full.EnergyStats.Energy, max.Energy)
		assert.LessOrEqual(t, full.CareLifeStats.CareLife, max.CareLife)
	}

	starved := newTestPet(t)
	starved.CareStats = CareStats{}
	starved.CareLifeStats.CareLife = stat.FromDisplay(1)
	for i := 0; i < 500; i++ {
		starved, _ = Tick(starved, testReg, testBal)
		assert.GreaterOrEqual(t, starved.CareStats.Satiety, stat.Micro(0))
		assert.GreaterOrEqual(t, starved.CareLifeStats.CareLife, stat.Micro(0))
	}
	assert.Equal(t, stat.Micro(0), starved.CareLifeStats.CareLife)
}

func TestTick_TrainingCountdown(t *testing.T) {
	p := newTestPet(t)
	p.Activity = ActivityTraining
	p.ActiveTraining = &Training{
		FacilityID:     "strength_yard",
		Stat:           "strength",
		DurationTicks:  3,
		TicksRemaining: 3,
		StatGain:       2,
	}

	p, report := Tick(p, testReg, testBal)
	assert.Nil(t, report.TrainingCompleted)
	assert.Equal(t, 2, p.ActiveTraining.TicksRemaining)

	p, _ = Tick(p, testReg, testBal)
	p, report = Tick(p, testReg, testBal)

	require.NotNil(t, report.TrainingCompleted)
	assert.Equal(t, "strength_yard", report.TrainingCompleted.FacilityID)
	assert.Nil(t, p.ActiveTraining)
	assert.Equal(t, ActivityIdle, p.Activity)
}

func TestTick_UnknownSpeciesDegrades(t *testing.T) {
	p := newTestPet(t)
	p.SpeciesID = "chimera"
	before := p

	next, _ := Tick(p, testReg, testBal)

	assert.Equal(t, before.Growth.AgeTicks+1, next.Growth.AgeTicks)
	// Care-life and energy are left untouched when max stats can't be derived.
	assert.Equal(t, before.CareLifeStats, next.CareLifeStats)
	assert.Equal(t, before.EnergyStats, next.EnergyStats)
}
