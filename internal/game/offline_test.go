package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petden/internal/clock"
)

func TestOfflineCatchup_Cap(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	e, s := newTestGame(t, now)

	res := e.ProcessOfflineCatchup(s, 500, 100, 0)
	assert.True(t, res.WasCapped)
	assert.Equal(t, 100, res.TicksProcessed)
	assert.Equal(t, 100, res.State.TotalTicks)
	// Elapsed time reflects real absence, not the capped replay.
	assert.Equal(t, int64(500)*clock.TickDurationMs, res.Report.ElapsedMs)
}

func TestOfflineCatchup_UnderCap(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	e, s := newTestGame(t, now)

	res := e.ProcessOfflineCatchup(s, 40, 100, 1234567)
	assert.False(t, res.WasCapped)
	assert.Equal(t, 40, res.TicksProcessed)
	assert.Equal(t, int64(1234567), res.Report.ElapsedMs)
}

func TestOfflineCatchup_ReportSnapshots(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	e, s := newTestGame(t, now)

	res := e.ProcessOfflineCatchup(s, 200, 1000, 0)
	rep := res.Report

	assert.Equal(t, "Fern", rep.PetName)
	assert.Greater(t, rep.Before.Satiety, rep.After.Satiety)
	assert.Greater(t, rep.Before.Hydration, rep.After.Hydration)
	assert.Equal(t, rep.Before.MaxSatiety, rep.After.MaxSatiety)
	assert.GreaterOrEqual(t, rep.After.PoopCount, rep.Before.PoopCount)
}

func TestOfflineCatchup_MatchesSequentialReplay(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	e, s := newTestGame(t, now)

	res := e.ProcessOfflineCatchup(s, 80, 1000, 0)
	seq := e.ProcessMultipleTicks(s, 80, s.LastSaveTime)
	assert.Equal(t, stateJSON(t, seq), stateJSON(t, res.State))
}

func TestOfflineCatchup_CollectsEveryExploration(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	e, s := newTestGame(t, now)

	ar := e.StartExploration(s)
	require.True(t, ar.Success)
	s = ar.State

	// The trip finishes on tick 20; the notification is gone from the final
	// state but preserved in the report.
	res := e.ProcessOfflineCatchup(s, 60, 1000, 0)
	require.Len(t, res.Report.ExplorationResults, 1)
	assert.Equal(t, "meadow_hollow", res.Report.ExplorationResults[0].LocationID)
	assert.Nil(t, res.State.LastExplorationResult)
}

func TestOfflineCatchup_PetlessState(t *testing.T) {
	e := testEngine()
	s := State{IsInitialized: true, LastSaveTime: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}

	res := e.ProcessOfflineCatchup(s, 10, 100, 0)
	assert.Equal(t, 10, res.TicksProcessed)
	assert.Empty(t, res.Report.PetName)
	assert.Equal(t, CareSnapshot{}, res.Report.Before)
}
