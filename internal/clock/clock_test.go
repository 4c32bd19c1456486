package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTicksFromMs(t *testing.T) {
	assert.Equal(t, 0, TicksFromMs(0))
	assert.Equal(t, 0, TicksFromMs(29999))
	assert.Equal(t, 1, TicksFromMs(30000))
	assert.Equal(t, 1, TicksFromMs(59999))
	assert.Equal(t, 2880, TicksFromMs(24*60*60*1000))
	assert.Equal(t, 0, TicksFromMs(-30000))
}

func TestElapsedTicks_NeverNegative(t *testing.T) {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, ElapsedTicks(base, base))
	assert.Equal(t, 2, ElapsedTicks(base, base.Add(time.Minute)))

	// Clock moved backwards: no ticks, not a negative count.
	assert.Equal(t, 0, ElapsedTicks(base, base.Add(-time.Hour)))
}

func TestCappedOfflineTicks(t *testing.T) {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 10, CappedOfflineTicks(base, base.Add(5*time.Minute), 100))
	assert.Equal(t, 100, CappedOfflineTicks(base, base.Add(24*time.Hour), 100))
}

func TestMidnightAndDailyReset(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	now := time.Date(2025, 3, 10, 7, 30, 0, 0, loc)

	mid := Midnight(now)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, loc), mid)
	assert.Equal(t, loc, mid.Location())

	yesterday := time.Date(2025, 3, 9, 23, 59, 0, 0, loc)
	assert.True(t, ShouldDailyReset(yesterday, now))
	assert.False(t, ShouldDailyReset(mid, now))
	assert.False(t, ShouldDailyReset(now, now))
}

func TestWeekStart(t *testing.T) {
	// 2025-03-12 is a Wednesday; the week began Monday 2025-03-10.
	wed := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), WeekStart(wed))

	// A Monday is its own week start.
	mon := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, mon, WeekStart(mon))

	// Sunday belongs to the week that started six days earlier.
	sun := time.Date(2025, 3, 16, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, mon, WeekStart(sun))
}

func TestNextResets(t *testing.T) {
	wed := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC), NextDailyReset(wed))
	assert.Equal(t, time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), NextWeeklyReset(wed))
}

func TestShouldDailyReset_EachBoundaryOnce(t *testing.T) {
	// Walking tick timestamps across several midnights must trigger once per
	// boundary when the last-reset stamp advances to the crossed midnight.
	lastReset := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	ts := time.Date(2025, 3, 9, 23, 59, 30, 0, time.UTC)

	resets := 0
	for i := 0; i < 3*2880; i++ {
		ts = ts.Add(TickDuration)
		if ShouldDailyReset(lastReset, ts) {
			resets++
			lastReset = Midnight(ts)
		}
	}
	assert.Equal(t, 3, resets)
}

func TestFakeClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewFakeClock(start)

	assert.Equal(t, start, c.Now())
	c.Advance(time.Hour)
	assert.Equal(t, start.Add(time.Hour), c.Now())
	c.Set(start)
	assert.Equal(t, start, c.Now())
}
