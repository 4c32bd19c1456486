package clock

import (
	"sync"
	"time"
)

// TickDurationMs is the length of one simulation tick in real milliseconds.
const TickDurationMs int64 = 30000

// TickDuration is TickDurationMs as a time.Duration.
const TickDuration = 30 * time.Second

// TicksFromMs converts elapsed real milliseconds to whole ticks.
func TicksFromMs(ms int64) int {
	if ms <= 0 {
		return 0
	}
	return int(ms / TickDurationMs)
}

// ElapsedTicks returns the whole ticks between two timestamps. Returns 0 when
// current is before last, so a backwards clock never produces negative ticks.
func ElapsedTicks(last, current time.Time) int {
	if current.Before(last) {
		return 0
	}
	return TicksFromMs(current.Sub(last).Milliseconds())
}

// CappedOfflineTicks is ElapsedTicks bounded by capTicks.
func CappedOfflineTicks(last, current time.Time, capTicks int) int {
	elapsed := ElapsedTicks(last, current)
	if elapsed > capTicks {
		return capTicks
	}
	return elapsed
}

// Midnight returns the start of the local day containing t.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ShouldDailyReset reports whether a local midnight lies between lastReset and now.
func ShouldDailyReset(lastReset, now time.Time) bool {
	return lastReset.Before(Midnight(now))
}

// WeekStart returns the most recent local Monday 00:00 at or before t.
func WeekStart(t time.Time) time.Time {
	mid := Midnight(t)
	// time.Weekday numbers Sunday as 0; shift so Monday is the anchor.
	offset := (int(mid.Weekday()) + 6) % 7
	return mid.AddDate(0, 0, -offset)
}

// ShouldWeeklyReset reports whether a Monday midnight lies between lastReset and now.
func ShouldWeeklyReset(lastReset, now time.Time) bool {
	return lastReset.Before(WeekStart(now))
}

// NextDailyReset returns the first local midnight strictly after now.
func NextDailyReset(now time.Time) time.Time {
	return Midnight(now).AddDate(0, 0, 1)
}

// NextWeeklyReset returns the first Monday midnight strictly after now.
func NextWeeklyReset(now time.Time) time.Time {
	return WeekStart(now).AddDate(0, 0, 7)
}

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// FakeClock is deterministic and test-friendly.
type FakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{t: start}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}
