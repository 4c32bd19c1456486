// Package stat holds the fixed-point representation used for every decaying
// or regenerating pet value. All internal math is integer micro-units so that
// thousands of cumulative tick applications replay bit-identically; display
// units exist only at presentation boundaries.
package stat

// Scale is the number of micro-units per display unit.
const Scale = 1000

// Micro is a fixed-point stat value.
type Micro int64

// FromDisplay converts display units to micro-units.
func FromDisplay(d int) Micro {
	return Micro(int64(d) * Scale)
}

// Display converts to display units, truncating partial units.
func (m Micro) Display() int {
	return int(m / Scale)
}

// Clamp bounds m to [0, max].
func (m Micro) Clamp(max Micro) Micro {
	if m < 0 {
		return 0
	}
	if m > max {
		return max
	}
	return m
}

// AtLeastPct reports whether m is at or above pct percent of max.
func (m Micro) AtLeastPct(max Micro, pct int) bool {
	if max <= 0 {
		return false
	}
	return m*100 >= max*Micro(pct)
}
