package pet

// AccumulateSleep adds one tick to the sleep-today counter while sleeping.
func AccumulateSleep(s SleepState) SleepState {
	if s.IsSleeping {
		s.SleepTicksToday++
	}
	return s
}

// ResetSleepDay zeroes the daily counter, preserving the sleeping flag and
// start time. Runs once per crossed calendar-day boundary, not per tick.
func ResetSleepDay(s SleepState) SleepState {
	s.SleepTicksToday = 0
	return s
}
