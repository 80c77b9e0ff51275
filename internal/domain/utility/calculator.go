package utility

import "time"

// ComputeUsageAndCost derives billable usage from meter start/end readings.
// A negative delta (meter rollback or entry error) clamps to zero usage so
// billing never goes negative.
func ComputeUsageAndCost(start, end, rate float64) (usage, cost float64) {
	usage = end - start
	if usage < 0 {
		usage = 0
	}
	return usage, usage * rate
}

// PreviousMonth returns the YYYY-MM key of the month before the given one.
func PreviousMonth(month string) (string, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return "", ErrInvalidMonth
	}
	return t.AddDate(0, -1, 0).Format("2006-01"), nil
}
