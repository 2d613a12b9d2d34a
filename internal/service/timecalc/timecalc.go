// Package timecalc holds the pure time arithmetic the clock and reporting
// paths share: elapsed hours, week and pay-period boundaries, and the
// clock-in window around a shift.
package timecalc

import (
	"math"
	"time"
)

const (
	// EarlyClockInWindow is how long before a shift starts an employee may
	// clock in.
	EarlyClockInWindow = 15 * time.Minute

	// LateClockOutWindow is how long after a shift ends a clock-out is still
	// matched to it.
	LateClockOutWindow = 60 * time.Minute

	payPeriodDays = 14
)

// payPeriodEpoch anchors period 0. All pay periods are 14 days counted from
// this date.
var payPeriodEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// HoursBetween returns the elapsed hours between clockIn and clockOut,
// rounded half-up to two decimal places. Ordering of the arguments is the
// caller's responsibility.
func HoursBetween(clockIn, clockOut time.Time) float64 {
	hours := float64(clockOut.Sub(clockIn).Milliseconds()) / (1000 * 60 * 60)
	return math.Round(hours*100) / 100
}

// WeekRange returns the Sunday-to-Saturday week containing reference:
// Sunday 00:00:00.000 through Saturday 23:59:59.999.
func WeekRange(reference time.Time) (time.Time, time.Time) {
	midnight := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, reference.Location())
	start := midnight.AddDate(0, 0, -int(midnight.Weekday()))
	end := start.AddDate(0, 0, 6).Add(endOfDay)
	return start, end
}

// endOfDay is the offset from midnight to 23:59:59.999.
const endOfDay = 23*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond

// PayPeriodRange returns the fixed 14-day pay period containing reference.
func PayPeriodRange(reference time.Time) (time.Time, time.Time) {
	days := int(math.Floor(reference.Sub(payPeriodEpoch).Hours() / 24))
	period := int(math.Floor(float64(days) / payPeriodDays))

	start := payPeriodEpoch.AddDate(0, 0, period*payPeriodDays)
	end := start.AddDate(0, 0, payPeriodDays-1).Add(endOfDay)
	return start, end
}

// IsWithinShiftWindow reports whether now falls inside the shift's clockable
// window: 15 minutes before start through 60 minutes after end.
func IsWithinShiftWindow(now, shiftStart, shiftEnd time.Time) bool {
	earliest := shiftStart.Add(-EarlyClockInWindow)
	latest := shiftEnd.Add(LateClockOutWindow)
	return !now.Before(earliest) && !now.After(latest)
}

// AddDays returns the date days after t, preserving clock time.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}
