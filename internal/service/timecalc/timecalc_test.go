package timecalc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHoursBetween(t *testing.T) {
	base := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		clockIn  time.Time
		clockOut time.Time
		want     float64
	}{
		{"eight hours exactly", base, base.Add(8 * time.Hour), 8.00},
		{"zero duration", base, base, 0.00},
		{"rounds to two decimals", base, base.Add(8*time.Hour + 12*time.Minute), 8.20},
		{"half minute rounds half-up", base, base.Add(15 * time.Minute), 0.25},
		{"ninety seconds", base, base.Add(90 * time.Second), 0.03},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HoursBetween(tt.clockIn, tt.clockOut))
		})
	}
}

func TestWeekRange(t *testing.T) {
	// A Wednesday.
	wednesday := time.Date(2025, time.March, 5, 14, 30, 0, 0, time.UTC)

	start, end := WeekRange(wednesday)

	assert.Equal(t, time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Weekday(0), start.Weekday())
	assert.Equal(t, time.Date(2025, time.March, 8, 23, 59, 59, 999000000, time.UTC), end)
	assert.Equal(t, time.Saturday, end.Weekday())
}

func TestWeekRangeOnSunday(t *testing.T) {
	sunday := time.Date(2025, time.March, 2, 8, 0, 0, 0, time.UTC)

	start, end := WeekRange(sunday)

	assert.Equal(t, time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.March, 8, 23, 59, 59, 999000000, time.UTC), end)
}

func TestPayPeriodRange(t *testing.T) {
	// 2024-01-01 is the epoch; period 0 runs through 2024-01-14.
	inPeriodZero := time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)
	start, end := PayPeriodRange(inPeriodZero)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.January, 14, 23, 59, 59, 999000000, time.UTC), end)

	// First day of period 1.
	periodOneStart := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	start, end = PayPeriodRange(periodOneStart)
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.January, 28, 23, 59, 59, 999000000, time.UTC), end)

	// Periods stay aligned far from the epoch.
	later := time.Date(2025, time.June, 20, 9, 0, 0, 0, time.UTC)
	start, end = PayPeriodRange(later)
	assert.Equal(t, 0, int(start.Sub(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)).Hours())%(24*14))
	assert.True(t, !later.Before(start) && !later.After(end))
}

func TestIsWithinShiftWindow(t *testing.T) {
	shiftStart := time.Date(2025, time.March, 5, 9, 0, 0, 0, time.UTC)
	shiftEnd := time.Date(2025, time.March, 5, 17, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"ten minutes early", shiftStart.Add(-10 * time.Minute), true},
		{"exactly fifteen early", shiftStart.Add(-15 * time.Minute), true},
		{"sixteen minutes early", shiftStart.Add(-16 * time.Minute), false},
		{"mid shift", shiftStart.Add(4 * time.Hour), true},
		{"two minutes after end", shiftEnd.Add(2 * time.Minute), true},
		{"exactly one hour after end", shiftEnd.Add(time.Hour), true},
		{"over an hour after end", shiftEnd.Add(time.Hour + time.Minute), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWithinShiftWindow(tt.now, shiftStart, shiftEnd))
		})
	}
}
