package clock

import (
	"context"

	"timeclock/backend/internal/repository/postgres/timeentry"
)

type TimeEntry interface {
	ClockIn(ctx context.Context, request timeentry.ClockInRequest) (timeentry.ClockInResponse, error)
	ClockOut(ctx context.Context, request timeentry.ClockOutRequest) (timeentry.ClockOutResponse, error)
	ManualEntry(ctx context.Context, request timeentry.ManualEntryRequest) (timeentry.ManualEntryResponse, error)
	GetLiveClockedIn(ctx context.Context) ([]timeentry.LiveEntryResponse, error)
	MyWeek(ctx context.Context) (timeentry.PeriodResponse, error)
	MyPayPeriod(ctx context.Context) (timeentry.PeriodResponse, error)
}
