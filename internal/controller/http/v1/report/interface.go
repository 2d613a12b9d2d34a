package report

import (
	"context"

	"timeclock/backend/internal/repository/postgres/report"
)

type Report interface {
	WeeklyHours(ctx context.Context, filter report.RangeFilter) (report.WeeklyHoursResponse, error)
	LaborCost(ctx context.Context, filter report.RangeFilter) (report.LaborCostResponse, error)
	EmployeeHistory(ctx context.Context, userID int, filter report.RangeFilter) (report.HistoryResponse, error)
	DashboardStats(ctx context.Context) (report.DashboardStats, error)
}
