package report

import (
	"context"
	"database/sql"
	"net/http"
	"sort"
	"time"

	"timeclock/backend/foundation/web"
	"timeclock/backend/internal/auth"
	"timeclock/backend/internal/pkg/repository/postgresql"
	"timeclock/backend/internal/repository/postgres"
	"timeclock/backend/internal/service/timecalc"

	"github.com/pkg/errors"
)

const defaultHourlyRate = 15

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// GroupHours folds raw entry rows into one bucket per employee, heaviest
// first.
func GroupHours(rows []EntryRow) []EmployeeHours {
	byUser := map[int]*EmployeeHours{}
	var order []int

	for _, row := range rows {
		bucket, ok := byUser[row.UserID]
		if !ok {
			bucket = &EmployeeHours{
				UserID:    row.UserID,
				FirstName: row.FirstName,
				LastName:  row.LastName,
				Email:     row.Email,
			}
			byUser[row.UserID] = bucket
			order = append(order, row.UserID)
		}

		if row.TotalHours != nil {
			bucket.TotalHours += *row.TotalHours
		}
		bucket.Entries = append(bucket.Entries, HoursEntry{
			ID:           row.EntryID,
			ClockInTime:  row.ClockInTime,
			ClockOutTime: row.ClockOutTime,
			TotalHours:   row.TotalHours,
		})
	}

	list := make([]EmployeeHours, 0, len(order))
	for _, id := range order {
		list = append(list, *byUser[id])
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].TotalHours > list[j].TotalHours
	})

	return list
}

// GroupCosts folds raw entry rows into per-employee cost buckets at the
// given hourly rate, most expensive first.
func GroupCosts(rows []EntryRow, rate float64) []EmployeeCost {
	byUser := map[int]*EmployeeCost{}
	var order []int

	for _, row := range rows {
		bucket, ok := byUser[row.UserID]
		if !ok {
			bucket = &EmployeeCost{
				UserID:    row.UserID,
				FirstName: row.FirstName,
				LastName:  row.LastName,
				Role:      row.Role,
			}
			byUser[row.UserID] = bucket
			order = append(order, row.UserID)
		}

		if row.TotalHours != nil {
			bucket.TotalHours += *row.TotalHours
			bucket.LaborCost += *row.TotalHours * rate
		}
		bucket.EntryCount++
	}

	list := make([]EmployeeCost, 0, len(order))
	for _, id := range order {
		list = append(list, *byUser[id])
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].LaborCost > list[j].LaborCost
	})

	return list
}

// WeeklyHours reports per-employee hours for the given range, defaulting to
// the current week.
func (r Repository) WeeklyHours(ctx context.Context, filter RangeFilter) (WeeklyHoursResponse, error) {
	if _, err := r.CheckClaims(ctx, auth.RoleManager); err != nil {
		return WeeklyHoursResponse{}, err
	}

	var start, end time.Time
	if filter.StartDate != nil && filter.EndDate != nil {
		start, end = *filter.StartDate, *filter.EndDate
	} else {
		start, end = timecalc.WeekRange(time.Now())
	}

	rows, err := r.entryRows(ctx, start, end)
	if err != nil {
		return WeeklyHoursResponse{}, err
	}

	employees := GroupHours(rows)

	response := WeeklyHoursResponse{
		PeriodStart:   start,
		PeriodEnd:     end,
		EmployeeCount: len(employees),
		Employees:     employees,
	}
	for i := range employees {
		response.TotalHours += employees[i].TotalHours
	}

	return response, nil
}

// LaborCost reports per-employee cost for the range at a flat hourly rate.
func (r Repository) LaborCost(ctx context.Context, filter RangeFilter) (LaborCostResponse, error) {
	if _, err := r.CheckClaims(ctx, auth.RoleManager); err != nil {
		return LaborCostResponse{}, err
	}

	if filter.StartDate == nil || filter.EndDate == nil {
		return LaborCostResponse{}, web.NewRequestError(errors.New("start date and end date are required"), http.StatusBadRequest)
	}

	rate := float64(defaultHourlyRate)
	if filter.HourlyRate != nil {
		rate = *filter.HourlyRate
	}

	rows, err := r.entryRows(ctx, *filter.StartDate, *filter.EndDate)
	if err != nil {
		return LaborCostResponse{}, err
	}

	employees := GroupCosts(rows, rate)

	response := LaborCostResponse{
		PeriodStart:   *filter.StartDate,
		PeriodEnd:     *filter.EndDate,
		HourlyRate:    rate,
		EmployeeCount: len(employees),
		Employees:     employees,
	}
	for i := range employees {
		response.TotalHours += employees[i].TotalHours
		response.TotalLaborCost += employees[i].LaborCost
	}

	return response, nil
}

// EmployeeHistory lists one employee's entries newest first, with shift
// context.
func (r Repository) EmployeeHistory(ctx context.Context, userID int, filter RangeFilter) (HistoryResponse, error) {
	if _, err := r.CheckClaims(ctx, auth.RoleManager); err != nil {
		return HistoryResponse{}, err
	}

	var response HistoryResponse

	err := r.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email, role
		FROM users
		WHERE id = $1 AND deleted_at IS NULL
	`, userID).Scan(&response.UserID, &response.FirstName, &response.LastName, &response.Email, &response.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return HistoryResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return HistoryResponse{}, web.NewRequestError(errors.Wrap(err, "selecting user"), http.StatusInternalServerError)
	}

	query := `
		SELECT
			t.id,
			t.clock_in_time,
			t.clock_out_time,
			t.total_hours,
			s.start_time,
			s.end_time,
			s.position,
			s.location,
			t.manual_entry
		FROM time_entries t
		LEFT JOIN shifts s ON t.shift_id = s.id
		WHERE t.deleted_at IS NULL AND t.user_id = $1
	`
	args := []interface{}{userID}

	if filter.StartDate != nil && filter.EndDate != nil {
		query += " AND t.clock_in_time >= $2 AND t.clock_in_time <= $3"
		args = append(args, *filter.StartDate, *filter.EndDate)
	}

	query += " ORDER BY t.clock_in_time desc"

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return HistoryResponse{}, web.NewRequestError(errors.Wrap(err, "selecting history"), http.StatusInternalServerError)
	}
	defer rows.Close()

	for rows.Next() {
		var detail HistoryEntry
		if err = rows.Scan(
			&detail.ID,
			&detail.ClockInTime,
			&detail.ClockOutTime,
			&detail.TotalHours,
			&detail.ShiftStart,
			&detail.ShiftEnd,
			&detail.Position,
			&detail.Location,
			&detail.ManualEntry); err != nil {
			return HistoryResponse{}, web.NewRequestError(errors.Wrap(err, "scanning history"), http.StatusInternalServerError)
		}

		if detail.TotalHours != nil {
			response.TotalHours += *detail.TotalHours
		}
		response.Entries = append(response.Entries, detail)

		if filter.Limit != nil && len(response.Entries) >= *filter.Limit {
			break
		}
	}

	response.EntryCount = len(response.Entries)

	return response, nil
}

// DashboardStats gathers the manager dashboard counters in one query.
func (r Repository) DashboardStats(ctx context.Context) (DashboardStats, error) {
	if _, err := r.CheckClaims(ctx, auth.RoleManager); err != nil {
		return DashboardStats{}, err
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Millisecond)
	weekStart, weekEnd := timecalc.WeekRange(now)

	var stats DashboardStats

	err := r.QueryRowContext(ctx, `
		SELECT
			(SELECT count(id) FROM time_entries
				WHERE clock_out_time IS NULL AND deleted_at IS NULL),
			(SELECT count(id) FROM shifts
				WHERE start_time >= $1 AND start_time <= $2 AND deleted_at IS NULL),
			(SELECT count(id) FROM time_off_requests
				WHERE status = 'PENDING' AND deleted_at IS NULL),
			(SELECT count(id) FROM shift_change_requests
				WHERE status = 'PENDING' AND deleted_at IS NULL),
			(SELECT coalesce(sum(total_hours), 0) FROM time_entries
				WHERE clock_in_time >= $3 AND clock_in_time <= $4 AND deleted_at IS NULL),
			(SELECT count(id) FROM users
				WHERE status = 'ACTIVE' AND role = 'EMPLOYEE' AND deleted_at IS NULL)
	`, todayStart, todayEnd, weekStart, weekEnd).Scan(
		&stats.CurrentlyClockedIn,
		&stats.TodayShifts,
		&stats.PendingTimeOff,
		&stats.PendingShiftChanges,
		&stats.WeekTotalHours,
		&stats.ActiveEmployees,
	)
	if err != nil {
		return DashboardStats{}, web.NewRequestError(errors.Wrap(err, "selecting dashboard stats"), http.StatusInternalServerError)
	}

	return stats, nil
}

func (r Repository) entryRows(ctx context.Context, start, end time.Time) ([]EntryRow, error) {
	rows, err := r.QueryContext(ctx, `
		SELECT
			t.user_id,
			u.first_name,
			u.last_name,
			u.email,
			u.role,
			t.id,
			t.clock_in_time,
			t.clock_out_time,
			t.total_hours
		FROM time_entries t
		LEFT JOIN users u ON t.user_id = u.id
		WHERE t.deleted_at IS NULL
			AND t.clock_in_time >= $1 AND t.clock_in_time <= $2
		ORDER BY t.clock_in_time asc
	`, start, end)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting report entries"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []EntryRow
	for rows.Next() {
		var row EntryRow
		if err = rows.Scan(
			&row.UserID,
			&row.FirstName,
			&row.LastName,
			&row.Email,
			&row.Role,
			&row.EntryID,
			&row.ClockInTime,
			&row.ClockOutTime,
			&row.TotalHours); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning report entries"), http.StatusInternalServerError)
		}
		list = append(list, row)
	}

	return list, nil
}
