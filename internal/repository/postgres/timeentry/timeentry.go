package timeentry

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"timeclock/backend/foundation/web"
	"timeclock/backend/internal/auth"
	"timeclock/backend/internal/pkg/repository/postgresql"
	"timeclock/backend/internal/service/timecalc"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// ClockIn records the start of a work session from a kiosk. The caller is
// identified by PIN, not by token. The entry insert and the shift transition
// to IN_PROGRESS happen in one transaction; the partial unique index on open
// entries makes a concurrent double clock-in fail the insert.
func (r Repository) ClockIn(ctx context.Context, request ClockInRequest) (ClockInResponse, error) {
	if err := r.ValidateStruct(&request, "Pin", "TabletID"); err != nil {
		return ClockInResponse{}, err
	}

	userID, firstName, lastName, err := r.resolveByPin(ctx, *request.Pin)
	if err != nil {
		return ClockInResponse{}, err
	}

	open := false
	if err := r.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT id FROM time_entries
			WHERE user_id = $1 AND clock_out_time IS NULL AND deleted_at IS NULL
		)`, userID).Scan(&open); err != nil {
		return ClockInResponse{}, web.NewRequestError(errors.Wrap(err, "open entry check"), http.StatusInternalServerError)
	}
	if open {
		return ClockInResponse{}, web.NewRequestError(errors.New("you are already clocked in"), http.StatusConflict)
	}

	now := time.Now()

	// Earliest shift the clock-in window reaches: starting within the next
	// 15 minutes or already underway and not yet ended.
	var shiftID int
	var shiftStart, shiftEnd time.Time
	err = r.QueryRowContext(ctx, `
		SELECT id, start_time, end_time
		FROM shifts
		WHERE user_id = $1
			AND deleted_at IS NULL
			AND status IN ('SCHEDULED', 'IN_PROGRESS')
			AND start_time <= $2
			AND end_time >= $3
		ORDER BY start_time asc
		LIMIT 1
	`, userID, now.Add(timecalc.EarlyClockInWindow), now).Scan(&shiftID, &shiftStart, &shiftEnd)
	if errors.Is(err, sql.ErrNoRows) {
		return ClockInResponse{}, web.NewRequestError(errors.New("no scheduled shift found for this time"), http.StatusNotFound)
	}
	if err != nil {
		return ClockInResponse{}, web.NewRequestError(errors.Wrap(err, "selecting candidate shift"), http.StatusInternalServerError)
	}

	var response ClockInResponse
	response.UserID = &userID
	response.ShiftID = &shiftID
	response.ClockInTime = now
	response.TabletID = request.TabletID
	response.TabletLocation = request.TabletLocation
	response.CreatedAt = now

	err = r.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID); err != nil {
			return web.NewRequestError(errors.Wrap(err, "creating time entry"), http.StatusConflict)
		}

		if _, err := tx.NewUpdate().Table("shifts").
			Where("id = ?", shiftID).
			Set("status = ?", "IN_PROGRESS").
			Set("updated_at = ?", now).
			Exec(ctx); err != nil {
			return web.NewRequestError(errors.Wrap(err, "starting shift"), http.StatusInternalServerError)
		}

		return nil
	})
	if err != nil {
		return ClockInResponse{}, err
	}

	response.FirstName = firstName
	response.LastName = lastName
	response.ShiftStart = &shiftStart
	response.ShiftEnd = &shiftEnd

	return response, nil
}

// ClockOut closes the caller's open entry and completes the shift in one
// transaction.
func (r Repository) ClockOut(ctx context.Context, request ClockOutRequest) (ClockOutResponse, error) {
	if err := r.ValidateStruct(&request, "Pin"); err != nil {
		return ClockOutResponse{}, err
	}

	userID, firstName, lastName, err := r.resolveByPin(ctx, *request.Pin)
	if err != nil {
		return ClockOutResponse{}, err
	}

	var entryID, shiftID int
	var clockIn time.Time
	err = r.QueryRowContext(ctx, `
		SELECT id, shift_id, clock_in_time
		FROM time_entries
		WHERE user_id = $1 AND clock_out_time IS NULL AND deleted_at IS NULL
	`, userID).Scan(&entryID, &shiftID, &clockIn)
	if errors.Is(err, sql.ErrNoRows) {
		return ClockOutResponse{}, web.NewRequestError(errors.New("no active clock-in found"), http.StatusNotFound)
	}
	if err != nil {
		return ClockOutResponse{}, web.NewRequestError(errors.Wrap(err, "selecting open entry"), http.StatusInternalServerError)
	}

	now := time.Now()
	totalHours := timecalc.HoursBetween(clockIn, now)

	err = r.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewUpdate().Table("time_entries").
			Where("id = ? AND clock_out_time IS NULL", entryID).
			Set("clock_out_time = ?", now).
			Set("total_hours = ?", totalHours).
			Set("updated_at = ?", now).
			Exec(ctx); err != nil {
			return web.NewRequestError(errors.Wrap(err, "closing time entry"), http.StatusInternalServerError)
		}

		if _, err := tx.NewUpdate().Table("shifts").
			Where("id = ?", shiftID).
			Set("status = ?", "COMPLETED").
			Set("updated_at = ?", now).
			Exec(ctx); err != nil {
			return web.NewRequestError(errors.Wrap(err, "completing shift"), http.StatusInternalServerError)
		}

		return nil
	})
	if err != nil {
		return ClockOutResponse{}, err
	}

	return ClockOutResponse{
		ID:           entryID,
		UserID:       userID,
		ShiftID:      shiftID,
		ClockInTime:  clockIn,
		ClockOutTime: now,
		TotalHours:   totalHours,
		FirstName:    firstName,
		LastName:     lastName,
	}, nil
}

// ManualEntry lets a manager record a completed session after the fact, for
// example when an employee forgot to clock out. The shift status is left
// untouched.
func (r Repository) ManualEntry(ctx context.Context, request ManualEntryRequest) (ManualEntryResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleManager)
	if err != nil {
		return ManualEntryResponse{}, err
	}

	if err := r.ValidateStruct(&request, "UserID", "ShiftID", "ClockInTime", "ClockOutTime"); err != nil {
		return ManualEntryResponse{}, err
	}

	if !request.ClockOutTime.After(*request.ClockInTime) {
		return ManualEntryResponse{}, web.NewRequestError(errors.New("clock-out time must be after clock-in time"), http.StatusBadRequest)
	}

	shiftExists := false
	if err := r.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT id FROM shifts
			WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
		)`, *request.ShiftID, *request.UserID).Scan(&shiftExists); err != nil {
		return ManualEntryResponse{}, web.NewRequestError(errors.Wrap(err, "shift check"), http.StatusInternalServerError)
	}
	if !shiftExists {
		return ManualEntryResponse{}, web.NewRequestError(errors.New("shift not found for this user"), http.StatusNotFound)
	}

	var response ManualEntryResponse
	response.UserID = request.UserID
	response.ShiftID = request.ShiftID
	response.ClockInTime = *request.ClockInTime
	response.ClockOutTime = *request.ClockOutTime
	response.TotalHours = timecalc.HoursBetween(*request.ClockInTime, *request.ClockOutTime)
	response.ManualEntry = true
	response.ManualEntryBy = claims.UserId
	response.ManualEntryNote = request.Note
	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return ManualEntryResponse{}, web.NewRequestError(errors.Wrap(err, "creating manual entry"), http.StatusBadRequest)
	}

	return response, nil
}

// GetLiveClockedIn lists everyone currently on the clock.
func (r Repository) GetLiveClockedIn(ctx context.Context) ([]LiveEntryResponse, error) {
	if _, err := r.CheckClaims(ctx, auth.RoleManager); err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, `
		SELECT
			t.id,
			t.user_id,
			u.first_name,
			u.last_name,
			u.email,
			t.clock_in_time,
			s.position,
			s.location,
			s.start_time,
			s.end_time
		FROM time_entries t
		LEFT JOIN users u ON t.user_id = u.id
		LEFT JOIN shifts s ON t.shift_id = s.id
		WHERE t.clock_out_time IS NULL AND t.deleted_at IS NULL
		ORDER BY t.clock_in_time asc
	`)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting live entries"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []LiveEntryResponse
	for rows.Next() {
		var detail LiveEntryResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.UserID,
			&detail.FirstName,
			&detail.LastName,
			&detail.Email,
			&detail.ClockInTime,
			&detail.Position,
			&detail.Location,
			&detail.ShiftStart,
			&detail.ShiftEnd); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning live entries"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	return list, nil
}

// MyWeek returns the caller's entries for the current Sunday-to-Saturday week
// with the hour total.
func (r Repository) MyWeek(ctx context.Context) (PeriodResponse, error) {
	start, end := timecalc.WeekRange(time.Now())
	return r.myPeriod(ctx, start, end)
}

// MyPayPeriod returns the caller's entries for the current 14-day pay period
// with the hour total.
func (r Repository) MyPayPeriod(ctx context.Context) (PeriodResponse, error) {
	start, end := timecalc.PayPeriodRange(time.Now())
	return r.myPeriod(ctx, start, end)
}

func (r Repository) myPeriod(ctx context.Context, start, end time.Time) (PeriodResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return PeriodResponse{}, err
	}

	rows, err := r.QueryContext(ctx, `
		SELECT
			t.id,
			t.shift_id,
			t.clock_in_time,
			t.clock_out_time,
			t.total_hours,
			s.position,
			s.location
		FROM time_entries t
		LEFT JOIN shifts s ON t.shift_id = s.id
		WHERE t.deleted_at IS NULL
			AND t.user_id = $1
			AND t.clock_in_time >= $2 AND t.clock_in_time <= $3
		ORDER BY t.clock_in_time asc
	`, claims.UserId, start, end)
	if err != nil {
		return PeriodResponse{}, web.NewRequestError(errors.Wrap(err, "selecting period entries"), http.StatusInternalServerError)
	}
	defer rows.Close()

	response := PeriodResponse{PeriodStart: start, PeriodEnd: end}

	for rows.Next() {
		var detail PeriodEntry
		if err = rows.Scan(
			&detail.ID,
			&detail.ShiftID,
			&detail.ClockInTime,
			&detail.ClockOutTime,
			&detail.TotalHours,
			&detail.Position,
			&detail.Location); err != nil {
			return PeriodResponse{}, web.NewRequestError(errors.Wrap(err, "scanning period entries"), http.StatusInternalServerError)
		}

		if detail.TotalHours != nil {
			response.TotalHours += *detail.TotalHours
		}
		response.Entries = append(response.Entries, detail)
	}

	return response, nil
}

func (r Repository) resolveByPin(ctx context.Context, pin string) (int, *string, *string, error) {
	var userID int
	var firstName, lastName *string

	err := r.QueryRowContext(ctx, `
		SELECT id, first_name, last_name
		FROM users
		WHERE pin = $1 AND status = 'ACTIVE' AND deleted_at IS NULL
	`, pin).Scan(&userID, &firstName, &lastName)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil, nil, web.NewRequestError(errors.New("invalid PIN or inactive account"), http.StatusUnauthorized)
	}
	if err != nil {
		return 0, nil, nil, web.NewRequestError(errors.Wrap(err, "resolving pin"), http.StatusInternalServerError)
	}

	return userID, firstName, lastName, nil
}
