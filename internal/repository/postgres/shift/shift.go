package shift

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"timeclock/backend/foundation/web"
	"timeclock/backend/internal/auth"
	"timeclock/backend/internal/entity"
	"timeclock/backend/internal/pkg/repository/postgresql"
	"timeclock/backend/internal/repository/postgres"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. Shifts that merely touch at an endpoint do not overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

func (r Repository) GetById(ctx context.Context, id int) (entity.Shift, error) {
	var detail entity.Shift

	err := r.NewSelect().Model(&detail).
		Where("id = ? AND deleted_at IS NULL", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Shift{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.Shift{}, web.NewRequestError(errors.Wrap(err, "selecting shift"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `
			WHERE
				s.deleted_at IS NULL
			`

	// Employees only ever see their own shifts.
	if claims.Role == auth.RoleEmployee {
		whereQuery += fmt.Sprintf(" AND s.user_id = %d", claims.UserId)
	} else if filter.UserID != nil {
		whereQuery += fmt.Sprintf(" AND s.user_id = %d", *filter.UserID)
	}

	if filter.StartDate != nil && filter.EndDate != nil {
		whereQuery += fmt.Sprintf(" AND s.start_time >= '%s' AND s.start_time <= '%s'",
			filter.StartDate.Format("2006-01-02 15:04:05"), filter.EndDate.Format("2006-01-02 15:04:05"))
	}
	if filter.Status != nil {
		status := strings.ToUpper(strings.Replace(*filter.Status, "'", "", -1))
		whereQuery += fmt.Sprintf(" AND s.status = '%s'", status)
	}

	orderQuery := "ORDER BY s.start_time asc"

	var limitQuery, offsetQuery string

	if filter.Page != nil && filter.Limit != nil {
		offset := (*filter.Page - 1) * (*filter.Limit)
		filter.Offset = &offset
	}
	if filter.Limit != nil {
		limitQuery += fmt.Sprintf(" LIMIT %d", *filter.Limit)
	}
	if filter.Offset != nil {
		offsetQuery += fmt.Sprintf(" OFFSET %d", *filter.Offset)
	}

	query := fmt.Sprintf(`
		SELECT
			s.id,
			s.user_id,
			u.first_name,
			u.last_name,
			u.email,
			s.start_time,
			s.end_time,
			s.status,
			s.location,
			s.position
		FROM shifts s
		LEFT JOIN users u ON s.user_id = u.id
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting shifts"), http.StatusInternalServerError)
	}

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.UserID,
			&detail.FirstName,
			&detail.LastName,
			&detail.Email,
			&detail.StartTime,
			&detail.EndTime,
			&detail.Status,
			&detail.Location,
			&detail.Position); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning shift list"), http.StatusInternalServerError)
		}

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(s.id)
		FROM shifts s
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning shift count"), http.StatusInternalServerError)
	}

	return list, count, nil
}

// GetUpcoming returns the caller's SCHEDULED and IN_PROGRESS shifts for the
// next seven days.
func (r Repository) GetUpcoming(ctx context.Context) ([]GetListResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	nextWeek := now.AddDate(0, 0, 7)

	rows, err := r.QueryContext(ctx, `
		SELECT
			s.id,
			s.user_id,
			u.first_name,
			u.last_name,
			u.email,
			s.start_time,
			s.end_time,
			s.status,
			s.location,
			s.position
		FROM shifts s
		LEFT JOIN users u ON s.user_id = u.id
		WHERE s.deleted_at IS NULL
			AND s.user_id = $1
			AND s.start_time >= $2 AND s.start_time <= $3
			AND s.status IN ('SCHEDULED', 'IN_PROGRESS')
		ORDER BY s.start_time asc
	`, claims.UserId, now, nextWeek)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting upcoming shifts"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.UserID,
			&detail.FirstName,
			&detail.LastName,
			&detail.Email,
			&detail.StartTime,
			&detail.EndTime,
			&detail.Status,
			&detail.Location,
			&detail.Position); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning upcoming shifts"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	return list, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleManager)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "UserID", "StartTime", "EndTime"); err != nil {
		return CreateResponse{}, err
	}

	if !request.EndTime.After(*request.StartTime) {
		return CreateResponse{}, web.NewRequestError(errors.New("end time must be after start time"), http.StatusBadRequest)
	}

	if err := r.checkTargetUser(ctx, r.DB, *request.UserID); err != nil {
		return CreateResponse{}, err
	}

	if err := checkOverlap(ctx, r.DB, *request.UserID, *request.StartTime, *request.EndTime); err != nil {
		return CreateResponse{}, err
	}

	var response CreateResponse
	response.UserID = request.UserID
	response.StartTime = request.StartTime
	response.EndTime = request.EndTime
	response.Status = entity.ShiftScheduled
	response.Location = request.Location
	response.Position = request.Position
	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating shift"), http.StatusBadRequest)
	}

	return response, nil
}

// UpdateColumns applies a partial update. When both times are supplied they
// must still be ordered; the overlap check is not re-run here, matching the
// create-only scope of the scheduling guard.
func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	claims, err := r.CheckClaims(ctx, auth.RoleManager)
	if err != nil {
		return err
	}

	if _, err := r.GetById(ctx, request.ID); err != nil {
		return err
	}

	if request.StartTime != nil && request.EndTime != nil {
		if !request.EndTime.After(*request.StartTime) {
			return web.NewRequestError(errors.New("end time must be after start time"), http.StatusBadRequest)
		}
	}

	q := r.NewUpdate().Table("shifts").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.StartTime != nil {
		q.Set("start_time = ?", *request.StartTime)
	}
	if request.EndTime != nil {
		q.Set("end_time = ?", *request.EndTime)
	}
	if request.Status != nil {
		status := strings.ToUpper(*request.Status)
		switch status {
		case entity.ShiftScheduled, entity.ShiftInProgress, entity.ShiftCompleted, entity.ShiftCancelled:
		default:
			return web.NewRequestError(errors.New("incorrect shift status"), http.StatusBadRequest)
		}
		q.Set("status = ?", status)
	}
	if request.Location != nil {
		q.Set("location = ?", *request.Location)
	}
	if request.Position != nil {
		q.Set("position = ?", *request.Position)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating shift"), http.StatusBadRequest)
	}

	return nil
}

// Delete hard-deletes a shift that has no time entries. Shifts with history
// must be cancelled instead.
func (r Repository) Delete(ctx context.Context, id int) error {
	if _, err := r.CheckClaims(ctx, auth.RoleManager); err != nil {
		return err
	}

	if _, err := r.GetById(ctx, id); err != nil {
		return err
	}

	hasEntries := false
	if err := r.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT id FROM time_entries WHERE shift_id = $1 AND deleted_at IS NULL)`,
		id).Scan(&hasEntries); err != nil {
		return web.NewRequestError(errors.Wrap(err, "time entry check"), http.StatusInternalServerError)
	}
	if hasEntries {
		return web.NewRequestError(errors.New("cannot delete shift with time entries. cancel it instead"), http.StatusBadRequest)
	}

	if _, err := r.NewDelete().Table("shifts").Where("id = ?", id).Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "deleting shift"), http.StatusInternalServerError)
	}

	return nil
}

// BulkCreate validates every element, then creates the whole batch in one
// transaction. The overlap check runs per item inside the transaction, so
// earlier rows of the same batch count as existing shifts and an intra-batch
// overlap fails everything.
func (r Repository) BulkCreate(ctx context.Context, request BulkCreateRequest) ([]CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleManager)
	if err != nil {
		return nil, err
	}

	if len(request.Shifts) == 0 {
		return nil, web.NewRequestError(errors.New("shifts array is required"), http.StatusBadRequest)
	}

	for i := range request.Shifts {
		if request.Shifts[i].UserID == nil || request.Shifts[i].StartTime == nil || request.Shifts[i].EndTime == nil {
			return nil, web.NewRequestError(errors.New("each shift must have user_id, start_time and end_time"), http.StatusBadRequest)
		}
		if !request.Shifts[i].EndTime.After(*request.Shifts[i].StartTime) {
			return nil, web.NewRequestError(errors.New("end time must be after start time"), http.StatusBadRequest)
		}
	}

	var responses []CreateResponse

	err = r.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, item := range request.Shifts {
			if err := r.checkTargetUser(ctx, tx, *item.UserID); err != nil {
				return err
			}
			if err := checkOverlap(ctx, tx, *item.UserID, *item.StartTime, *item.EndTime); err != nil {
				return err
			}

			var response CreateResponse
			response.UserID = item.UserID
			response.StartTime = item.StartTime
			response.EndTime = item.EndTime
			response.Status = entity.ShiftScheduled
			response.Location = item.Location
			response.Position = item.Position
			response.CreatedAt = time.Now()
			response.CreatedBy = claims.UserId

			if _, err := tx.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID); err != nil {
				return web.NewRequestError(errors.Wrap(err, "creating shift in batch"), http.StatusBadRequest)
			}

			responses = append(responses, response)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return responses, nil
}

// queryer is the common surface of bun.DB and bun.Tx the guards run on.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func (r Repository) checkTargetUser(ctx context.Context, q queryer, userID int) error {
	active := false
	if err := q.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT id FROM users
			WHERE id = $1 AND status = 'ACTIVE' AND deleted_at IS NULL
		)`, userID).Scan(&active); err != nil {
		return web.NewRequestError(errors.Wrap(err, "target user check"), http.StatusInternalServerError)
	}
	if !active {
		return web.NewRequestError(errors.New("user not found or inactive"), http.StatusNotFound)
	}
	return nil
}

// checkOverlap rejects the [start,end) window when any non-cancelled shift
// of the user intersects it: start falls inside an existing shift, end falls
// inside one, or the window fully contains one.
func checkOverlap(ctx context.Context, q queryer, userID int, start, end time.Time) error {
	overlapping := false
	if err := q.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT id FROM shifts
			WHERE user_id = $1
				AND status != 'CANCELLED'
				AND deleted_at IS NULL
				AND (
					(start_time <= $2 AND end_time > $2)
					OR (start_time < $3 AND end_time >= $3)
					OR (start_time >= $2 AND end_time <= $3)
				)
		)`, userID, start, end).Scan(&overlapping); err != nil {
		return web.NewRequestError(errors.Wrap(err, "overlap check"), http.StatusInternalServerError)
	}
	if overlapping {
		return web.NewRequestError(errors.New("shift overlaps with existing shift"), http.StatusBadRequest)
	}
	return nil
}
