package shiftchange

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
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

// Create submits a request to move one of the caller's own shifts to new
// times. A shift can carry at most one PENDING request; the partial unique
// index on (original_shift_id) backs the check here.
func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "ShiftID", "RequestedStartTime", "RequestedEndTime"); err != nil {
		return CreateResponse{}, err
	}

	if !request.RequestedEndTime.After(*request.RequestedStartTime) {
		return CreateResponse{}, web.NewRequestError(errors.New("requested end time must be after requested start time"), http.StatusBadRequest)
	}

	var shiftUserID int
	err = r.QueryRowContext(ctx, `
		SELECT user_id FROM shifts
		WHERE id = $1 AND deleted_at IS NULL
	`, *request.ShiftID).Scan(&shiftUserID)
	if errors.Is(err, sql.ErrNoRows) {
		return CreateResponse{}, web.NewRequestError(errors.New("shift not found"), http.StatusNotFound)
	}
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "selecting shift"), http.StatusInternalServerError)
	}

	if shiftUserID != claims.UserId {
		return CreateResponse{}, web.NewRequestError(errors.New("you can only request changes to your own shifts"), http.StatusBadRequest)
	}

	pendingExists := false
	if err := r.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT id FROM shift_change_requests
			WHERE original_shift_id = $1 AND status = 'PENDING' AND deleted_at IS NULL
		)`, *request.ShiftID).Scan(&pendingExists); err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "pending request check"), http.StatusInternalServerError)
	}
	if pendingExists {
		return CreateResponse{}, web.NewRequestError(errors.New("a pending change request already exists for this shift"), http.StatusBadRequest)
	}

	var response CreateResponse
	response.UserID = claims.UserId
	response.OriginalShiftID = *request.ShiftID
	response.RequestedStartTime = request.RequestedStartTime
	response.RequestedEndTime = request.RequestedEndTime
	response.Reason = request.Reason
	response.Status = entity.RequestPending
	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating shift change request"), http.StatusBadRequest)
	}

	if _, err := r.ExecContext(ctx, `
		INSERT INTO notifications (user_id, type, message, created_at, created_by)
		SELECT id, $1, $2, now(), $3
		FROM users
		WHERE role IN ('MANAGER', 'ADMIN') AND status = 'ACTIVE' AND deleted_at IS NULL
	`, entity.NotificationShiftChangeRequest,
		fmt.Sprintf("New shift change request #%d", response.ID), claims.UserId); err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "notifying managers"), http.StatusInternalServerError)
	}

	return response, nil
}

// GetMine lists the caller's own change requests, newest first.
func (r Repository) GetMine(ctx context.Context) ([]GetListResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	return r.getList(ctx, fmt.Sprintf("c.user_id = %d", claims.UserId), "ORDER BY c.created_at desc")
}

// GetPending lists every PENDING change request for review, oldest first.
func (r Repository) GetPending(ctx context.Context) ([]GetListResponse, error) {
	if _, err := r.CheckClaims(ctx, auth.RoleManager); err != nil {
		return nil, err
	}

	return r.getList(ctx, "c.status = 'PENDING'", "ORDER BY c.created_at asc")
}

// Approve moves a PENDING request to APPROVED and rewrites the shift to the
// requested times. Both writes happen in one transaction; a crash between
// them can never leave an approved request with an unchanged shift.
func (r Repository) Approve(ctx context.Context, request ReviewRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleManager)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	detail, err := r.getPendingDetail(ctx, request.ID)
	if err != nil {
		return err
	}

	now := time.Now()

	err = r.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		q := tx.NewUpdate().Table("shift_change_requests").
			Where("deleted_at IS NULL AND id = ? AND status = 'PENDING'", request.ID)
		q.Set("status = ?", entity.RequestApproved)
		q.Set("reviewed_by = ?", claims.UserId)
		q.Set("reviewed_at = ?", now)
		if request.Notes != nil {
			q.Set("manager_notes = ?", *request.Notes)
		}
		q.Set("updated_at = ?", now)
		q.Set("updated_by = ?", claims.UserId)

		result, err := q.Exec(ctx)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "approving shift change request"), http.StatusBadRequest)
		}
		if rows, err := result.RowsAffected(); err == nil && rows == 0 {
			return web.NewRequestError(errors.New("request has already been reviewed"), http.StatusBadRequest)
		}

		if _, err := tx.NewUpdate().Table("shifts").
			Where("deleted_at IS NULL AND id = ?", detail.shiftID).
			Set("start_time = ?", detail.requestedStart).
			Set("end_time = ?", detail.requestedEnd).
			Set("updated_at = ?", now).
			Set("updated_by = ?", claims.UserId).
			Exec(ctx); err != nil {
			return web.NewRequestError(errors.Wrap(err, "rewriting shift times"), http.StatusInternalServerError)
		}

		return nil
	})
	if err != nil {
		return err
	}

	if _, err := r.ExecContext(ctx, `
		INSERT INTO notifications (user_id, type, message, created_at, created_by)
		VALUES ($1, $2, $3, now(), $4)
	`, detail.requesterID, entity.NotificationShiftChangeApproved,
		"Your shift change request has been approved", claims.UserId); err != nil {
		return web.NewRequestError(errors.Wrap(err, "notifying requester"), http.StatusInternalServerError)
	}

	return nil
}

// Deny moves a PENDING request to DENIED. The shift keeps its times.
func (r Repository) Deny(ctx context.Context, request ReviewRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleManager)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	detail, err := r.getPendingDetail(ctx, request.ID)
	if err != nil {
		return err
	}

	now := time.Now()

	q := r.NewUpdate().Table("shift_change_requests").
		Where("deleted_at IS NULL AND id = ? AND status = 'PENDING'", request.ID)
	q.Set("status = ?", entity.RequestDenied)
	q.Set("reviewed_by = ?", claims.UserId)
	q.Set("reviewed_at = ?", now)
	if request.Notes != nil {
		q.Set("manager_notes = ?", *request.Notes)
	}
	q.Set("updated_at = ?", now)
	q.Set("updated_by = ?", claims.UserId)

	result, err := q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "denying shift change request"), http.StatusBadRequest)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return web.NewRequestError(errors.New("request has already been reviewed"), http.StatusBadRequest)
	}

	message := "Your shift change request has been denied"
	if request.Notes != nil {
		message += ": " + *request.Notes
	}

	if _, err := r.ExecContext(ctx, `
		INSERT INTO notifications (user_id, type, message, created_at, created_by)
		VALUES ($1, $2, $3, now(), $4)
	`, detail.requesterID, entity.NotificationShiftChangeDenied, message, claims.UserId); err != nil {
		return web.NewRequestError(errors.Wrap(err, "notifying requester"), http.StatusInternalServerError)
	}

	return nil
}

type pendingDetail struct {
	requesterID    int
	shiftID        int
	requestedStart time.Time
	requestedEnd   time.Time
}

func (r Repository) getPendingDetail(ctx context.Context, id int) (pendingDetail, error) {
	var detail pendingDetail
	var status string

	err := r.QueryRowContext(ctx, `
		SELECT user_id, original_shift_id, requested_start_time, requested_end_time, status
		FROM shift_change_requests
		WHERE id = $1 AND deleted_at IS NULL
	`, id).Scan(&detail.requesterID, &detail.shiftID, &detail.requestedStart, &detail.requestedEnd, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return pendingDetail{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return pendingDetail{}, web.NewRequestError(errors.Wrap(err, "selecting shift change request"), http.StatusInternalServerError)
	}

	if status != entity.RequestPending {
		return pendingDetail{}, web.NewRequestError(errors.New("request has already been reviewed"), http.StatusBadRequest)
	}

	return detail, nil
}

func (r Repository) getList(ctx context.Context, where, order string) ([]GetListResponse, error) {
	query := fmt.Sprintf(`
		SELECT
			c.id,
			c.user_id,
			u.first_name,
			u.last_name,
			u.email,
			c.original_shift_id,
			s.start_time,
			s.end_time,
			c.requested_start_time,
			c.requested_end_time,
			c.reason,
			c.status,
			c.reviewed_by,
			c.reviewed_at,
			c.manager_notes,
			c.created_at
		FROM shift_change_requests c
		LEFT JOIN users u ON c.user_id = u.id
		LEFT JOIN shifts s ON c.original_shift_id = s.id
		WHERE c.deleted_at IS NULL AND %s
		%s
	`, where, order)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting shift change requests"), http.StatusInternalServerError)
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
			&detail.OriginalShiftID,
			&detail.ShiftStartTime,
			&detail.ShiftEndTime,
			&detail.RequestedStartTime,
			&detail.RequestedEndTime,
			&detail.Reason,
			&detail.Status,
			&detail.ReviewedBy,
			&detail.ReviewedAt,
			&detail.ManagerNotes,
			&detail.CreatedAt); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning shift change requests"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	return list, nil
}
