package timeoff

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

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// RangesOverlap reports whether two whole-day ranges intersect. Both ends
// are inclusive, so sharing a single day counts as an overlap. The SQL
// overlap check in Create applies the same rule.
func RangesOverlap(s1, e1, s2, e2 time.Time) bool {
	return !s1.After(e2) && !s2.After(e1)
}

// Create submits a time-off request for the caller. A new request may not
// touch any existing PENDING or APPROVED request of the same user; requests
// are whole days and the ranges are inclusive on both ends, so a request
// fully inside an existing one is rejected too.
func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "StartDate", "EndDate", "Type"); err != nil {
		return CreateResponse{}, err
	}

	if request.EndDate.Before(request.StartDate.Time) {
		return CreateResponse{}, web.NewRequestError(errors.New("end date must be after or equal to start date"), http.StatusBadRequest)
	}

	overlapping := false
	if err := r.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT id FROM time_off_requests
			WHERE user_id = $1
				AND status IN ('PENDING', 'APPROVED')
				AND deleted_at IS NULL
				AND start_date <= $3 AND end_date >= $2
		)`, claims.UserId, request.StartDate.Time, request.EndDate.Time).Scan(&overlapping); err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "overlap check"), http.StatusInternalServerError)
	}
	if overlapping {
		return CreateResponse{}, web.NewRequestError(errors.New("time-off request overlaps with existing request"), http.StatusBadRequest)
	}

	var response CreateResponse
	response.UserID = claims.UserId
	response.StartDate = request.StartDate
	response.EndDate = request.EndDate
	response.Type = strings.ToUpper(*request.Type)
	response.Reason = request.Reason
	response.Status = entity.RequestPending
	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating time-off request"), http.StatusBadRequest)
	}

	if err := r.notifyManagers(ctx, entity.NotificationTimeOffRequest,
		fmt.Sprintf("New time-off request #%d", response.ID), claims.UserId); err != nil {
		return CreateResponse{}, err
	}

	return response, nil
}

// GetMine lists the caller's own requests, newest first.
func (r Repository) GetMine(ctx context.Context) ([]GetListResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	return r.getList(ctx, fmt.Sprintf("t.user_id = %d", claims.UserId), "ORDER BY t.created_at desc")
}

// GetPending lists every PENDING request for review, oldest first.
func (r Repository) GetPending(ctx context.Context) ([]GetListResponse, error) {
	if _, err := r.CheckClaims(ctx, auth.RoleManager); err != nil {
		return nil, err
	}

	return r.getList(ctx, "t.status = 'PENDING'", "ORDER BY t.created_at asc")
}

// Approve moves a PENDING request to APPROVED and notifies the requester.
func (r Repository) Approve(ctx context.Context, request ReviewRequest) error {
	return r.review(ctx, request, entity.RequestApproved)
}

// Deny moves a PENDING request to DENIED and notifies the requester.
func (r Repository) Deny(ctx context.Context, request ReviewRequest) error {
	return r.review(ctx, request, entity.RequestDenied)
}

func (r Repository) review(ctx context.Context, request ReviewRequest, status string) error {
	claims, err := r.CheckClaims(ctx, auth.RoleManager)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	var requesterID int
	var currentStatus string
	err = r.QueryRowContext(ctx, `
		SELECT user_id, status
		FROM time_off_requests
		WHERE id = $1 AND deleted_at IS NULL
	`, request.ID).Scan(&requesterID, &currentStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "selecting time-off request"), http.StatusInternalServerError)
	}

	if currentStatus != entity.RequestPending {
		return web.NewRequestError(errors.New("request has already been reviewed"), http.StatusBadRequest)
	}

	now := time.Now()

	q := r.NewUpdate().Table("time_off_requests").
		Where("deleted_at IS NULL AND id = ? AND status = 'PENDING'", request.ID)
	q.Set("status = ?", status)
	q.Set("reviewed_by = ?", claims.UserId)
	q.Set("reviewed_at = ?", now)
	if request.Notes != nil {
		q.Set("manager_notes = ?", *request.Notes)
	}
	q.Set("updated_at = ?", now)
	q.Set("updated_by = ?", claims.UserId)

	result, err := q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "reviewing time-off request"), http.StatusBadRequest)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return web.NewRequestError(errors.New("request has already been reviewed"), http.StatusBadRequest)
	}

	notifType := entity.NotificationTimeOffApproved
	message := "Your time-off request has been approved"
	if status == entity.RequestDenied {
		notifType = entity.NotificationTimeOffDenied
		message = "Your time-off request has been denied"
		if request.Notes != nil {
			message += ": " + *request.Notes
		}
	}

	if _, err := r.ExecContext(ctx, `
		INSERT INTO notifications (user_id, type, message, created_at, created_by)
		VALUES ($1, $2, $3, now(), $4)
	`, requesterID, notifType, message, claims.UserId); err != nil {
		return web.NewRequestError(errors.Wrap(err, "notifying requester"), http.StatusInternalServerError)
	}

	return nil
}

func (r Repository) getList(ctx context.Context, where, order string) ([]GetListResponse, error) {
	query := fmt.Sprintf(`
		SELECT
			t.id,
			t.user_id,
			u.first_name,
			u.last_name,
			u.email,
			t.start_date,
			t.end_date,
			t.type,
			t.reason,
			t.status,
			t.reviewed_by,
			t.reviewed_at,
			t.manager_notes,
			t.created_at
		FROM time_off_requests t
		LEFT JOIN users u ON t.user_id = u.id
		WHERE t.deleted_at IS NULL AND %s
		%s
	`, where, order)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting time-off requests"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var detail GetListResponse
		var startString, endString string

		if err = rows.Scan(
			&detail.ID,
			&detail.UserID,
			&detail.FirstName,
			&detail.LastName,
			&detail.Email,
			&startString,
			&endString,
			&detail.Type,
			&detail.Reason,
			&detail.Status,
			&detail.ReviewedBy,
			&detail.ReviewedAt,
			&detail.ManagerNotes,
			&detail.CreatedAt); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning time-off requests"), http.StatusInternalServerError)
		}

		startDate, err := date.ParseDate(startString)
		if err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "converting start_date to date.Date"), http.StatusBadRequest)
		}
		detail.StartDate = &startDate

		endDate, err := date.ParseDate(endString)
		if err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "converting end_date to date.Date"), http.StatusBadRequest)
		}
		detail.EndDate = &endDate

		list = append(list, detail)
	}

	return list, nil
}

func (r Repository) notifyManagers(ctx context.Context, notifType, message string, createdBy int) error {
	if _, err := r.ExecContext(ctx, `
		INSERT INTO notifications (user_id, type, message, created_at, created_by)
		SELECT id, $1, $2, now(), $3
		FROM users
		WHERE role IN ('MANAGER', 'ADMIN') AND status = 'ACTIVE' AND deleted_at IS NULL
	`, notifType, message, createdBy); err != nil {
		return web.NewRequestError(errors.Wrap(err, "notifying managers"), http.StatusInternalServerError)
	}
	return nil
}
