package notification

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"timeclock/backend/foundation/web"
	"timeclock/backend/internal/pkg/repository/postgresql"

	"github.com/pkg/errors"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// GetMine lists the caller's notifications, newest first.
func (r Repository) GetMine(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := fmt.Sprintf(`
			WHERE
				n.deleted_at IS NULL
				AND n.user_id = %d
			`, claims.UserId)

	if filter.UnreadOnly != nil && *filter.UnreadOnly {
		whereQuery += " AND n.read = false"
	}

	orderQuery := "ORDER BY n.created_at desc"

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
			n.id,
			n.type,
			n.message,
			n.read,
			n.created_at
		FROM notifications n
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting notifications"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.Type,
			&detail.Message,
			&detail.Read,
			&detail.CreatedAt); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning notifications"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	unread := 0
	if err = r.QueryRowContext(ctx, `
		SELECT count(n.id)
		FROM notifications n
		WHERE n.deleted_at IS NULL AND n.user_id = $1 AND n.read = false
	`, claims.UserId).Scan(&unread); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning unread count"), http.StatusInternalServerError)
	}

	return list, unread, nil
}

// MarkRead marks one of the caller's notifications as read.
func (r Repository) MarkRead(ctx context.Context, id int) error {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	result, err := r.NewUpdate().Table("notifications").
		Where("deleted_at IS NULL AND id = ? AND user_id = ?", id, claims.UserId).
		Set("read = ?", true).
		Set("updated_at = ?", time.Now()).
		Set("updated_by = ?", claims.UserId).
		Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "marking notification read"), http.StatusBadRequest)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "checking rows affected"), http.StatusInternalServerError)
	}
	if rows == 0 {
		return web.NewRequestError(errors.New("notification not found"), http.StatusNotFound)
	}

	return nil
}

// MarkAllRead marks every unread notification of the caller as read.
func (r Repository) MarkAllRead(ctx context.Context) error {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	if _, err := r.NewUpdate().Table("notifications").
		Where("deleted_at IS NULL AND user_id = ? AND read = false", claims.UserId).
		Set("read = ?", true).
		Set("updated_at = ?", time.Now()).
		Set("updated_by = ?", claims.UserId).
		Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "marking notifications read"), http.StatusBadRequest)
	}

	return nil
}
