package notification

import (
	"context"

	"timeclock/backend/internal/repository/postgres/notification"
)

type Notification interface {
	GetMine(ctx context.Context, filter notification.Filter) ([]notification.GetListResponse, int, error)
	MarkRead(ctx context.Context, id int) error
	MarkAllRead(ctx context.Context) error
}
