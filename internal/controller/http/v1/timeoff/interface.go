package timeoff

import (
	"context"

	"timeclock/backend/internal/repository/postgres/timeoff"
)

type TimeOff interface {
	Create(ctx context.Context, request timeoff.CreateRequest) (timeoff.CreateResponse, error)
	GetMine(ctx context.Context) ([]timeoff.GetListResponse, error)
	GetPending(ctx context.Context) ([]timeoff.GetListResponse, error)
	Approve(ctx context.Context, request timeoff.ReviewRequest) error
	Deny(ctx context.Context, request timeoff.ReviewRequest) error
}
