package shiftchange

import (
	"context"

	"timeclock/backend/internal/repository/postgres/shiftchange"
)

type ShiftChange interface {
	Create(ctx context.Context, request shiftchange.CreateRequest) (shiftchange.CreateResponse, error)
	GetMine(ctx context.Context) ([]shiftchange.GetListResponse, error)
	GetPending(ctx context.Context) ([]shiftchange.GetListResponse, error)
	Approve(ctx context.Context, request shiftchange.ReviewRequest) error
	Deny(ctx context.Context, request shiftchange.ReviewRequest) error
}
