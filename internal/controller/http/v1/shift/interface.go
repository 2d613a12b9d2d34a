package shift

import (
	"context"

	"timeclock/backend/internal/repository/postgres/shift"
)

type Shift interface {
	GetList(ctx context.Context, filter shift.Filter) ([]shift.GetListResponse, int, error)
	GetUpcoming(ctx context.Context) ([]shift.GetListResponse, error)
	Create(ctx context.Context, request shift.CreateRequest) (shift.CreateResponse, error)
	BulkCreate(ctx context.Context, request shift.BulkCreateRequest) ([]shift.CreateResponse, error)
	UpdateColumns(ctx context.Context, request shift.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
