package user

import (
	"context"

	"timeclock/backend/internal/repository/postgres/user"
)

type User interface {
	GetList(ctx context.Context, filter user.Filter) ([]user.GetListResponse, int, error)
	GetMe(ctx context.Context) (user.GetMeResponse, error)
	Create(ctx context.Context, request user.CreateRequest) (user.CreateResponse, error)
	UpdateColumns(ctx context.Context, request user.UpdateRequest) error
	UpdateMyPin(ctx context.Context, request user.UpdatePinRequest) error
	Delete(ctx context.Context, id int) error
}
