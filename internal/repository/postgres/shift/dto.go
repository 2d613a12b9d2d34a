package shift

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit     *int
	Offset    *int
	Page      *int
	StartDate *time.Time
	EndDate   *time.Time
	Status    *string
	UserID    *int
}

type GetListResponse struct {
	ID        int        `json:"id"`
	UserID    *int       `json:"user_id"`
	FirstName *string    `json:"first_name"`
	LastName  *string    `json:"last_name"`
	Email     *string    `json:"email"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Status    *string    `json:"status"`
	Location  *string    `json:"location"`
	Position  *string    `json:"position"`
}

type CreateRequest struct {
	UserID    *int       `json:"user_id"    form:"user_id"`
	StartTime *time.Time `json:"start_time" form:"start_time"`
	EndTime   *time.Time `json:"end_time"   form:"end_time"`
	Location  *string    `json:"location"   form:"location"`
	Position  *string    `json:"position"   form:"position"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:shifts"`

	ID        int        `json:"id" bun:"-"`
	UserID    *int       `json:"user_id"    bun:"user_id"`
	StartTime *time.Time `json:"start_time" bun:"start_time"`
	EndTime   *time.Time `json:"end_time"   bun:"end_time"`
	Status    string     `json:"status"     bun:"status"`
	Location  *string    `json:"location"   bun:"location"`
	Position  *string    `json:"position"   bun:"position"`
	CreatedAt time.Time  `json:"-"          bun:"created_at"`
	CreatedBy int        `json:"-"          bun:"created_by"`
}

type UpdateRequest struct {
	ID        int        `json:"id"         form:"id"`
	StartTime *time.Time `json:"start_time" form:"start_time"`
	EndTime   *time.Time `json:"end_time"   form:"end_time"`
	Status    *string    `json:"status"     form:"status"`
	Location  *string    `json:"location"   form:"location"`
	Position  *string    `json:"position"   form:"position"`
}

type BulkCreateRequest struct {
	Shifts []CreateRequest `json:"shifts" form:"shifts"`
}
