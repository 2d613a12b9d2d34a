package timeoff

import (
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Status *string
}

type CreateRequest struct {
	StartDate *date.Date `json:"start_date" form:"start_date"`
	EndDate   *date.Date `json:"end_date"   form:"end_date"`
	Type      *string    `json:"type"       form:"type"`
	Reason    *string    `json:"reason"     form:"reason"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:time_off_requests"`

	ID        int        `json:"id" bun:"-"`
	UserID    int        `json:"user_id"    bun:"user_id"`
	StartDate *date.Date `json:"start_date" bun:"start_date"`
	EndDate   *date.Date `json:"end_date"   bun:"end_date"`
	Type      string     `json:"type"       bun:"type"`
	Reason    *string    `json:"reason"     bun:"reason"`
	Status    string     `json:"status"     bun:"status"`
	CreatedAt time.Time  `json:"-"          bun:"created_at"`
	CreatedBy int        `json:"-"          bun:"created_by"`
}

type GetListResponse struct {
	ID           int        `json:"id"`
	UserID       int        `json:"user_id"`
	FirstName    *string    `json:"first_name"`
	LastName     *string    `json:"last_name"`
	Email        *string    `json:"email"`
	StartDate    *date.Date `json:"start_date"`
	EndDate      *date.Date `json:"end_date"`
	Type         *string    `json:"type"`
	Reason       *string    `json:"reason"`
	Status       *string    `json:"status"`
	ReviewedBy   *int       `json:"reviewed_by"`
	ReviewedAt   *time.Time `json:"reviewed_at"`
	ManagerNotes *string    `json:"manager_notes"`
	CreatedAt    *time.Time `json:"created_at"`
}

type ReviewRequest struct {
	ID    int     `json:"id"    form:"id"`
	Notes *string `json:"notes" form:"notes"`
}
