package shiftchange

import (
	"time"

	"github.com/uptrace/bun"
)

type CreateRequest struct {
	ShiftID            *int       `json:"shift_id"             form:"shift_id"`
	RequestedStartTime *time.Time `json:"requested_start_time" form:"requested_start_time"`
	RequestedEndTime   *time.Time `json:"requested_end_time"   form:"requested_end_time"`
	Reason             *string    `json:"reason"               form:"reason"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:shift_change_requests"`

	ID                 int        `json:"id" bun:"-"`
	UserID             int        `json:"user_id"              bun:"user_id"`
	OriginalShiftID    int        `json:"original_shift_id"    bun:"original_shift_id"`
	RequestedStartTime *time.Time `json:"requested_start_time" bun:"requested_start_time"`
	RequestedEndTime   *time.Time `json:"requested_end_time"   bun:"requested_end_time"`
	Reason             *string    `json:"reason"               bun:"reason"`
	Status             string     `json:"status"               bun:"status"`
	CreatedAt          time.Time  `json:"-"                    bun:"created_at"`
	CreatedBy          int        `json:"-"                    bun:"created_by"`
}

type GetListResponse struct {
	ID                 int        `json:"id"`
	UserID             int        `json:"user_id"`
	FirstName          *string    `json:"first_name"`
	LastName           *string    `json:"last_name"`
	Email              *string    `json:"email"`
	OriginalShiftID    int        `json:"original_shift_id"`
	ShiftStartTime     *time.Time `json:"shift_start_time"`
	ShiftEndTime       *time.Time `json:"shift_end_time"`
	RequestedStartTime *time.Time `json:"requested_start_time"`
	RequestedEndTime   *time.Time `json:"requested_end_time"`
	Reason             *string    `json:"reason"`
	Status             *string    `json:"status"`
	ReviewedBy         *int       `json:"reviewed_by"`
	ReviewedAt         *time.Time `json:"reviewed_at"`
	ManagerNotes       *string    `json:"manager_notes"`
	CreatedAt          *time.Time `json:"created_at"`
}

type ReviewRequest struct {
	ID    int     `json:"id"    form:"id"`
	Notes *string `json:"notes" form:"notes"`
}
