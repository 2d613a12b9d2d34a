package entity

import (
	"time"

	"github.com/uptrace/bun"
)

type ShiftChangeRequest struct {
	bun.BaseModel `bun:"table:shift_change_requests"`

	BasicEntity
	UserID             *int       `json:"user_id"              bun:"user_id"`
	OriginalShiftID    *int       `json:"original_shift_id"    bun:"original_shift_id"`
	RequestedStartTime *time.Time `json:"requested_start_time" bun:"requested_start_time"`
	RequestedEndTime   *time.Time `json:"requested_end_time"   bun:"requested_end_time"`
	Reason             *string    `json:"reason"               bun:"reason"`
	Status             *string    `json:"status"               bun:"status"`
	ReviewedBy         *int       `json:"reviewed_by"          bun:"reviewed_by"`
	ReviewedAt         *time.Time `json:"reviewed_at"          bun:"reviewed_at"`
	ManagerNotes       *string    `json:"manager_notes"        bun:"manager_notes"`
}
