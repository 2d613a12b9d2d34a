package entity

import (
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/uptrace/bun"
)

const (
	RequestPending  = "PENDING"
	RequestApproved = "APPROVED"
	RequestDenied   = "DENIED"
)

type TimeOffRequest struct {
	bun.BaseModel `bun:"table:time_off_requests"`

	BasicEntity
	UserID       *int       `json:"user_id"    bun:"user_id"`
	StartDate    *date.Date `json:"start_date" bun:"start_date"`
	EndDate      *date.Date `json:"end_date"   bun:"end_date"`
	Type         *string    `json:"type"       bun:"type"`
	Reason       *string    `json:"reason"     bun:"reason"`
	Status       *string    `json:"status"     bun:"status"`
	ReviewedBy   *int       `json:"reviewed_by" bun:"reviewed_by"`
	ReviewedAt   *time.Time `json:"reviewed_at" bun:"reviewed_at"`
	ManagerNotes *string    `json:"manager_notes" bun:"manager_notes"`
}
