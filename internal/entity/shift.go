package entity

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	ShiftScheduled  = "SCHEDULED"
	ShiftInProgress = "IN_PROGRESS"
	ShiftCompleted  = "COMPLETED"
	ShiftCancelled  = "CANCELLED"
)

type Shift struct {
	bun.BaseModel `bun:"table:shifts"`

	BasicEntity
	UserID    *int       `json:"user_id"    bun:"user_id"`
	StartTime *time.Time `json:"start_time" bun:"start_time"`
	EndTime   *time.Time `json:"end_time"   bun:"end_time"`
	Status    *string    `json:"status"     bun:"status"`
	Location  *string    `json:"location"   bun:"location"`
	Position  *string    `json:"position"   bun:"position"`
}
