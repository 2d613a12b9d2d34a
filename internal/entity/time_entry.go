package entity

import (
	"time"

	"github.com/uptrace/bun"
)

type TimeEntry struct {
	bun.BaseModel `bun:"table:time_entries"`

	BasicEntity
	UserID          *int       `json:"user_id"       bun:"user_id"`
	ShiftID         *int       `json:"shift_id"      bun:"shift_id"`
	ClockInTime     *time.Time `json:"clock_in_time" bun:"clock_in_time"`
	ClockOutTime    *time.Time `json:"clock_out_time" bun:"clock_out_time"`
	TotalHours      *float64   `json:"total_hours"   bun:"total_hours"`
	ManualEntry     *bool      `json:"manual_entry"  bun:"manual_entry"`
	ManualEntryBy   *int       `json:"manual_entry_by" bun:"manual_entry_by"`
	ManualEntryNote *string    `json:"manual_entry_note" bun:"manual_entry_note"`
	TabletID        *string    `json:"tablet_id"     bun:"tablet_id"`
	TabletLocation  *string    `json:"tablet_location" bun:"tablet_location"`
}
