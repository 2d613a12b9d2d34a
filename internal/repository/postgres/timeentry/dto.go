package timeentry

import (
	"time"

	"github.com/uptrace/bun"
)

type ClockInRequest struct {
	Pin            *string `json:"pin"             form:"pin"`
	TabletID       *string `json:"tablet_id"       form:"tablet_id"`
	TabletLocation *string `json:"tablet_location" form:"tablet_location"`
}

type ClockInResponse struct {
	bun.BaseModel `bun:"table:time_entries"`

	ID             int        `json:"id" bun:"-"`
	UserID         *int       `json:"user_id"       bun:"user_id"`
	ShiftID        *int       `json:"shift_id"      bun:"shift_id"`
	ClockInTime    time.Time  `json:"clock_in_time" bun:"clock_in_time"`
	TabletID       *string    `json:"tablet_id"     bun:"tablet_id"`
	TabletLocation *string    `json:"tablet_location" bun:"tablet_location"`
	CreatedAt      time.Time  `json:"-"             bun:"created_at"`
	FirstName      *string    `json:"first_name"    bun:"-"`
	LastName       *string    `json:"last_name"     bun:"-"`
	ShiftStart     *time.Time `json:"shift_start"   bun:"-"`
	ShiftEnd       *time.Time `json:"shift_end"     bun:"-"`
}

type ClockOutRequest struct {
	Pin *string `json:"pin" form:"pin"`
}

type ClockOutResponse struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	ShiftID      int       `json:"shift_id"`
	ClockInTime  time.Time `json:"clock_in_time"`
	ClockOutTime time.Time `json:"clock_out_time"`
	TotalHours   float64   `json:"total_hours"`
	FirstName    *string   `json:"first_name"`
	LastName     *string   `json:"last_name"`
}

type ManualEntryRequest struct {
	UserID       *int       `json:"user_id"        form:"user_id"`
	ShiftID      *int       `json:"shift_id"       form:"shift_id"`
	ClockInTime  *time.Time `json:"clock_in_time"  form:"clock_in_time"`
	ClockOutTime *time.Time `json:"clock_out_time" form:"clock_out_time"`
	Note         *string    `json:"note"           form:"note"`
}

type ManualEntryResponse struct {
	bun.BaseModel `bun:"table:time_entries"`

	ID              int       `json:"id" bun:"-"`
	UserID          *int      `json:"user_id"        bun:"user_id"`
	ShiftID         *int      `json:"shift_id"       bun:"shift_id"`
	ClockInTime     time.Time `json:"clock_in_time"  bun:"clock_in_time"`
	ClockOutTime    time.Time `json:"clock_out_time" bun:"clock_out_time"`
	TotalHours      float64   `json:"total_hours"    bun:"total_hours"`
	ManualEntry     bool      `json:"manual_entry"   bun:"manual_entry"`
	ManualEntryBy   int       `json:"manual_entry_by" bun:"manual_entry_by"`
	ManualEntryNote *string   `json:"manual_entry_note" bun:"manual_entry_note"`
	CreatedAt       time.Time `json:"-"              bun:"created_at"`
	CreatedBy       int       `json:"-"              bun:"created_by"`
}

type LiveEntryResponse struct {
	ID          int        `json:"id"`
	UserID      int        `json:"user_id"`
	FirstName   *string    `json:"first_name"`
	LastName    *string    `json:"last_name"`
	Email       *string    `json:"email"`
	ClockInTime time.Time  `json:"clock_in_time"`
	Position    *string    `json:"position"`
	Location    *string    `json:"location"`
	ShiftStart  *time.Time `json:"shift_start"`
	ShiftEnd    *time.Time `json:"shift_end"`
}

type PeriodEntry struct {
	ID           int        `json:"id"`
	ShiftID      *int       `json:"shift_id"`
	ClockInTime  time.Time  `json:"clock_in_time"`
	ClockOutTime *time.Time `json:"clock_out_time"`
	TotalHours   *float64   `json:"total_hours"`
	Position     *string    `json:"position"`
	Location     *string    `json:"location"`
}

type PeriodResponse struct {
	PeriodStart time.Time     `json:"period_start"`
	PeriodEnd   time.Time     `json:"period_end"`
	TotalHours  float64       `json:"total_hours"`
	Entries     []PeriodEntry `json:"entries"`
}
