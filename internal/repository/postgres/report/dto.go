package report

import "time"

type RangeFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	HourlyRate *float64
	Limit      *int
}

// EntryRow is one time entry joined with its owner, the raw material the
// grouping functions work on.
type EntryRow struct {
	UserID       int
	FirstName    *string
	LastName     *string
	Email        *string
	Role         *string
	EntryID      int
	ClockInTime  time.Time
	ClockOutTime *time.Time
	TotalHours   *float64
}

type HoursEntry struct {
	ID           int        `json:"id"`
	ClockInTime  time.Time  `json:"clock_in_time"`
	ClockOutTime *time.Time `json:"clock_out_time"`
	TotalHours   *float64   `json:"total_hours"`
}

type EmployeeHours struct {
	UserID     int          `json:"user_id"`
	FirstName  *string      `json:"first_name"`
	LastName   *string      `json:"last_name"`
	Email      *string      `json:"email"`
	TotalHours float64      `json:"total_hours"`
	Entries    []HoursEntry `json:"entries"`
}

type WeeklyHoursResponse struct {
	PeriodStart   time.Time       `json:"period_start"`
	PeriodEnd     time.Time       `json:"period_end"`
	EmployeeCount int             `json:"employee_count"`
	TotalHours    float64         `json:"total_hours"`
	Employees     []EmployeeHours `json:"employees"`
}

type EmployeeCost struct {
	UserID     int     `json:"user_id"`
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Role       *string `json:"role"`
	TotalHours float64 `json:"total_hours"`
	LaborCost  float64 `json:"labor_cost"`
	EntryCount int     `json:"entry_count"`
}

type LaborCostResponse struct {
	PeriodStart    time.Time      `json:"period_start"`
	PeriodEnd      time.Time      `json:"period_end"`
	HourlyRate     float64        `json:"hourly_rate"`
	TotalHours     float64        `json:"total_hours"`
	TotalLaborCost float64        `json:"total_labor_cost"`
	EmployeeCount  int            `json:"employee_count"`
	Employees      []EmployeeCost `json:"employees"`
}

type HistoryEntry struct {
	ID           int        `json:"id"`
	ClockInTime  time.Time  `json:"clock_in_time"`
	ClockOutTime *time.Time `json:"clock_out_time"`
	TotalHours   *float64   `json:"total_hours"`
	ShiftStart   *time.Time `json:"shift_start"`
	ShiftEnd     *time.Time `json:"shift_end"`
	Position     *string    `json:"position"`
	Location     *string    `json:"location"`
	ManualEntry  *bool      `json:"manual_entry"`
}

type HistoryResponse struct {
	UserID     int            `json:"user_id"`
	FirstName  *string        `json:"first_name"`
	LastName   *string        `json:"last_name"`
	Email      *string        `json:"email"`
	Role       *string        `json:"role"`
	TotalHours float64        `json:"total_hours"`
	EntryCount int            `json:"entry_count"`
	Entries    []HistoryEntry `json:"entries"`
}

type DashboardStats struct {
	CurrentlyClockedIn  int     `json:"currently_clocked_in"`
	TodayShifts         int     `json:"today_shifts"`
	PendingTimeOff      int     `json:"pending_time_off_requests"`
	PendingShiftChanges int     `json:"pending_shift_change_requests"`
	WeekTotalHours      float64 `json:"week_total_hours"`
	ActiveEmployees     int     `json:"active_employees"`
}
