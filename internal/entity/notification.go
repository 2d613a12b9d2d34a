package entity

import (
	"github.com/uptrace/bun"
)

const (
	NotificationTimeOffRequest      = "TIME_OFF_REQUEST"
	NotificationTimeOffApproved     = "TIME_OFF_APPROVED"
	NotificationTimeOffDenied       = "TIME_OFF_DENIED"
	NotificationShiftChangeRequest  = "SHIFT_CHANGE_REQUEST"
	NotificationShiftChangeApproved = "SHIFT_CHANGE_APPROVED"
	NotificationShiftChangeDenied   = "SHIFT_CHANGE_DENIED"
)

type Notification struct {
	bun.BaseModel `bun:"table:notifications"`

	BasicEntity
	UserID  *int    `json:"user_id" bun:"user_id"`
	Type    *string `json:"type"    bun:"type"`
	Message *string `json:"message" bun:"message"`
	Read    *bool   `json:"read"    bun:"read"`
}
