package entity

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users"`

	BasicEntity
	Email        *string    `json:"email"      bun:"email"`
	Password     *string    `json:"-"          bun:"password"`
	FirstName    *string    `json:"first_name" bun:"first_name"`
	LastName     *string    `json:"last_name"  bun:"last_name"`
	Phone        *string    `json:"phone"      bun:"phone"`
	Role         *string    `json:"role"       bun:"role"`
	Status       *string    `json:"status"     bun:"status"`
	Pin          *string    `json:"-"          bun:"pin"`
	PinChangedAt *time.Time `json:"pin_changed_at" bun:"pin_changed_at"`
}
