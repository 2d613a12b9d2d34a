package user

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Search *string
	Role   *string
	Status *string
}

type SignInRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" form:"refresh_token"`
}

type GetListResponse struct {
	ID        int     `json:"id"`
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Role      *string `json:"role"`
	Status    *string `json:"status"`
}

type GetMeResponse struct {
	ID           int        `json:"id"`
	Email        *string    `json:"email"`
	FirstName    *string    `json:"first_name"`
	LastName     *string    `json:"last_name"`
	Phone        *string    `json:"phone"`
	Role         *string    `json:"role"`
	Status       *string    `json:"status"`
	Pin          *string    `json:"pin"`
	PinChangedAt *time.Time `json:"pin_changed_at"`
}

type CreateRequest struct {
	Email     *string `json:"email"      form:"email"`
	Password  *string `json:"password"   form:"password"`
	FirstName *string `json:"first_name" form:"first_name"`
	LastName  *string `json:"last_name"  form:"last_name"`
	Phone     *string `json:"phone"      form:"phone"`
	Role      *string `json:"role"       form:"role"`
	Pin       *string `json:"pin"        form:"pin"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:users"`

	ID        int       `json:"id" bun:"-"`
	Email     *string   `json:"email"      bun:"email"`
	Password  *string   `json:"-"          bun:"password"`
	FirstName *string   `json:"first_name" bun:"first_name"`
	LastName  *string   `json:"last_name"  bun:"last_name"`
	Phone     *string   `json:"phone"      bun:"phone"`
	Role      *string   `json:"role"       bun:"role"`
	Status    *string   `json:"status"     bun:"status"`
	Pin       *string   `json:"-"          bun:"pin"`
	CreatedAt time.Time `json:"-"          bun:"created_at"`
	CreatedBy int       `json:"-"          bun:"created_by"`
}

type UpdateRequest struct {
	ID        int     `json:"id" form:"id"`
	Email     *string `json:"email"      form:"email"`
	Password  *string `json:"password"   form:"password"`
	FirstName *string `json:"first_name" form:"first_name"`
	LastName  *string `json:"last_name"  form:"last_name"`
	Phone     *string `json:"phone"      form:"phone"`
	Role      *string `json:"role"       form:"role"`
	Status    *string `json:"status"     form:"status"`
}

type UpdatePinRequest struct {
	NewPin *string `json:"new_pin" form:"new_pin"`
}
