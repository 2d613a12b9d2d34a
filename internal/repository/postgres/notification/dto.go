package notification

import "time"

type Filter struct {
	Limit      *int
	Offset     *int
	Page       *int
	UnreadOnly *bool
}

type GetListResponse struct {
	ID        int       `json:"id"`
	Type      *string   `json:"type"`
	Message   *string   `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
