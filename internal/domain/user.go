package domain

import "time"

type User struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Role        string    `json:"role,omitempty"`
	IsSuspended bool      `json:"isSuspended"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// UserUpdate carries a partial profile update. Only non-nil fields are sent
// to the server.
type UserUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone *string `json:"phone,omitempty"`
}
