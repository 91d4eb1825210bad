package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserResponse is the public view of a user. It never carries the
// password or its hash.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
