package api

import "time"

// UserResponse is a user minus the password hash.
// swagger:model api.UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	Name      string    `json:"name" example:"Alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	CreatedAt time.Time `json:"createdAt" example:"2025-05-01T15:04:05Z"`
}
