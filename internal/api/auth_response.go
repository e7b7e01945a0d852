package api

// AuthResponse is returned by register and login.
// swagger:model api.AuthResponse
type AuthResponse struct {
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
	Message string       `json:"message" example:"Login successful"`
}
