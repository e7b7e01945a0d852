package api

// swagger:model api.VerifyResponse
type VerifyResponse struct {
	Valid bool         `json:"valid" example:"true"`
	User  UserResponse `json:"user"`
}
