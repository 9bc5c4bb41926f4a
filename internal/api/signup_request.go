package api

// swagger:model api.SignupRequest
type SignupRequest struct {
	Name     string `json:"name" validate:"required" example:"Alice"`
	Email    string `json:"email" validate:"required" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
}
