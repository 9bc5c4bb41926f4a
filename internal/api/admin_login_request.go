package api

// swagger:model api.AdminLoginRequest
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required" example:"admin@gmail.com"`
	Password string `json:"password" validate:"required" example:"password"`
}
