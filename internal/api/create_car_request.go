package api

// swagger:model api.CreateCarRequest
type CreateCarRequest struct {
	Name   string `json:"name" validate:"required" example:"Tesla"`
	Model  string `json:"model" validate:"required" example:"Model 3"`
	Status string `json:"status" validate:"omitempty,oneof=Available Rented" example:"Available"`
}
