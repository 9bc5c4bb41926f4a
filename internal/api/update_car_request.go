package api

// UpdateCarRequest 局部更新：未提供的欄位保留原值
// swagger:model api.UpdateCarRequest
type UpdateCarRequest struct {
	Name   *string `json:"name" example:"Tesla"`
	Model  *string `json:"model" example:"Model 3"`
	Status *string `json:"status" validate:"omitempty,oneof=Available Rented" example:"Rented"`
}
