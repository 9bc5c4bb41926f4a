package api

// swagger:model api.CarView
type CarView struct {
	ID     int    `json:"id" example:"1"`
	Name   string `json:"name" example:"Tesla"`
	Model  string `json:"model" example:"Model 3"`
	Status string `json:"status" example:"Available"`
}

// swagger:model api.CarsResponse
type CarsResponse struct {
	Cars []CarView `json:"cars"`
}

// swagger:model api.CarCreatedResponse
type CarCreatedResponse struct {
	Success bool    `json:"success" example:"true"`
	Message string  `json:"message" example:"Car added successfully"`
	Car     CarView `json:"car"`
}
