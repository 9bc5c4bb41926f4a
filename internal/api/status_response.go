package api

// StatusResponse 全域操作結果模型
// swagger:model api.StatusResponse
type StatusResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"ok"`
}
