package api

// UserSummary 登入成功回傳的使用者摘要，絕不包含密碼哈希
// swagger:model api.UserSummary
type UserSummary struct {
	ID      int    `json:"id" example:"1"`
	Name    string `json:"name" example:"Alice"`
	Email   string `json:"email" example:"alice@example.com"`
	IsAdmin bool   `json:"is_admin" example:"false"`
}

// swagger:model api.LoginResponse
type LoginResponse struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message" example:"Login successful"`
	User    UserSummary `json:"user"`
}
