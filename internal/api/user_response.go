package api

// UserView 使用者列表項目，role 由 is_admin 推導
// swagger:model api.UserView
type UserView struct {
	ID    int    `json:"id" example:"1"`
	Name  string `json:"name" example:"Alice"`
	Email string `json:"email" example:"alice@example.com"`
	Role  string `json:"role" example:"Customer"`
}

// swagger:model api.UsersResponse
type UsersResponse struct {
	Users []UserView `json:"users"`
}
