// File: internal/handler/admin/login.go
package admin

import (
	"net/http"

	"car-rental/internal/api"
	"car-rental/internal/service"

	"github.com/labstack/echo/v4"
)

// LoginHandler 後台操作員登入，僅比對啟動時注入的帳密
// @Summary     Admin login
// @Description 比對環境注入的管理員帳密，無 session，每次請求重新驗證
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       credentials body api.AdminLoginRequest true "管理員帳密"
// @Success     200 {object} api.StatusResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.StatusResponse
// @Router      /admin/login [post]
func LoginHandler(creds service.AdminCredentials) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.AdminLoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		// 帳密不符一律回 401，不區分欄位缺漏
		if !creds.Match(req.Email, req.Password) {
			return c.JSON(http.StatusUnauthorized, api.StatusResponse{Success: false, Message: "Invalid credentials"})
		}
		return c.JSON(http.StatusOK, api.StatusResponse{Success: true, Message: "Login successful"})
	}
}
