package auth

import (
	"errors"
	"net/http"
	"strings"

	"car-rental/internal/api"
	"car-rental/internal/cache"
	"car-rental/internal/database"
	"car-rental/internal/model"
	"car-rental/internal/service"
	"car-rental/internal/store"
	"car-rental/internal/worker"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword     = service.HashPassword
	authenticateUser = service.AuthenticateUser
	createUser       = store.CreateUser
	getUserByEmail   = store.GetUserByEmail
)

// SignupHandler 註冊新使用者
// @Summary     Sign up
// @Description 建立新帳號，Email 轉小寫後須全域唯一，密碼以 bcrypt 哈希後儲存
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       signup body api.SignupRequest true "註冊資料"
// @Success     201 {object} api.StatusResponse
// @Failure     400 {object} api.StatusResponse "欄位缺漏"
// @Failure     409 {object} api.StatusResponse "Email 已註冊"
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/signup [post]
func SignupHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.StatusResponse{Success: false, Message: "Missing required fields"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.StatusResponse{Success: false, Message: "Missing required fields"})
		}

		// Email 轉為小寫以確保一致性
		req.Email = strings.ToLower(req.Email)

		// 先查重，與唯一索引互為保險：並發下輸的一方由 23505 擋下
		if _, err := getUserByEmail(c.Request().Context(), db, req.Email); err == nil {
			return c.JSON(http.StatusConflict, api.StatusResponse{Success: false, Message: "Email already registered"})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		_, err = createUser(c.Request().Context(), db, &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
			IsAdmin:      false,
		})
		if errors.Is(err, store.ErrDuplicateEmail) {
			return c.JSON(http.StatusConflict, api.StatusResponse{Success: false, Message: "Email already registered"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		cache.InvalidateAsync(rdb, wp, cache.UserCountKey)

		return c.JSON(http.StatusCreated, api.StatusResponse{Success: true, Message: "User registered successfully"})
	}
}

// LoginHandler 使用者登入
// @Summary     Log in
// @Description 以 Email 與密碼驗證，成功回傳使用者摘要（不含密碼哈希），無 token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       login body api.LoginRequest true "登入資料"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.StatusResponse "欄位缺漏"
// @Failure     401 {object} api.StatusResponse "帳密錯誤"
// @Router      /auth/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.StatusResponse{Success: false, Message: "Email and password are required"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.StatusResponse{Success: false, Message: "Email and password are required"})
		}

		user, err := getUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.StatusResponse{Success: false, Message: "Invalid credentials"})
		}

		if err := authenticateUser(*user, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.StatusResponse{Success: false, Message: "Invalid credentials"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			Success: true,
			Message: "Login successful",
			User: api.UserSummary{
				ID:      user.ID,
				Name:    user.Name,
				Email:   user.Email,
				IsAdmin: user.IsAdmin,
			},
		})
	}
}
