package users

import (
	"errors"
	"net/http"
	"strconv"

	"car-rental/internal/api"
	"car-rental/internal/cache"
	"car-rental/internal/database"
	"car-rental/internal/store"
	"car-rental/internal/worker"

	"github.com/labstack/echo/v4"
)

var (
	listUsers  = store.ListUsers
	deleteUser = store.DeleteUser
	countUsers = store.CountUsers
)

// ListUsersHandler 取得所有使用者
// @Summary     List users
// @Description 回傳全部使用者，role 由 is_admin 推導為 Admin/Customer
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UsersResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		views := make([]api.UserView, 0, len(users))
		for _, u := range users {
			role := "Customer"
			if u.IsAdmin {
				role = "Admin"
			}
			views = append(views, api.UserView{
				ID:    u.ID,
				Name:  u.Name,
				Email: u.Email,
				Role:  role,
			})
		}
		return c.JSON(http.StatusOK, api.UsersResponse{Users: views})
	}
}

// DeleteUserHandler 刪除使用者
// @Summary     Delete a user by ID
// @Description 根據使用者 ID 刪除帳號，無關聯資料需要連帶處理
// @Tags        users
// @Produce     json
// @Param       id path int true "使用者 ID"
// @Success     200 {object} api.StatusResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.StatusResponse "使用者不存在"
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/{id} [delete]
func DeleteUserHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}
		if err := deleteUser(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.StatusResponse{Success: false, Message: "User not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		cache.InvalidateAsync(rdb, wp, cache.UserCountKey)

		return c.JSON(http.StatusOK, api.StatusResponse{Success: true, Message: "User deleted successfully"})
	}
}

// CountUsersHandler 取得使用者總數
// @Summary     Count users
// @Description 回傳使用者總數，結果快取 30 秒
// @Tags        users
// @Produce     json
// @Success     200 {object} api.CountResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/count [get]
func CountUsersHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if n, ok := cache.GetCount(ctx, rdb, cache.UserCountKey); ok {
			return c.JSON(http.StatusOK, api.CountResponse{Count: n})
		}

		n, err := countUsers(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		cache.SetCount(ctx, rdb, cache.UserCountKey, n)

		return c.JSON(http.StatusOK, api.CountResponse{Count: n})
	}
}
