// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"car-rental/internal/cache"
	"car-rental/internal/database"
	"car-rental/internal/handler"
	"car-rental/internal/handler/admin"
	"car-rental/internal/handler/auth"
	"car-rental/internal/handler/cars"
	"car-rental/internal/handler/users"
	"car-rental/internal/service"
	"car-rental/internal/worker"
)

// Setup 註冊所有路由並注入相依
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool, creds service.AdminCredentials) {
	// 後台操作員登入（獨立於 /api 之外）
	e.POST("/admin/login", admin.LoginHandler(creds))

	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db))

	// 註冊與登入
	api.POST("/auth/signup", auth.SignupHandler(db, rdb, wp))
	api.POST("/auth/login", auth.LoginHandler(db))

	// Users
	apiUsers := api.Group("/users")
	apiUsers.GET("", users.ListUsersHandler(db))
	apiUsers.GET("/count", users.CountUsersHandler(db, rdb))
	apiUsers.DELETE("/:id", users.DeleteUserHandler(db, rdb, wp))

	// Cars
	apiCars := api.Group("/cars")
	apiCars.GET("", cars.ListCarsHandler(db))
	apiCars.POST("", cars.CreateCarHandler(db, rdb, wp))
	apiCars.GET("/count", cars.CountCarsHandler(db, rdb))
	apiCars.PUT("/:id", cars.UpdateCarHandler(db))
	apiCars.DELETE("/:id", cars.DeleteCarHandler(db, rdb, wp))
}
