package cars

import (
	"errors"
	"net/http"
	"strconv"

	"car-rental/internal/api"
	"car-rental/internal/cache"
	"car-rental/internal/database"
	"car-rental/internal/model"
	"car-rental/internal/store"
	"car-rental/internal/worker"

	"github.com/labstack/echo/v4"
)

var (
	createCar = store.CreateCar
	listCars  = store.ListCars
	updateCar = store.UpdateCar
	deleteCar = store.DeleteCar
	countCars = store.CountCars
)

// ListCarsHandler 取得所有車輛
// @Summary     List cars
// @Description 回傳全部車輛，無分頁、無過濾
// @Tags        cars
// @Produce     json
// @Success     200 {object} api.CarsResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /cars [get]
func ListCarsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		cars, err := listCars(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		views := make([]api.CarView, 0, len(cars))
		for _, car := range cars {
			views = append(views, api.CarView{
				ID:     car.ID,
				Name:   car.Name,
				Model:  car.Model,
				Status: car.Status,
			})
		}
		return c.JSON(http.StatusOK, api.CarsResponse{Cars: views})
	}
}

// CreateCarHandler 新增車輛
// @Summary     Create a car
// @Description 新增車輛，status 未提供時預設 Available，僅接受 Available/Rented
// @Tags        cars
// @Accept      json
// @Produce     json
// @Param       car body api.CreateCarRequest true "車輛資料"
// @Success     201 {object} api.CarCreatedResponse
// @Failure     400 {object} api.StatusResponse "欄位缺漏或 status 不合法"
// @Failure     500 {object} api.ErrorResponse
// @Router      /cars [post]
func CreateCarHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateCarRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.StatusResponse{Success: false, Message: "Missing name or model"})
		}
		if err := c.Validate(&req); err != nil {
			if req.Name == "" || req.Model == "" {
				return c.JSON(http.StatusBadRequest, api.StatusResponse{Success: false, Message: "Missing name or model"})
			}
			return c.JSON(http.StatusBadRequest, api.StatusResponse{Success: false, Message: "Invalid status"})
		}
		if req.Status == "" {
			req.Status = model.StatusAvailable
		}

		car, err := createCar(c.Request().Context(), db, &model.Car{
			Name:   req.Name,
			Model:  req.Model,
			Status: req.Status,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		cache.InvalidateAsync(rdb, wp, cache.CarCountKey)

		return c.JSON(http.StatusCreated, api.CarCreatedResponse{
			Success: true,
			Message: "Car added successfully",
			Car: api.CarView{
				ID:     car.ID,
				Name:   car.Name,
				Model:  car.Model,
				Status: car.Status,
			},
		})
	}
}

// UpdateCarHandler 局部更新車輛
// @Summary     Update a car by ID
// @Description 提供的欄位覆寫原值，未提供的欄位保留，status 僅接受 Available/Rented
// @Tags        cars
// @Accept      json
// @Produce     json
// @Param       id  path int true "車輛 ID"
// @Param       car body api.UpdateCarRequest true "更新欄位"
// @Success     200 {object} api.StatusResponse
// @Failure     400 {object} api.StatusResponse
// @Failure     404 {object} api.StatusResponse "車輛不存在"
// @Failure     500 {object} api.ErrorResponse
// @Router      /cars/{id} [put]
func UpdateCarHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid car ID"})
		}

		var req api.UpdateCarRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.StatusResponse{Success: false, Message: "Invalid status"})
		}

		if err := updateCar(c.Request().Context(), db, id, req.Name, req.Model, req.Status); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.StatusResponse{Success: false, Message: "Car not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, api.StatusResponse{Success: true, Message: "Car updated successfully"})
	}
}

// DeleteCarHandler 刪除車輛
// @Summary     Delete a car by ID
// @Tags        cars
// @Produce     json
// @Param       id path int true "車輛 ID"
// @Success     200 {object} api.StatusResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.StatusResponse "車輛不存在"
// @Failure     500 {object} api.ErrorResponse
// @Router      /cars/{id} [delete]
func DeleteCarHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid car ID"})
		}
		if err := deleteCar(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.StatusResponse{Success: false, Message: "Car not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		cache.InvalidateAsync(rdb, wp, cache.CarCountKey)

		return c.JSON(http.StatusOK, api.StatusResponse{Success: true, Message: "Car deleted successfully"})
	}
}

// CountCarsHandler 取得車輛總數
// @Summary     Count cars
// @Description 回傳車輛總數，結果快取 30 秒
// @Tags        cars
// @Produce     json
// @Success     200 {object} api.CountResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /cars/count [get]
func CountCarsHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if n, ok := cache.GetCount(ctx, rdb, cache.CarCountKey); ok {
			return c.JSON(http.StatusOK, api.CountResponse{Count: n})
		}

		n, err := countCars(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		cache.SetCount(ctx, rdb, cache.CarCountKey, n)

		return c.JSON(http.StatusOK, api.CountResponse{Count: n})
	}
}
