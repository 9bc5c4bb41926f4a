package cars

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"car-rental/internal/cache"
	"car-rental/internal/database"
	"car-rental/internal/model"
	"car-rental/internal/store"
	"car-rental/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

// syncPool 讓任務在 Submit 時同步執行，便於斷言
type syncPool struct{}

func (syncPool) Submit(t worker.Task) { t() }
func (syncPool) Stop()                {}

func newJSONCtx(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newParamCtx(e *echo.Echo, method, val, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/cars/"+val, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/cars/:id")
	c.SetParamNames("id")
	c.SetParamValues(val)
	return c, rec
}

func restore() {
	createCar = store.CreateCar
	listCars = store.ListCars
	updateCar = store.UpdateCar
	deleteCar = store.DeleteCar
	countCars = store.CountCars
}

func TestListCarsHandler(t *testing.T) {
	e := echo.New()

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		listCars = func(context.Context, database.DB) ([]model.Car, error) { return nil, errors.New("q") }
		req := httptest.NewRequest(http.MethodGet, "/cars", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, ListCarsHandler(nil)(e.NewContext(req, rec)))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		now := time.Now().UTC()
		listCars = func(context.Context, database.DB) ([]model.Car, error) {
			return []model.Car{{ID: 1, Name: "Tesla", Model: "Model 3", Status: model.StatusAvailable, CreatedAt: now}}, nil
		}
		req := httptest.NewRequest(http.MethodGet, "/cars", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, ListCarsHandler(nil)(e.NewContext(req, rec)))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"status":"Available"`)
	})

	t.Run("empty list is array", func(t *testing.T) {
		t.Cleanup(restore)
		listCars = func(context.Context, database.DB) ([]model.Car, error) { return nil, nil }
		req := httptest.NewRequest(http.MethodGet, "/cars", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, ListCarsHandler(nil)(e.NewContext(req, rec)))
		require.Contains(t, rec.Body.String(), `"cars":[]`)
	})
}

func TestCreateCarHandler(t *testing.T) {
	e := echo.New()

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, http.MethodPost, "{")
		require.NoError(t, CreateCarHandler(nil, nil, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Missing name or model")
	})

	t.Run("missing model", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("v")}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"name":"Tesla"}`)
		require.NoError(t, CreateCarHandler(nil, nil, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Missing name or model")
	})

	t.Run("invalid status", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("v")}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"name":"Tesla","model":"Model 3","status":"Scrapped"}`)
		require.NoError(t, CreateCarHandler(nil, nil, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Invalid status")
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		createCar = func(context.Context, database.DB, *model.Car) (*model.Car, error) {
			return nil, errors.New("c")
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"name":"Tesla","model":"Model 3"}`)
		require.NoError(t, CreateCarHandler(nil, nil, nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("status defaults to Available", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		var got *model.Car
		createCar = func(_ context.Context, _ database.DB, c *model.Car) (*model.Car, error) {
			got = c
			c.ID = 1
			c.CreatedAt = time.Now().UTC()
			return c, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"name":"Tesla","model":"Model 3"}`)
		require.NoError(t, CreateCarHandler(nil, nil, nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, model.StatusAvailable, got.Status)
		require.Contains(t, rec.Body.String(), "Car added successfully")
		require.Contains(t, rec.Body.String(), `"id":1`)
	})

	t.Run("success invalidates count cache", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		createCar = func(_ context.Context, _ database.DB, c *model.Car) (*model.Car, error) {
			c.ID = 2
			return c, nil
		}
		var deleted []string
		rdb := &cache.FakeCache{DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
			deleted = keys
			return redis.NewIntResult(1, nil)
		}}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"name":"Honda","model":"Civic","status":"Rented"}`)
		require.NoError(t, CreateCarHandler(nil, rdb, syncPool{})(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, []string{cache.CarCountKey}, deleted)
	})
}

func TestUpdateCarHandler(t *testing.T) {
	e := echo.New()

	t.Run("bad id", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newParamCtx(e, http.MethodPut, "x", `{"status":"Rented"}`)
		require.NoError(t, UpdateCarHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid status", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("v")}
		ctx, rec := newParamCtx(e, http.MethodPut, "1", `{"status":"Scrapped"}`)
		require.NoError(t, UpdateCarHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Invalid status")
	})

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		updateCar = func(context.Context, database.DB, int, *string, *string, *string) error {
			return store.ErrNotFound
		}
		ctx, rec := newParamCtx(e, http.MethodPut, "9", `{"status":"Rented"}`)
		require.NoError(t, UpdateCarHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "Car not found")
	})

	t.Run("partial update passes only provided fields", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		var gotName, gotModel, gotStatus *string
		updateCar = func(_ context.Context, _ database.DB, id int, name, carModel, status *string) error {
			require.Equal(t, 1, id)
			gotName, gotModel, gotStatus = name, carModel, status
			return nil
		}
		ctx, rec := newParamCtx(e, http.MethodPut, "1", `{"status":"Rented"}`)
		require.NoError(t, UpdateCarHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Car updated successfully")
		require.Nil(t, gotName)
		require.Nil(t, gotModel)
		require.NotNil(t, gotStatus)
		require.Equal(t, model.StatusRented, *gotStatus)
	})
}

func TestDeleteCarHandler(t *testing.T) {
	e := echo.New()

	t.Run("bad id", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newParamCtx(e, http.MethodDelete, "x", "")
		require.NoError(t, DeleteCarHandler(nil, nil, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		deleteCar = func(context.Context, database.DB, int) error { return store.ErrNotFound }
		ctx, rec := newParamCtx(e, http.MethodDelete, "9", "")
		require.NoError(t, DeleteCarHandler(nil, nil, nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "Car not found")
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		deleteCar = func(context.Context, database.DB, int) error { return nil }
		ctx, rec := newParamCtx(e, http.MethodDelete, "1", "")
		require.NoError(t, DeleteCarHandler(nil, nil, nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Car deleted successfully")
	})
}

func TestCountCarsHandler(t *testing.T) {
	e := echo.New()

	t.Run("cache hit", func(t *testing.T) {
		t.Cleanup(restore)
		rdb := &cache.FakeCache{GetFn: func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("7", nil)
		}}
		req := httptest.NewRequest(http.MethodGet, "/cars/count", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, CountCarsHandler(nil, rdb)(e.NewContext(req, rec)))
		require.Contains(t, rec.Body.String(), `"count":7`)
	})

	t.Run("cache miss", func(t *testing.T) {
		t.Cleanup(restore)
		countCars = func(context.Context, database.DB) (int, error) { return 2, nil }
		req := httptest.NewRequest(http.MethodGet, "/cars/count", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, CountCarsHandler(nil, nil)(e.NewContext(req, rec)))
		require.Contains(t, rec.Body.String(), `"count":2`)
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		countCars = func(context.Context, database.DB) (int, error) { return 0, errors.New("c") }
		req := httptest.NewRequest(http.MethodGet, "/cars/count", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, CountCarsHandler(nil, nil)(e.NewContext(req, rec)))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
