package router

import (
	"net/http"
	"testing"

	"car-rental/internal/cache"
	"car-rental/internal/database"
	"car-rental/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, nil, service.AdminCredentials{})

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodPost + " /admin/login",
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/auth/signup",
		http.MethodPost + " /api/auth/login",
		http.MethodGet + " /api/users",
		http.MethodGet + " /api/users/count",
		http.MethodDelete + " /api/users/:id",
		http.MethodGet + " /api/cars",
		http.MethodPost + " /api/cars",
		http.MethodGet + " /api/cars/count",
		http.MethodPut + " /api/cars/:id",
		http.MethodDelete + " /api/cars/:id",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}
