package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mid "github.com/anto251070/tdd-bdd-final-project/internal/middleware"
)

func TestRequestIDGenerated(t *testing.T) {
	e := echo.New()
	e.Use(mid.RequestIDMiddleware)
	e.GET("/ping", func(c echo.Context) error {
		id, _ := c.Get("request_id").(string)
		return c.String(http.StatusOK, id)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	id := rec.Header().Get("X-Request-ID")
	require.NotEmpty(t, id)
	assert.Equal(t, id, rec.Body.String())
}

func TestRequestIDHonorsInbound(t *testing.T) {
	e := echo.New()
	e.Use(mid.RequestIDMiddleware)
	e.GET("/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestRequestIDAttachesLogger(t *testing.T) {
	e := echo.New()
	e.Use(mid.RequestIDMiddleware)
	e.GET("/ping", func(c echo.Context) error {
		if c.Get("logger") == nil {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
