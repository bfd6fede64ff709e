package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/anto251070/tdd-bdd-final-project/pkg/logger"
)

// Index returns service metadata so callers can discover the product resource
func Index(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Info("Request for base URL")

	return c.JSON(http.StatusOK, echo.Map{
		"name":    "Product REST API Service",
		"version": "1.0",
		"paths":   "/products",
	})
}

// Health answers liveness probes
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":  http.StatusOK,
		"message": "OK",
	})
}
