package handler

import (
	"net/http"

	"guardian/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
