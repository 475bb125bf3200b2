package handler

import (
	"log/slog"
	"net/http"

	"guardian/internal/delivery/api/response"
	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/errors"
	"guardian/internal/infra/web"

	"github.com/labstack/echo/v4"
)

// WebSessionHandler records what a caregiver's browser can do.
type WebSessionHandler struct {
	store  *web.Store
	logger *slog.Logger
}

func NewWebSessionHandler(store *web.Store, logger *slog.Logger) *WebSessionHandler {
	return &WebSessionHandler{store: store, logger: logger}
}

// SaveSession stores the notification permission and vibration support the browser reported.
func (h *WebSessionHandler) SaveSession(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req web.SessionState
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid web session input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.store.SaveState(c.Request().Context(), userID, req); err != nil {
		if errors.Is(err, web.ErrUnavailable) {
			return response.ServiceUnavailable(c, "WEB_DELIVERY_UNAVAILABLE", "Web delivery is not configured")
		}

		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Error("Failed to save web session", slog.String("user_id", userID), slog.Any("error", err))

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, req)
}
