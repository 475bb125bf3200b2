package middleware

import (
	"log/slog"
	"strings"

	"guardian/internal/delivery/api/response"
	deliverycontext "guardian/internal/delivery/context"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates caregivers by their access token.
type AuthMiddleware struct {
	verifier service.TokenVerifier
	logger   *slog.Logger
}

func NewAuthMiddleware(verifier service.TokenVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate rejects requests without a valid bearer token and stores the
// token subject as the user id.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || strings.TrimSpace(tokenString) == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		userID, err := m.verifier.Verify(strings.TrimSpace(tokenString))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}
