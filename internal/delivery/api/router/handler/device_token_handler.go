package handler

import (
	"context"
	"log/slog"
	"net/http"

	"guardian/internal/delivery/api/response"
	deliverycontext "guardian/internal/delivery/context"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/errors"
	"guardian/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceTokenHandlerParams holds dependencies for DeviceTokenHandler, injected by Fx.
type DeviceTokenHandlerParams struct {
	fx.In

	Ctx        context.Context
	RegistryUC usecase.TokenRegistryUsecase
	Logger     *slog.Logger
}

// DeviceTokenHandler exposes the device token registry to client apps.
type DeviceTokenHandler struct {
	baseCtx    context.Context
	registryUC usecase.TokenRegistryUsecase
	logger     *slog.Logger
}

func NewDeviceTokenHandler(params DeviceTokenHandlerParams) *DeviceTokenHandler {
	return &DeviceTokenHandler{
		baseCtx:    params.Ctx,
		registryUC: params.RegistryUC,
		logger:     params.Logger,
	}
}

// UpsertToken stores a push token the client app obtained itself.
func (h *DeviceTokenHandler) UpsertToken(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.RegisterTokenInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device token input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.registryUC.Upsert(c.Request().Context(), userID, &req)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidDeviceToken) {
			return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), err.Error())
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, token)
}

// ListTokens returns every token registered by the caller.
func (h *DeviceTokenHandler) ListTokens(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	tokens, err := h.registryUC.ListTokens(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tokens)
}

// RegisterOwnDevice asks the platform registrar for a fresh token on the
// caller's own device. Registration runs in the background and its outcome
// is only logged.
func (h *DeviceTokenHandler) RegisterOwnDevice(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
	ctx := deliverycontext.WithLogger(h.baseCtx, logger)
	go h.registryUC.RegisterToken(ctx, userID)

	return response.Success(c, http.StatusAccepted, map[string]string{"status": "registering"})
}
