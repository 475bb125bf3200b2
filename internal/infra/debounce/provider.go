package debounce

import (
	"log/slog"

	"guardian/config"
	"guardian/internal/domain/constants"
	"guardian/internal/domain/service"
	"guardian/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Redis  *redis.Client `optional:"true"`
}

// New selects the debouncer from configuration.
func New(params Params) (service.Debouncer, error) {
	cfg := params.Config.Debounce

	switch cfg.Provider {
	case constants.DebounceProviderMemory:
		params.Logger.Info("[Debounce] Using in-memory debouncer", slog.Duration("window", cfg.Window))

		return NewMemory(cfg.Window), nil

	case constants.DebounceProviderRedis:
		if params.Redis == nil {
			params.Logger.Warn("[Debounce] Redis disabled, falling back to in-memory debouncer")

			return NewMemory(cfg.Window), nil
		}
		params.Logger.Info("[Debounce] Using Redis debouncer", slog.Duration("window", cfg.Window))

		return NewRedis(params.Redis, params.Config.Redis.KeyPrefix, cfg.Window, params.Logger), nil

	default:
		return nil, errors.Errorf("unsupported debounce provider: %s", cfg.Provider)
	}
}
