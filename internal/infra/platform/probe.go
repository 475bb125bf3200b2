// Package platform decides at startup which device-side implementations
// serve local notifications, haptics and push registration.
package platform

import (
	"context"
	"log/slog"

	"guardian/internal/domain/entity"
	"guardian/internal/domain/service"
	"guardian/internal/errors"
	"guardian/internal/infra/gateway"
	"guardian/internal/infra/web"

	"go.uber.org/fx"
)

// ErrRegistrationUnsupported is returned by the registrar used without a device gateway.
var ErrRegistrationUnsupported = errors.New("push registration requires the device gateway")

// Params defines the required parameters
type Params struct {
	fx.In

	Logger  *slog.Logger
	Gateway *gateway.Client
	Web     *web.Store
}

// Result lists implementations in preference order, native first.
type Result struct {
	fx.Out

	Notifiers []service.LocalNotifier
	Haptics   []service.HapticsProvider
	Registrar service.PushRegistrar
}

// Probe builds the capability set for this process.
func Probe(params Params) Result {
	var res Result

	if params.Gateway != nil && params.Gateway.Enabled() {
		res.Notifiers = append(res.Notifiers, gateway.NewNotifier(params.Gateway))
		res.Haptics = append(res.Haptics, gateway.NewHaptics(params.Gateway))
		res.Registrar = gateway.NewRegistrar(params.Gateway)
	} else {
		res.Registrar = noopRegistrar{}
	}

	if params.Web != nil {
		res.Notifiers = append(res.Notifiers, web.NewNotifier(params.Web))
		res.Haptics = append(res.Haptics, web.NewHaptics(params.Web))
	}

	params.Logger.Info("[Platform] Delivery capabilities probed",
		slog.Int("notifiers", len(res.Notifiers)),
		slog.Int("haptics", len(res.Haptics)),
		slog.Bool("native_registration", params.Gateway != nil && params.Gateway.Enabled()),
	)

	return res
}

type noopRegistrar struct{}

func (noopRegistrar) IsAvailable(context.Context, string) bool { return false }

func (noopRegistrar) RequestPermission(context.Context, string) (bool, error) {
	return false, ErrRegistrationUnsupported
}

func (noopRegistrar) Register(context.Context, string) (string, error) {
	return "", ErrRegistrationUnsupported
}

func (noopRegistrar) DeviceInfo(context.Context, string) entity.DeviceInfo {
	return entity.DeviceInfo{}
}
