package gateway

import (
	"context"
	"encoding/json"
	"strings"

	"guardian/internal/domain/entity"
	"guardian/internal/domain/service"
	"guardian/internal/errors"
)

type permissionResult struct {
	Granted bool   `json:"granted"`
	Receive string `json:"receive"`
}

type registration struct {
	Token string `json:"token"`
	Error string `json:"error"`
}

// Registrar obtains push tokens from native devices.
type Registrar struct {
	client *Client
}

// NewRegistrar returns the native push registrar.
func NewRegistrar(client *Client) *Registrar {
	return &Registrar{client: client}
}

var _ service.PushRegistrar = (*Registrar)(nil)

func (r *Registrar) IsAvailable(ctx context.Context, userID string) bool {
	return r.client.AwaitCapabilities(ctx, userID).Has(entity.FeaturePushNotifications)
}

func (r *Registrar) RequestPermission(ctx context.Context, userID string) (bool, error) {
	rep, err := r.client.request(ctx,
		r.client.topic(userID, topicPermissionRequest),
		struct{}{},
		r.client.topic(userID, topicPermissionResult),
	)
	if err != nil {
		return false, err
	}

	var result permissionResult
	if err := json.Unmarshal(rep.payload, &result); err != nil {
		return false, errors.Wrap(err, "decode permission result")
	}

	return result.Granted || strings.EqualFold(result.Receive, "granted"), nil
}

func (r *Registrar) Register(ctx context.Context, userID string) (string, error) {
	rep, err := r.client.request(ctx,
		r.client.topic(userID, topicRegister),
		struct{}{},
		r.client.topic(userID, topicRegistration),
		r.client.topic(userID, topicRegistrationFailure),
	)
	if err != nil {
		return "", err
	}

	var reg registration
	if err := json.Unmarshal(rep.payload, &reg); err != nil {
		return "", errors.Wrap(err, "decode registration")
	}

	if strings.HasSuffix(rep.topic, topicRegistrationFailure) {
		return "", errors.Errorf("device registration failed: %s", reg.Error)
	}
	if strings.TrimSpace(reg.Token) == "" {
		return "", errors.New("device registration returned empty token")
	}

	return reg.Token, nil
}

func (r *Registrar) DeviceInfo(_ context.Context, userID string) entity.DeviceInfo {
	return r.client.Capabilities(userID).Info()
}
