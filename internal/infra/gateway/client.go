// Package gateway talks to caregiver devices through an MQTT broker. Devices
// announce their capabilities on a retained topic and accept local
// notifications, vibration patterns and push registration requests.
package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"guardian/config"
	"guardian/internal/domain/entity"
	"guardian/internal/domain/lifecycle"
	"guardian/internal/errors"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/fx"
)

const (
	qosAtLeastOnce    byte = 1
	disconnectQuiesce uint = 250
	capabilitySettle       = 2 * time.Second
)

// Topic suffixes below {prefix}/{userID}/
const (
	topicCapabilities        = "capabilities"
	topicChannels            = "notifications/channels"
	topicSchedule            = "notifications/schedule"
	topicVibrate             = "haptics/vibrate"
	topicPermissionRequest   = "push/permission/request"
	topicPermissionResult    = "push/permission/result"
	topicRegister            = "push/register"
	topicRegistration        = "push/registration"
	topicRegistrationFailure = "push/registration-error"
)

// ErrDisabled is returned by every call when the gateway is not configured.
var ErrDisabled = errors.New("device gateway disabled")

type reply struct {
	topic   string
	payload []byte
}

// Client is the shared MQTT session used by the native notifier, haptics and registrar.
type Client struct {
	mqtt    mqtt.Client
	prefix  string
	timeout time.Duration
	logger  *slog.Logger

	mu      sync.RWMutex
	devices map[string]*entity.DeviceCapabilities
	waiters map[string][]chan reply
}

// Params defines the dependencies of the gateway client
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the gateway client and ties its connection to the fx lifecycle.
// A disabled gateway yields a client whose devices never report capabilities.
func New(params Params) *Client {
	cfg := params.Config.Gateway
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("[Gateway] Device gateway disabled")

		return newClient(nil, "", 0, params.Logger)
	}

	c := newClient(nil, cfg.TopicPrefix, cfg.RequestTimeout, params.Logger)

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)
	opts.SetOnConnectHandler(func(_ mqtt.Client) {
		// Subscriptions do not survive a clean-session reconnect.
		if err := c.subscribe(); err != nil {
			c.logger.Error("[Gateway] Failed to subscribe after connect", slog.Any("error", err))
		}
	})
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		c.logger.Warn("[Gateway] Connection lost", slog.Any("error", err))
	})

	c.mqtt = mqtt.NewClient(opts)

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			token := c.mqtt.Connect()
			if !token.WaitTimeout(lifecycle.DefaultTimeout) {
				return errors.New("timed out connecting to MQTT broker")
			}
			if err := token.Error(); err != nil {
				return errors.Wrap(err, "failed to connect to MQTT broker")
			}

			c.logger.Info("[Gateway] Connected", slog.String("broker", cfg.Broker))

			return nil
		},
		OnStop: func(context.Context) error {
			c.mqtt.Disconnect(disconnectQuiesce)

			return nil
		},
	})

	return c
}

func newClient(client mqtt.Client, prefix string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		mqtt:    client,
		prefix:  prefix,
		timeout: timeout,
		logger:  logger,
		devices: make(map[string]*entity.DeviceCapabilities),
		waiters: make(map[string][]chan reply),
	}
}

// Enabled reports whether a broker session exists.
func (c *Client) Enabled() bool {
	return c.mqtt != nil
}

func (c *Client) subscribe() error {
	filters := map[string]byte{
		c.prefix + "/+/" + topicCapabilities: qosAtLeastOnce,
		c.prefix + "/+/push/#":               qosAtLeastOnce,
	}

	token := c.mqtt.SubscribeMultiple(filters, func(_ mqtt.Client, msg mqtt.Message) {
		c.handleMessage(msg.Topic(), msg.Payload())
	})
	if !token.WaitTimeout(c.timeout) {
		return errors.New("timed out subscribing to device topics")
	}

	return errors.WithStack(token.Error())
}

// handleMessage routes device traffic: capability announcements update the
// device table, everything else wakes the request waiting for it.
func (c *Client) handleMessage(topic string, payload []byte) {
	userID, suffix, ok := c.splitTopic(topic)
	if !ok {
		return
	}

	if suffix == topicCapabilities {
		c.storeCapabilities(userID, payload)
	}

	c.mu.Lock()
	waiters := c.waiters[topic]
	delete(c.waiters, topic)
	c.mu.Unlock()

	for _, ch := range waiters {
		ch <- reply{topic: topic, payload: payload}
	}
}

func (c *Client) storeCapabilities(userID string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// An empty retained payload clears the announcement.
	if len(payload) == 0 {
		delete(c.devices, userID)

		return
	}

	var caps entity.DeviceCapabilities
	if err := json.Unmarshal(payload, &caps); err != nil {
		c.logger.Warn("[Gateway] Ignoring malformed capabilities",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)

		return
	}

	c.devices[userID] = &caps
}

func (c *Client) splitTopic(topic string) (userID, suffix string, ok bool) {
	rest, found := strings.CutPrefix(topic, c.prefix+"/")
	if !found {
		return "", "", false
	}

	userID, suffix, ok = strings.Cut(rest, "/")
	if !ok || userID == "" {
		return "", "", false
	}

	return userID, suffix, true
}

func (c *Client) topic(userID, suffix string) string {
	return c.prefix + "/" + userID + "/" + suffix
}

// Capabilities returns the last announcement of the user's device, nil if none.
func (c *Client) Capabilities(userID string) *entity.DeviceCapabilities {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.devices[userID]
}

// AwaitCapabilities is Capabilities but waits briefly for the retained
// announcement when the session has only just subscribed.
func (c *Client) AwaitCapabilities(ctx context.Context, userID string) *entity.DeviceCapabilities {
	if !c.Enabled() {
		return nil
	}
	if caps := c.Capabilities(userID); caps != nil {
		return caps
	}

	ch := c.await(c.topic(userID, topicCapabilities))
	defer c.cancelWait(ch)

	settleCtx, cancel := context.WithTimeout(ctx, min(c.timeout, capabilitySettle))
	defer cancel()

	select {
	case <-ch:
	case <-settleCtx.Done():
	}

	return c.Capabilities(userID)
}

func (c *Client) publish(topic string, retained bool, v any) error {
	if !c.Enabled() {
		return ErrDisabled
	}

	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshal gateway payload")
	}

	token := c.mqtt.Publish(topic, qosAtLeastOnce, retained, data)
	if !token.WaitTimeout(c.timeout) {
		return errors.Errorf("timed out publishing to %s", topic)
	}

	return errors.Wrapf(token.Error(), "publish to %s", topic)
}

// request publishes to requestTopic and waits for the first message on any replyTopic.
func (c *Client) request(ctx context.Context, requestTopic string, payload any, replyTopics ...string) (reply, error) {
	if !c.Enabled() {
		return reply{}, ErrDisabled
	}

	ch := c.await(replyTopics...)
	defer c.cancelWait(ch)

	if err := c.publish(requestTopic, false, payload); err != nil {
		return reply{}, err
	}

	waitCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	select {
	case r := <-ch:
		return r, nil
	case <-waitCtx.Done():
		return reply{}, errors.Wrapf(waitCtx.Err(), "no reply to %s", requestTopic)
	}
}

func (c *Client) await(topics ...string) chan reply {
	ch := make(chan reply, len(topics))

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, t := range topics {
		c.waiters[t] = append(c.waiters[t], ch)
	}

	return ch
}

func (c *Client) cancelWait(ch chan reply) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for t, list := range c.waiters {
		kept := list[:0]
		for _, w := range list {
			if w != ch {
				kept = append(kept, w)
			}
		}
		if len(kept) == 0 {
			delete(c.waiters, t)
		} else {
			c.waiters[t] = kept
		}
	}
}
