package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultFeedProvider       = "postgres"
	defaultFeedChannel        = "alert_inserts"
	defaultDebounceProvider   = "memory"
	defaultDebounceWindow     = 5000 * time.Millisecond
	defaultGatewayTopicPrefix = "guardian/devices"
	defaultGatewayTimeout     = 10 * time.Second
	defaultRedisKeyPrefix     = "guardian"
	defaultSweepSpec          = "@every 30s"
	defaultPushBurst          = 10
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Pipeline configuration for the alert dispatcher
	Pipeline *PipelineConfig `json:"pipeline" yaml:"pipeline"`

	// Feed configuration for the alert change feed
	Feed *FeedConfig `json:"feed" yaml:"feed"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Gateway configuration for the MQTT device gateway
	Gateway *GatewayConfig `json:"gateway" yaml:"gateway"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Debounce *DebounceConfig `json:"debounce" yaml:"debounce"`

	// Escalation configuration for undeliverable critical alerts
	Escalation *EscalationConfig `json:"escalation" yaml:"escalation"`

	Housekeeping *HousekeepingConfig `json:"housekeeping" yaml:"housekeeping"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PipelineConfig defines who the dispatcher is running for
type PipelineConfig struct {
	// Caregiver user whose devices receive local notifications and haptics
	PrincipalID string `json:"principalId" yaml:"principalId"`

	// Also push to every caregiver assigned to the alert subject
	FanOutToCaregivers bool `json:"fanOutToCaregivers" yaml:"fanOutToCaregivers"`
}

// FeedConfig defines the alert change feed source
type FeedConfig struct {
	// Provider type: "postgres", "google", "kafka" or "push"
	Provider string `json:"provider" yaml:"provider"`

	Postgres PostgresFeedConfig `json:"postgres" yaml:"postgres"`
	Google   GoogleFeedConfig   `json:"google" yaml:"google"`
	Kafka    KafkaFeedConfig    `json:"kafka" yaml:"kafka"`
	Push     PushFeedConfig     `json:"push" yaml:"push"`
}

// PostgresFeedConfig defines LISTEN/NOTIFY settings
type PostgresFeedConfig struct {
	DSN                  string        `json:"dsn" yaml:"dsn"`
	Channel              string        `json:"channel" yaml:"channel"`
	MinReconnectInterval time.Duration `json:"minReconnectInterval" yaml:"minReconnectInterval"`
	MaxReconnectInterval time.Duration `json:"maxReconnectInterval" yaml:"maxReconnectInterval"`
}

// GoogleFeedConfig defines the Pub/Sub subscription to pull from
type GoogleFeedConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	SubscriptionID  string `json:"subscriptionId" yaml:"subscriptionId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// KafkaFeedConfig defines the consumer group settings
type KafkaFeedConfig struct {
	Brokers []string `json:"brokers" yaml:"brokers"`
	Topic   string   `json:"topic" yaml:"topic"`
	GroupID string   `json:"groupId" yaml:"groupId"`
}

// PushFeedConfig defines how pushed events are authenticated
type PushFeedConfig struct {
	// Expected OIDC audience, defaults to the request URL
	Audience string `json:"audience" yaml:"audience"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// Multicast calls per second, zero disables throttling
	RatePerSecond float64 `json:"ratePerSecond" yaml:"ratePerSecond"`
	Burst         int     `json:"burst" yaml:"burst"`
}

// GatewayConfig defines the MQTT broker the device gateway talks to
type GatewayConfig struct {
	Enabled        bool          `json:"enabled" yaml:"enabled"`
	Broker         string        `json:"broker" yaml:"broker"`
	ClientID       string        `json:"clientId" yaml:"clientId"`
	Username       string        `json:"username" yaml:"username"`
	Password       string        `json:"password" yaml:"password"`
	TopicPrefix    string        `json:"topicPrefix" yaml:"topicPrefix"`
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
}

type RedisConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// DebounceConfig defines the duplicate suppression window
type DebounceConfig struct {
	// Provider type: "memory" or "redis"
	Provider string        `json:"provider" yaml:"provider"`
	Window   time.Duration `json:"window" yaml:"window"`
}

type EscalationConfig struct {
	// gocloud.dev topic URL, e.g. mem://escalations or gcppubsub://projects/p/topics/t
	TopicURL string `json:"topicUrl" yaml:"topicUrl"`
}

type HousekeepingConfig struct {
	SweepSpec string `json:"sweepSpec" yaml:"sweepSpec"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Example: FEED_POSTGRES_DSN -> feed.postgres.dsn, GATEWAY_TOPICPREFIX -> gateway.topicPrefix
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills optional sections so consumers never see nil pointers
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Pipeline == nil {
		cfg.Pipeline = &PipelineConfig{}
	}

	if cfg.Feed == nil {
		cfg.Feed = &FeedConfig{}
	}
	if cfg.Feed.Provider == "" {
		cfg.Feed.Provider = defaultFeedProvider
	}
	if cfg.Feed.Postgres.Channel == "" {
		cfg.Feed.Postgres.Channel = defaultFeedChannel
	}
	if cfg.Feed.Postgres.MinReconnectInterval <= 0 {
		cfg.Feed.Postgres.MinReconnectInterval = 10 * time.Second
	}
	if cfg.Feed.Postgres.MaxReconnectInterval < cfg.Feed.Postgres.MinReconnectInterval {
		cfg.Feed.Postgres.MaxReconnectInterval = time.Minute
	}

	if cfg.Firebase == nil {
		cfg.Firebase = &FirebaseConfig{}
	}
	if cfg.Firebase.Burst <= 0 {
		cfg.Firebase.Burst = defaultPushBurst
	}

	if cfg.Gateway == nil {
		cfg.Gateway = &GatewayConfig{}
	}
	if cfg.Gateway.TopicPrefix == "" {
		cfg.Gateway.TopicPrefix = defaultGatewayTopicPrefix
	}
	cfg.Gateway.TopicPrefix = strings.TrimSuffix(cfg.Gateway.TopicPrefix, "/")
	if cfg.Gateway.RequestTimeout <= 0 {
		cfg.Gateway.RequestTimeout = defaultGatewayTimeout
	}

	if cfg.Redis == nil {
		cfg.Redis = &RedisConfig{}
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = defaultRedisKeyPrefix
	}

	if cfg.Debounce == nil {
		cfg.Debounce = &DebounceConfig{}
	}
	if cfg.Debounce.Provider == "" {
		cfg.Debounce.Provider = defaultDebounceProvider
	}
	if cfg.Debounce.Window <= 0 {
		cfg.Debounce.Window = defaultDebounceWindow
	}

	if cfg.Escalation == nil {
		cfg.Escalation = &EscalationConfig{}
	}

	if cfg.Housekeeping == nil {
		cfg.Housekeeping = &HousekeepingConfig{}
	}
	if cfg.Housekeeping.SweepSpec == "" {
		cfg.Housekeeping.SweepSpec = defaultSweepSpec
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from POSTGRES_REPLICAS_{index}_{field} variables.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
