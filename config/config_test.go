package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"gateway": map[string]any{
			"topicPrefix": "",
		},
		"feed": map[string]any{
			"postgres": map[string]any{
				"dsn": "",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "GATEWAY_TOPICPREFIX", want: "gateway.topicPrefix"},
		{envKey: "FEED_POSTGRES_DSN", want: "feed.postgres.dsn"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Pipeline)
	assert.Equal(t, "postgres", cfg.Feed.Provider)
	assert.Equal(t, "alert_inserts", cfg.Feed.Postgres.Channel)
	assert.Equal(t, "memory", cfg.Debounce.Provider)
	assert.Equal(t, 5*time.Second, cfg.Debounce.Window)
	assert.Equal(t, "guardian/devices", cfg.Gateway.TopicPrefix)
	assert.Equal(t, 10*time.Second, cfg.Gateway.RequestTimeout)
	assert.Equal(t, "guardian", cfg.Redis.KeyPrefix)
	assert.Equal(t, "@every 30s", cfg.Housekeeping.SweepSpec)
	assert.Equal(t, defaultPushBurst, cfg.Firebase.Burst)
	require.NotNil(t, cfg.Escalation)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Debounce: &DebounceConfig{Provider: "redis", Window: 2 * time.Second},
		Gateway:  &GatewayConfig{TopicPrefix: "care/devices/"},
		Feed:     &FeedConfig{Provider: "kafka"},
	}
	applyDefaults(cfg)

	assert.Equal(t, "redis", cfg.Debounce.Provider)
	assert.Equal(t, 2*time.Second, cfg.Debounce.Window)
	assert.Equal(t, "care/devices", cfg.Gateway.TopicPrefix)
	assert.Equal(t, "kafka", cfg.Feed.Provider)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlContent := []byte(`
env:
  env: develop
  serviceName: guardian
feed:
  provider: postgres
  kafka:
    brokers: []
debounce:
  window: 5s
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "testcfg.yaml"), yamlContent, 0o600))

	t.Chdir(dir)
	t.Setenv("FEED_PROVIDER", "kafka")
	t.Setenv("FEED_KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("DEBOUNCE_WINDOW", "750ms")

	cfg, err := LoadWithEnv[Config]("testcfg")
	require.NoError(t, err)

	assert.Equal(t, "guardian", cfg.Env.ServiceName)
	require.NotNil(t, cfg.Feed)
	assert.Equal(t, "kafka", cfg.Feed.Provider)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Feed.Kafka.Brokers)
	assert.Equal(t, 750*time.Millisecond, cfg.Debounce.Window)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
