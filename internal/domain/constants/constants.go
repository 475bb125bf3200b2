// Package constants holds string identifiers shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Alert feed providers
const (
	FeedProviderPostgres = "postgres"
	FeedProviderGoogle   = "google"
	FeedProviderKafka    = "kafka"
	FeedProviderPush     = "push"
)

// Debounce providers
const (
	DebounceProviderMemory = "memory"
	DebounceProviderRedis  = "redis"
)
