// Package constants holds configuration values shared across layers.
package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Redirect state drivers
const (
	StateDriverRedis  = "redis"
	StateDriverMemory = "memory"
)

// Link defaults
const (
	DefaultMaxPasswordRetryCount = 3
	DefaultSettleDelayMillis     = 2000
)
