// Package constants contains values shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvLocal      = "local"
	EnvProduction = "production"
)

// Pub/Sub providers for the task relay.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Task dispatch modes.
const (
	TaskModeInline = "inline"
	TaskModePubSub = "pubsub"
)

// fx names of the cache instances.
const (
	CacheUser     = "userCache"
	CacheBusiness = "businessCache"
	CacheSearch   = "searchCache"
	CacheStats    = "statsCache"
)
