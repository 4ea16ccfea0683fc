package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Catalog event types
const (
	SkuEventCreated = "sku.created"
	SkuEventUpdated = "sku.updated"
	SkuEventDeleted = "sku.deleted"
)

// Deployment environments
const (
	EnvLocal   = "local"
	EnvDevelop = "develop"
)
