// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider selection for the login-code mail dispatch channel.
const (
	// PubSubProviderGoogle publishes to a Google Cloud Pub/Sub topic.
	PubSubProviderGoogle = "google"
	// PubSubProviderLocal POSTs push-formatted messages to a local HTTP
	// endpoint, simulating Pub/Sub push delivery during development.
	PubSubProviderLocal = "local"
)
