package config

import (
	"os"
	"time"
)

const (
	// DefaultEndpoint is the public base URL of the generative language API.
	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout bounds a single listing request.
	DefaultTimeout = 30 * time.Second
)

// Config holds the settings for a model listing run.
type Config struct {
	APIKey   string
	Endpoint string
	Timeout  time.Duration
}

// Load builds a Config from the environment. GOOGLE_API_KEY takes precedence
// over GEMINI_API_KEY; if neither is set the key stays empty and the API
// answers the unauthenticated request however it sees fit. WAKEUP_ENDPOINT
// overrides the base URL, mainly for pointing the tool at a local mock or a
// self-hosted proxy.
func Load() *Config {
	key := os.Getenv("GOOGLE_API_KEY")
	if key == "" {
		key = os.Getenv("GEMINI_API_KEY")
	}

	endpoint := os.Getenv("WAKEUP_ENDPOINT")
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	return &Config{
		APIKey:   key,
		Endpoint: endpoint,
		Timeout:  DefaultTimeout,
	}
}
