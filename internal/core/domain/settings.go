package domain

import "time"

const (
	// DefaultHTTPTimeout bounds a single index fetch over HTTP.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultUserAgent is sent with HTTP fetches.
	DefaultUserAgent = "blogsearch"

	// DefaultServerAddr is the listen address for the HTTP API.
	DefaultServerAddr = ":8080"
)

// Settings holds application configuration.
type Settings struct {
	// SourceURI locates the index document.
	SourceURI string

	// HTTPTimeout bounds HTTP fetches.
	HTTPTimeout time.Duration

	// UserAgent is sent with HTTP fetches.
	UserAgent string

	// RetryInterval is the minimum gap between reload attempts after a
	// failed load. Zero retries on every demand.
	RetryInterval time.Duration

	// GitHubToken authenticates github:// fetches. Optional.
	GitHubToken string

	// ServerAddr is the HTTP API listen address.
	ServerAddr string
}

// DefaultSettings returns settings with defaults applied.
func DefaultSettings() Settings {
	return Settings{
		HTTPTimeout: DefaultHTTPTimeout,
		UserAgent:   DefaultUserAgent,
		ServerAddr:  DefaultServerAddr,
	}
}

// Validate checks the settings are usable for loading an index.
func (s Settings) Validate() error {
	if s.SourceURI == "" {
		return ErrNoSource
	}
	if s.HTTPTimeout < 0 || s.RetryInterval < 0 {
		return ErrInvalidInput
	}
	return nil
}
