package driven

import "time"

// ConfigStore provides access to application configuration.
// Keys use dot notation for nested tables, e.g. "index.source".
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetDuration retrieves a duration written as a Go duration string ("30s").
	// Returns 0 if the key doesn't exist or doesn't parse.
	GetDuration(key string) time.Duration

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Load reads configuration from storage.
	Load() error

	// Keys returns all keys in sorted order.
	Keys() []string

	// Path returns the configuration file path.
	Path() string
}
