package driving

import "github.com/custodia-labs/blogsearch/internal/core/domain"

// SettingsService resolves application settings from configuration.
type SettingsService interface {
	// Resolve returns the effective settings. A non-empty sourceOverride
	// replaces the configured index source.
	Resolve(sourceOverride string) (domain.Settings, error)

	// Set stores one configuration key.
	Set(key, value string) error

	// All returns every configured key with its value.
	All() map[string]any
}
