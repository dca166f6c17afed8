package services

import (
	"fmt"
	"slices"
	"time"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
	"github.com/custodia-labs/blogsearch/internal/core/ports/driven"
	"github.com/custodia-labs/blogsearch/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyIndexSource   = "index.source"
	KeyHTTPTimeout   = "http.timeout"
	KeyUserAgent     = "http.user_agent"
	KeyRetryInterval = "loader.retry_interval"
	KeyGitHubToken   = "github.token"
	KeyServerAddr    = "server.addr"
)

var durationKeys = []string{KeyHTTPTimeout, KeyRetryInterval}

// KnownKeys lists every configuration key blogsearch reads.
func KnownKeys() []string {
	return []string{KeyIndexSource, KeyHTTPTimeout, KeyUserAgent, KeyRetryInterval, KeyGitHubToken, KeyServerAddr}
}

// SettingsService resolves application settings from the config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Resolve returns the effective settings: defaults, then the config file,
// then sourceOverride if it is non-empty.
func (s *SettingsService) Resolve(sourceOverride string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	if s.configStore != nil {
		settings.SourceURI = s.getString(KeyIndexSource, settings.SourceURI)
		settings.UserAgent = s.getString(KeyUserAgent, settings.UserAgent)
		settings.GitHubToken = s.getString(KeyGitHubToken, settings.GitHubToken)
		settings.ServerAddr = s.getString(KeyServerAddr, settings.ServerAddr)
		settings.HTTPTimeout = s.getDuration(KeyHTTPTimeout, settings.HTTPTimeout)
		settings.RetryInterval = s.getDuration(KeyRetryInterval, settings.RetryInterval)
	}

	if sourceOverride != "" {
		settings.SourceURI = sourceOverride
	}

	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}

// Set stores one configuration key after checking the key is known and,
// for durations, that the value parses.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return fmt.Errorf("config store unavailable: %w", domain.ErrInvalidInput)
	}
	if !slices.Contains(KnownKeys(), key) {
		return fmt.Errorf("unknown key %q: %w", key, domain.ErrInvalidInput)
	}
	if slices.Contains(durationKeys, key) {
		d, err := time.ParseDuration(value)
		if err != nil || d < 0 {
			return fmt.Errorf("%s must be a non-negative duration such as \"30s\": %w", key, domain.ErrInvalidInput)
		}
	}
	return s.configStore.Set(key, value)
}

// All returns every configured key with its value.
func (s *SettingsService) All() map[string]any {
	out := make(map[string]any)
	if s.configStore == nil {
		return out
	}
	for _, key := range s.configStore.Keys() {
		if v, ok := s.configStore.Get(key); ok {
			out[key] = v
		}
	}
	return out
}

func (s *SettingsService) getString(key, fallback string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return fallback
}

// getDuration treats zero, missing and unparsable values alike.
func (s *SettingsService) getDuration(key string, fallback time.Duration) time.Duration {
	if d := s.configStore.GetDuration(key); d > 0 {
		return d
	}
	return fallback
}
