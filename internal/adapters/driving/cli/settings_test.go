package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
)

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Short key",
			input:    "abc123",
			expected: "****",
		},
		{
			name:     "Exactly 8 chars",
			input:    "12345678",
			expected: "****",
		},
		{
			name:     "Long token",
			input:    "ghp_1234567890abcdef",
			expected: "ghp_...cdef",
		},
		{
			name:     "Empty key",
			input:    "",
			expected: "****",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := maskAPIKey(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSettingsCmd_ShowDefaults(t *testing.T) {
	env := setupTest(t)

	out, err := executeCommand(t, "settings", "show", "--config", env.config)

	require.NoError(t, err)
	assert.Contains(t, out, "Source: (not set)")
	assert.Contains(t, out, "Timeout: 30s")
	assert.Contains(t, out, "User agent: blogsearch")
	assert.Contains(t, out, "Token: (not set)")
	assert.Contains(t, out, "Address: :8080")
	assert.Contains(t, out, "Config file: "+env.config)
}

func TestSettingsCmd_SetAndShow(t *testing.T) {
	env := setupTest(t)

	out, err := executeCommand(t, "settings", "set", "--config", env.config, "http.timeout", "5s")
	require.NoError(t, err)
	assert.Contains(t, out, "Set http.timeout = 5s")

	_, err = executeCommand(t, "settings", "set", "--config", env.config, "github.token", "ghp_1234567890abcdef")
	require.NoError(t, err)

	out, err = executeCommand(t, "config", "--config", env.config)
	require.NoError(t, err)
	assert.Contains(t, out, "Timeout: 5s")
	assert.Contains(t, out, "Token: ghp_...cdef")
	assert.NotContains(t, out, "ghp_1234567890abcdef")

	_, err = os.Stat(env.config)
	assert.NoError(t, err)
}

func TestSettingsCmd_SetMasksToken(t *testing.T) {
	env := setupTest(t)

	out, err := executeCommand(t, "settings", "set", "--config", env.config, "github.token", "ghp_1234567890abcdef")

	require.NoError(t, err)
	assert.Contains(t, out, "Set github.token = ghp_...cdef")
}

func TestSettingsCmd_SetUnknownKey(t *testing.T) {
	env := setupTest(t)

	_, err := executeCommand(t, "settings", "set", "--config", env.config, "search.mode", "hybrid")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "index.source")
}

func TestSettingsCmd_SetBadDuration(t *testing.T) {
	env := setupTest(t)

	_, err := executeCommand(t, "settings", "set", "--config", env.config, "http.timeout", "soon")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsCmd_Path(t *testing.T) {
	env := setupTest(t)
	path := filepath.Join(env.dir, "nested", "config.toml")

	out, err := executeCommand(t, "settings", "path", "--config", path)

	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)
}
