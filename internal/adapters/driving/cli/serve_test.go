package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCmd_Flags(t *testing.T) {
	assert.NotNil(t, serveCmd.Flags().Lookup("addr"))
	flag := serveCmd.Flags().Lookup("watch")
	require.NotNil(t, flag)
	assert.Equal(t, "w", flag.Shorthand)
}

func TestServeCmd_WatchNeedsLocalSource(t *testing.T) {
	env := setupTest(t)

	_, err := executeCommand(t, "serve", "--config", env.config,
		"--source", "https://example.com/search.xml", "--watch")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--watch needs a local index source")
}

func TestServeCmd_UnsupportedScheme(t *testing.T) {
	env := setupTest(t)

	_, err := executeCommand(t, "serve", "--config", env.config, "--source", "ftp://example.com/search.xml")

	assert.Error(t, err)
}

func TestServeCmd_StopsOnCancel(t *testing.T) {
	env := setupTest(t)
	captureLog(t)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	out, err := executeCommandContext(t, ctx, "serve", "--config", env.config,
		"--source", env.index, "--addr", "127.0.0.1:0", "--watch")

	require.NoError(t, err)
	assert.Contains(t, out, "Search API listening on http://127.0.0.1:0")
}

func TestDisplayAddr(t *testing.T) {
	assert.Equal(t, "localhost:8080", displayAddr(":8080"))
	assert.Equal(t, "127.0.0.1:4001", displayAddr("127.0.0.1:4001"))
	assert.Equal(t, "", displayAddr(""))
}
