package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/blogsearch/internal/logger"
)

const testIndex = `<?xml version="1.0" encoding="utf-8"?>
<search>
  <entry>
    <title>Hello World</title>
    <url>/a</url>
    <content type="html"><![CDATA[<p>this is a test about cats and dogs</p>]]></content>
  </entry>
  <entry>
    <title>Cat Care</title>
    <url>/cat-care/</url>
    <content type="html"><![CDATA[<p>feeding schedules</p>]]></content>
  </entry>
</search>`

// testEnv is a temporary config file and index document.
type testEnv struct {
	dir    string
	config string
	index  string
}

func setupTest(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	env := &testEnv{
		dir:    dir,
		config: filepath.Join(dir, "config.toml"),
		index:  filepath.Join(dir, "search.xml"),
	}
	require.NoError(t, os.WriteFile(env.index, []byte(testIndex), 0o600))
	return env
}

// captureLog redirects the log sink for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	logger.SetOutput(buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	return buf
}

// executeCommand runs the root command with args and returns its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeCommandContext(t, context.Background(), args...)
}

func executeCommandContext(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		// cobra only hands the root context to a subcommand whose context
		// is still nil, so clear it for the next execution.
		for _, c := range rootCmd.Commands() {
			c.SetContext(nil) //nolint:staticcheck
		}
		resetFlags()
	})

	err := rootCmd.ExecuteContext(ctx)
	return buf.String(), err
}

func resetFlags() {
	configPath, sourceFlag, verbose = "", "", false
	searchLimit, searchJSON = 0, false
	statsJSON = false
	serveAddr, serveWatch = "", false
	tuiOpen = false
	logger.SetVerbose(false)
}
