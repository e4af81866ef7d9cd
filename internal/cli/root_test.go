package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "wordboard", cmd.Use)

	for _, name := range []string{"serve", "play"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestServeFlags(t *testing.T) {
	t.Setenv("PORT", "9999")
	cmd := NewRootCommand()
	serve, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)

	port := serve.Flags().Lookup("port")
	require.NotNil(t, port)
	assert.Equal(t, "p", port.Shorthand)
	assert.Equal(t, "9999", port.DefValue)
	assert.NotNil(t, serve.Flags().Lookup("db"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("log-level"))
}

func TestRunReportsErrorsWithLoggingOff(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	missing := filepath.Join(t.TempDir(), "missing.txt")
	var stderr bytes.Buffer
	code := Run([]string{"play", "--answers", missing, "--allowed", missing}, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "wordboard: open word list")
	assert.Equal(t, prev, zerolog.GlobalLevel())
}
