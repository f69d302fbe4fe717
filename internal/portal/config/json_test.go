package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"database_dsn":      "/tmp/other.db",
		"session_secret":    "json-secret",
		"simulated_latency": "250ms",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "/tmp/other.db", cfg.DatabaseDSN)
		assert.Equal(t, "json-secret", cfg.SessionSecret)
		assert.Equal(t, 250*time.Millisecond, cfg.SimulatedLatency)
	})

	t.Run("no config flag leaves values untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{DatabaseDSN: "keep.db", SessionSecret: "keep"}
		parseJson(cfg)

		assert.Equal(t, "keep.db", cfg.DatabaseDSN)
		assert.Equal(t, "keep", cfg.SessionSecret)
	})

	t.Run("partial JSON only overrides present fields", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"database_dsn": "/tmp/partial.db",
		})
		os.Args = []string{"testbin", "-config", partial}

		cfg := &Config{DatabaseDSN: "keep.db", SessionSecret: "keep", SimulatedLatency: time.Second}
		parseJson(cfg)

		assert.Equal(t, "/tmp/partial.db", cfg.DatabaseDSN)
		assert.Equal(t, "keep", cfg.SessionSecret)
		assert.Equal(t, time.Second, cfg.SimulatedLatency)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
