package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("overrides from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-d", "/tmp/flag.db", "-s", "flag-secret", "-l", "300ms"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, "/tmp/flag.db", cfg.DatabaseDSN)
		assert.Equal(t, "flag-secret", cfg.SessionSecret)
		assert.Equal(t, 300*time.Millisecond, cfg.SimulatedLatency)
	})

	t.Run("keeps defaults without flags", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, "portal.db", cfg.DatabaseDSN)
		assert.Equal(t, time.Duration(0), cfg.SimulatedLatency)
	})

	t.Run("unknown flags are ignored", func(t *testing.T) {
		os.Args = []string{"testbin", "-x", "1", "-d", "/tmp/x.db"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, "/tmp/x.db", cfg.DatabaseDSN)
	})
}
