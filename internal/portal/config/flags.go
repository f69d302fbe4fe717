package config

import (
	"flag"
	"os"
	"time"

	"github.com/aquiroz/invoiceportal/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the local sqlite database (default from Config)
//	-s string   session marker signing secret (default from Config)
//	-l string   simulated backend latency, e.g. "300ms" (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local database file")
	fs.StringVar(&cfg.SessionSecret, "s", cfg.SessionSecret, "session marker signing secret")
	latency := fs.String("l", cfg.SimulatedLatency.String(), "simulated backend latency (e.g. 300ms)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if d, err := time.ParseDuration(*latency); err == nil {
		cfg.SimulatedLatency = d
	}
}
