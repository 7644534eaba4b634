// Package assemblyline parses the assembly command's configuration and runs the
// crew against a fresh monitor.
package assemblyline

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds assembly command configuration.
type Config struct {
	Items       int           `env:"ASSEMBLY_ITEMS"       envDefault:"5"`
	Primaries   int           `env:"ASSEMBLY_PRIMARIES"   envDefault:"1"`
	Secondaries int           `env:"ASSEMBLY_SECONDARIES" envDefault:"2"`
	Inspectors  int           `env:"ASSEMBLY_INSPECTORS"  envDefault:"1"`
	MaxDelay    time.Duration `env:"ASSEMBLY_MAX_DELAY"   envDefault:"0s"`
	LogLevel    string        `env:"ASSEMBLY_LOG_LEVEL"   envDefault:"info"`
	LogFormat   string        `env:"ASSEMBLY_LOG_FORMAT"  envDefault:"text"`
}

// ParseConfig loads environment defaults, then lets flags override them.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if fs == nil {
		return Config{}, errors.New("flag parser is required")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.IntVar(&cfg.Items, "items", cfg.Items, "Number of items to build and inspect")
	fs.IntVar(&cfg.Primaries, "primaries", cfg.Primaries, "Goroutines applying the primary part")
	fs.IntVar(&cfg.Secondaries, "secondaries", cfg.Secondaries, "Goroutines applying secondary parts")
	fs.IntVar(&cfg.Inspectors, "inspectors", cfg.Inspectors, "Goroutines inspecting finished items")
	fs.DurationVar(&cfg.MaxDelay, "max-delay", cfg.MaxDelay, "Upper bound of the random pause before each step")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text or json")

	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cfg.MaxDelay < 0 {
		return Config{}, fmt.Errorf("max delay must not be negative, got %s", cfg.MaxDelay)
	}
	return cfg, nil
}
