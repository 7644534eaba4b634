package assemblyline

import (
	"flag"
	"testing"
	"time"
)

func TestParseConfig_Defaults(t *testing.T) {
	fs := flag.NewFlagSet("assembly", flag.ContinueOnError)

	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	want := Config{Items: 5, Primaries: 1, Secondaries: 2, Inspectors: 1, LogLevel: "info", LogFormat: "text"}
	if cfg != want {
		t.Fatalf("config = %+v, want %+v", cfg, want)
	}
}

func TestParseConfig_EnvThenFlags(t *testing.T) {
	fs := flag.NewFlagSet("assembly", flag.ContinueOnError)
	t.Setenv("ASSEMBLY_ITEMS", "12")
	t.Setenv("ASSEMBLY_SECONDARIES", "4")
	t.Setenv("ASSEMBLY_MAX_DELAY", "3ms")

	cfg, err := ParseConfig(fs, []string{"-items", "7", "-log-format", "json"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Items != 7 {
		t.Fatalf("items = %d, want 7", cfg.Items)
	}
	if cfg.Secondaries != 4 {
		t.Fatalf("secondaries = %d, want 4", cfg.Secondaries)
	}
	if cfg.MaxDelay != 3*time.Millisecond {
		t.Fatalf("max delay = %s, want 3ms", cfg.MaxDelay)
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("log format = %q, want %q", cfg.LogFormat, "json")
	}
}

func TestParseConfig_BadEnv(t *testing.T) {
	fs := flag.NewFlagSet("assembly", flag.ContinueOnError)
	t.Setenv("ASSEMBLY_ITEMS", "many")

	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected env parse error")
	}
}

func TestParseConfig_RejectsPositionalArgs(t *testing.T) {
	fs := flag.NewFlagSet("assembly", flag.ContinueOnError)

	if _, err := ParseConfig(fs, []string{"5"}); err == nil {
		t.Fatal("expected error for positional argument")
	}
}

func TestParseConfig_RejectsNegativeDelay(t *testing.T) {
	fs := flag.NewFlagSet("assembly", flag.ContinueOnError)

	if _, err := ParseConfig(fs, []string{"-max-delay", "-1ms"}); err == nil {
		t.Fatal("expected error for negative delay")
	}
}

func TestParseConfig_RequiresFlagSet(t *testing.T) {
	if _, err := ParseConfig(nil, nil); err == nil {
		t.Fatal("expected error for nil flag set")
	}
}
