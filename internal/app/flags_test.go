package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("pong", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-seed", "7", "-tps", "120", "-set", "score_limit=3", "-set", "paddle_speed=500", "-fixed-step"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Seed != 7 || cfg.TPS != 120 || !cfg.FixedStep {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	gc, err := cfg.GameConfig()
	if err != nil {
		t.Fatalf("GameConfig: %v", err)
	}
	if gc.ScoreLimit != 3 || gc.PaddleSpeed != 500 {
		t.Fatalf("overrides not applied: %+v", gc)
	}
}

func TestMaxDeltaFlag(t *testing.T) {
	cfg := NewConfig()
	gc, err := cfg.GameConfig()
	if err != nil {
		t.Fatalf("GameConfig: %v", err)
	}
	if gc.MaxDelta != 0 {
		t.Fatalf("default max delta = %f, want uncapped", gc.MaxDelta)
	}

	fs := flag.NewFlagSet("pong", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-max-delta", "0.25"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	gc, err = cfg.GameConfig()
	if err != nil {
		t.Fatalf("GameConfig: %v", err)
	}
	if gc.MaxDelta != 0.25 {
		t.Fatalf("max delta = %f, want 0.25", gc.MaxDelta)
	}
}

func TestGameConfigLayering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.toml")
	if err := os.WriteFile(path, []byte("score_limit = 5\nextended_limit = 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig()
	cfg.ConfigFile = path
	cfg.Overrides = KVList{"score_limit=4"}
	gc, err := cfg.GameConfig()
	if err != nil {
		t.Fatalf("GameConfig: %v", err)
	}
	if gc.ScoreLimit != 4 || gc.ExtendedLimit != 6 {
		t.Fatalf("layering wrong: limit=%d extended=%d", gc.ScoreLimit, gc.ExtendedLimit)
	}
}

func TestGameConfigErrors(t *testing.T) {
	cases := []KVList{
		{"score_limit"},
		{"=3"},
		{"spin=2"},
		{"width=0"},
	}
	for _, overrides := range cases {
		cfg := NewConfig()
		cfg.Overrides = overrides
		if _, err := cfg.GameConfig(); err == nil {
			t.Fatalf("overrides %v: expected error", overrides)
		}
	}
}
