package app

import (
	"flag"
	"fmt"
	"strings"

	"pong/internal/game"
	"pong/internal/logging"
)

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigFile string
	Seed       int64
	TPS        int
	Scale      float64
	FixedStep  bool
	// MaxDelta, when positive, caps each frame's time step in seconds.
	MaxDelta   float64
	LogFile    string
	LogLevel   string
	Overrides  KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Seed: 42, TPS: 60, Scale: 1, LogLevel: "info"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "TOML file with game tuning")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for serve and bounce direction draws")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.BoolVar(&c.FixedStep, "fixed-step", c.FixedStep, "advance by 1/tps per tick instead of measured wall time")
	fs.Float64Var(&c.MaxDelta, "max-delta", c.MaxDelta, "cap on a single frame's time step in seconds (0 disables)")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "rotated log file (stderr when empty)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.Var(&c.Overrides, "set", "game config override in key=value form (repeatable)")
}

// GameConfig resolves defaults, the optional config file, -max-delta and -set
// overrides into a validated game configuration.
func (c *Config) GameConfig() (game.Config, error) {
	cfg := game.DefaultConfig()
	if c.ConfigFile != "" {
		loaded, err := cfg.LoadFile(c.ConfigFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if c.MaxDelta > 0 {
		cfg.MaxDelta = c.MaxDelta
	}
	overrides, err := c.Overrides.Map()
	if err != nil {
		return cfg, err
	}
	cfg, err = cfg.FromMap(overrides)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// LogOptions returns the logger settings selected on the command line.
func (c *Config) LogOptions() logging.Options {
	return logging.Options{File: c.LogFile, Level: c.LogLevel}
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits each entry on its first '='.
func (l KVList) Map() (map[string]string, error) {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("override %q: want key=value", kv)
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out, nil
}
