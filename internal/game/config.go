package game

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"

	"pong/internal/core"
)

// Config holds arena geometry and match tuning.
type Config struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	PaddleWidth  float64 `toml:"paddle_width"`
	PaddleHeight float64 `toml:"paddle_height"`
	// PaddleInset is the gap between an arena edge and the outer face of
	// the paddle next to it.
	PaddleInset float64 `toml:"paddle_inset"`
	PaddleSpeed float64 `toml:"paddle_speed"`

	BallSize   float64 `toml:"ball_size"`
	ServeSpeed float64 `toml:"serve_speed"`

	PointTimeout    float64 `toml:"point_timeout"`
	SpeedMultiplier float64 `toml:"speed_multiplier"`

	ScoreLimit int `toml:"score_limit"`
	// ExtendedLimit replaces ScoreLimit once both players reach DeuceScore.
	ExtendedLimit int `toml:"extended_limit"`
	DeuceScore    int `toml:"deuce_score"`

	// MaxDelta caps a single frame's time step in seconds. Zero disables
	// the cap.
	MaxDelta float64 `toml:"max_delta"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:           1200,
		Height:          600,
		PaddleWidth:     10,
		PaddleHeight:    100,
		PaddleInset:     10,
		PaddleSpeed:     300,
		BallSize:        10,
		ServeSpeed:      200,
		PointTimeout:    10,
		SpeedMultiplier: 2.5,
		ScoreLimit:      12,
		ExtendedLimit:   13,
		DeuceScore:      11,
		MaxDelta:        0,
	}
}

// Size returns the arena dimensions rounded to whole units.
func (c Config) Size() core.Size {
	return core.Size{W: int(c.Width), H: int(c.Height)}
}

// Validate reports every nonsensical setting joined into one error.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("width", c.Width)
	positive("height", c.Height)
	positive("paddle_width", c.PaddleWidth)
	positive("paddle_height", c.PaddleHeight)
	positive("paddle_speed", c.PaddleSpeed)
	positive("ball_size", c.BallSize)
	positive("serve_speed", c.ServeSpeed)
	positive("point_timeout", c.PointTimeout)
	positive("speed_multiplier", c.SpeedMultiplier)
	if !(c.MaxDelta >= 0) {
		errs = append(errs, fmt.Errorf("max_delta must not be negative, got %v", c.MaxDelta))
	}
	if c.PaddleInset < 0 {
		errs = append(errs, fmt.Errorf("paddle_inset must not be negative, got %v", c.PaddleInset))
	}
	if c.PaddleHeight > c.Height {
		errs = append(errs, fmt.Errorf("paddle_height %v exceeds arena height %v", c.PaddleHeight, c.Height))
	}
	if 2*(c.PaddleInset+c.PaddleWidth)+c.BallSize > c.Width {
		errs = append(errs, fmt.Errorf("arena width %v too narrow for paddles and ball", c.Width))
	}
	if c.ScoreLimit <= 0 {
		errs = append(errs, fmt.Errorf("score_limit must be positive, got %d", c.ScoreLimit))
	}
	if c.ExtendedLimit < c.ScoreLimit {
		errs = append(errs, fmt.Errorf("extended_limit %d below score_limit %d", c.ExtendedLimit, c.ScoreLimit))
	}
	if c.DeuceScore < 0 {
		errs = append(errs, fmt.Errorf("deuce_score must not be negative, got %d", c.DeuceScore))
	}
	return errors.Join(errs...)
}

// LoadFile overlays the TOML document at path onto c. Keys absent from the
// file keep their current values.
func (c Config) LoadFile(path string) (Config, error) {
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return c, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return c, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	return c, nil
}

// FromMap applies flag-style key/value overrides on top of c. Unknown keys
// and unparsable values are reported.
func (c Config) FromMap(cfg map[string]string) (Config, error) {
	floats := map[string]*float64{
		"width":            &c.Width,
		"height":           &c.Height,
		"paddle_width":     &c.PaddleWidth,
		"paddle_height":    &c.PaddleHeight,
		"paddle_inset":     &c.PaddleInset,
		"paddle_speed":     &c.PaddleSpeed,
		"ball_size":        &c.BallSize,
		"serve_speed":      &c.ServeSpeed,
		"point_timeout":    &c.PointTimeout,
		"speed_multiplier": &c.SpeedMultiplier,
		"max_delta":        &c.MaxDelta,
	}
	ints := map[string]*int{
		"score_limit":    &c.ScoreLimit,
		"extended_limit": &c.ExtendedLimit,
		"deuce_score":    &c.DeuceScore,
	}
	for k, v := range cfg {
		if dst, ok := floats[k]; ok {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return c, fmt.Errorf("config %s: %w", k, err)
			}
			*dst = parsed
			continue
		}
		if dst, ok := ints[k]; ok {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				return c, fmt.Errorf("config %s: %w", k, err)
			}
			*dst = parsed
			continue
		}
		return c, fmt.Errorf("config: unknown key %q", k)
	}
	return c, nil
}

// PaddleX returns the fixed left edge of the paddle on the given side.
func (c Config) PaddleX(side Side) float64 {
	if side == Left {
		return c.PaddleInset
	}
	return c.Width - c.PaddleInset - c.PaddleWidth
}

// restY is the vertically centered paddle position.
func (c Config) restY() float64 {
	return (c.Height - c.PaddleHeight) / 2
}

// maxPaddleY is the highest legal paddle position.
func (c Config) maxPaddleY() float64 {
	return c.Height - c.PaddleHeight
}
