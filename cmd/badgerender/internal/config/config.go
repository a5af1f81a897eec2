// Package config loads badgerender defaults from the environment.
//
// Values come from BADGERENDER_* variables, optionally seeded from a .env
// file. Command line flags override them.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrParsingConfig wraps environment parsing failures.
	ErrParsingConfig = errors.New("config: failed to parse environment")
	// ErrInvalidConfig is returned when a parsed value is out of range.
	ErrInvalidConfig = errors.New("config: invalid value")
)

// Config holds the CLI defaults.
type Config struct {
	// Scale is the device pixel ratio used for rendering.
	Scale float64 `env:"SCALE" envDefault:"2"`
	// Parent is the default parent size as WxH. Empty renders the badge alone.
	Parent string `env:"PARENT"`
	// ParentColor fills the parent rect in rendered images.
	ParentColor string `env:"PARENT_COLOR" envDefault:"#E5E5EA"`
	// Style is the default style document path.
	Style string `env:"STYLE"`
	// Output is the default PNG path for render and directory for animate.
	Output string `env:"OUTPUT" envDefault:"badge.png"`
	// Frames is the default frame count for animate.
	Frames int `env:"FRAMES" envDefault:"12"`
	// Margin is extra room around the drawing for shadows, in points.
	Margin float64 `env:"MARGIN" envDefault:"4"`
	// Verbose enables debug logging.
	Verbose bool `env:"VERBOSE" envDefault:"false"`
}

// Prefix is prepended to every variable name.
const Prefix = "BADGERENDER_"

// Load reads dotenv files, then parses the environment. With no files it
// tries ".env" in the working directory; a missing file is not an error.
// Variables already set in the environment win over dotenv values.
func Load(files ...string) (Config, error) {
	explicit := len(files) > 0
	if !explicit {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if !explicit && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: Prefix})
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("%w: scale must be positive, got %v", ErrInvalidConfig, c.Scale))
	}
	if c.Frames < 2 {
		errs = append(errs, fmt.Errorf("%w: frames must be at least 2, got %d", ErrInvalidConfig, c.Frames))
	}
	if c.Margin < 0 {
		errs = append(errs, fmt.Errorf("%w: margin must not be negative", ErrInvalidConfig))
	}
	return errors.Join(errs...)
}
