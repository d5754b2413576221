// Package config loads the TOML configuration of the fulgur binary
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/fulgur/lightning"
	"github.com/lixenwraith/fulgur/parameter"
	"github.com/lixenwraith/fulgur/render"
	"github.com/lixenwraith/fulgur/scene"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Scene  SceneConfig  `toml:"scene"`
	Bolt   BoltConfig   `toml:"bolt"`
	Render RenderConfig `toml:"render"`
	Respan RespanConfig `toml:"respan"`
}

type SceneConfig struct {
	Roots        int     `toml:"roots"`
	RootSteps    int     `toml:"root_steps"`
	ChildCount   int     `toml:"child_count"`
	ChildDepth   int     `toml:"child_depth"`
	RadiusFactor float64 `toml:"radius_factor"`
	Seed         int64   `toml:"seed"` // 0 picks a time-based seed
}

type BoltConfig struct {
	Color      string  `toml:"color"`
	Alpha      float64 `toml:"alpha"`
	GlowColor  string  `toml:"glow_color"`
	GlowAlpha  float64 `toml:"glow_alpha"`
	GlowRadius float64 `toml:"glow_radius"`
	Speed      float64 `toml:"speed"`
	Amplitude  float64 `toml:"amplitude"`
	LineWidth  float64 `toml:"line_width"`
}

type RenderConfig struct {
	FPS         int     `toml:"fps"`
	StrokeScale float64 `toml:"stroke_scale"`
	Background  string  `toml:"background"`
}

type RespanConfig struct {
	MaxDelayMs int `toml:"max_delay_ms"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Scene: SceneConfig{
			Roots:        parameter.RootCount,
			RootSteps:    parameter.RootSteps,
			ChildCount:   parameter.ChildCount,
			ChildDepth:   parameter.ChildDepth,
			RadiusFactor: parameter.RadiusFactor,
		},
		Bolt: BoltConfig{
			Color:      parameter.BoltColorHex,
			Alpha:      parameter.BoltAlpha,
			GlowColor:  parameter.BoltGlowColorHex,
			GlowAlpha:  parameter.BoltGlowAlpha,
			GlowRadius: parameter.BoltGlowRadius,
			Speed:      parameter.BoltSpeed,
			Amplitude:  parameter.BoltAmplitude,
			LineWidth:  parameter.BoltLineWidth,
		},
		Render: RenderConfig{
			FPS:         parameter.FrameRate,
			StrokeScale: parameter.StrokeScale,
			Background:  parameter.BackgroundHex,
		},
		Respan: RespanConfig{
			MaxDelayMs: int(parameter.RespanMaxDelay / time.Millisecond),
		},
	}
}

// Load reads path over the defaults and validates the result
// Unknown keys are rejected so typos do not pass silently
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and colors
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Scene.Roots >= 1, "scene.roots %d < 1", c.Scene.Roots)
	check(c.Scene.RootSteps >= parameter.MinRootSteps, "scene.root_steps %d < %d", c.Scene.RootSteps, parameter.MinRootSteps)
	check(c.Scene.ChildCount >= 0, "scene.child_count %d < 0", c.Scene.ChildCount)
	check(c.Scene.ChildDepth >= 0, "scene.child_depth %d < 0", c.Scene.ChildDepth)
	check(c.Scene.RadiusFactor > 0, "scene.radius_factor %v <= 0", c.Scene.RadiusFactor)
	check(c.Render.FPS > 0, "render.fps %d <= 0", c.Render.FPS)
	check(c.Render.StrokeScale >= 0, "render.stroke_scale %v < 0", c.Render.StrokeScale)
	check(c.Respan.MaxDelayMs > 0, "respan.max_delay_ms %d <= 0", c.Respan.MaxDelayMs)
	check(c.Bolt.Speed >= 0, "bolt.speed %v < 0", c.Bolt.Speed)
	check(c.Bolt.Amplitude >= 0, "bolt.amplitude %v < 0", c.Bolt.Amplitude)
	check(c.Bolt.LineWidth >= 0, "bolt.line_width %v < 0", c.Bolt.LineWidth)
	check(c.Bolt.GlowRadius >= 0, "bolt.glow_radius %v < 0", c.Bolt.GlowRadius)
	check(c.Bolt.Alpha >= 0 && c.Bolt.Alpha <= 1, "bolt.alpha %v outside [0, 1]", c.Bolt.Alpha)
	check(c.Bolt.GlowAlpha >= 0 && c.Bolt.GlowAlpha <= 1, "bolt.glow_alpha %v outside [0, 1]", c.Bolt.GlowAlpha)

	for key, hex := range map[string]string{
		"bolt.color":        c.Bolt.Color,
		"bolt.glow_color":   c.Bolt.GlowColor,
		"render.background": c.Render.Background,
	} {
		if _, err := render.ParseHex(hex); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err))
		}
	}

	return errors.Join(errs...)
}

// Style builds the root bolt style; call after Validate
func (c Config) Style() lightning.Style {
	return lightning.Style{
		Color:      render.MustParseHex(c.Bolt.Color),
		Alpha:      c.Bolt.Alpha,
		GlowColor:  render.MustParseHex(c.Bolt.GlowColor),
		GlowAlpha:  c.Bolt.GlowAlpha,
		GlowRadius: c.Bolt.GlowRadius,
		Speed:      c.Bolt.Speed,
		Amplitude:  c.Bolt.Amplitude,
		LineWidth:  c.Bolt.LineWidth,
	}
}

func (c Config) Layout() scene.Layout {
	return scene.Layout{
		Roots:        c.Scene.Roots,
		RootSteps:    c.Scene.RootSteps,
		ChildCount:   c.Scene.ChildCount,
		ChildDepth:   c.Scene.ChildDepth,
		RadiusFactor: c.Scene.RadiusFactor,
	}
}

func (c Config) Background() render.RGB {
	return render.MustParseHex(c.Render.Background)
}

func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Render.FPS)
}

func (c Config) RespanDelay() time.Duration {
	return time.Duration(c.Respan.MaxDelayMs) * time.Millisecond
}
