// Package config loads named driver presets from an animated.yaml file.
//
// Apps ship reusable timing/spring/decay definitions under presets and
// construct drivers from them by name, keeping motion design out of
// widget code:
//
//	engine:
//	  min_version: v0.3.0
//	presets:
//	  sheet-open:
//	    type: timing
//	    duration: 300ms
//	    curve: ease-in-out
//	  fling-settle:
//	    type: spring
//	    stiffness: 400
//	    damping: 10
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/animated/pkg/animated"
	"github.com/go-drift/animated/pkg/animation"
)

// Version is the animated module version, compared against a preset
// file's engine.min_version gate.
const Version = "v0.4.0"

// File represents a parsed animated.yaml.
type File struct {
	Engine  Engine            `yaml:"engine"`
	Presets map[string]Preset `yaml:"presets"`
}

// Engine contains module-level requirements.
type Engine struct {
	// MinVersion is the minimum animated module version the presets
	// require, as a semver string ("v0.3.0"). Empty means any.
	MinVersion string `yaml:"min_version,omitempty"`
}

// Preset describes one named driver configuration.
type Preset struct {
	// Type selects the driver: "timing", "spring", or "decay".
	Type string `yaml:"type"`

	// Timing fields.
	Duration string `yaml:"duration,omitempty"`
	Curve    string `yaml:"curve,omitempty"`

	// Spring fields.
	Stiffness         float64 `yaml:"stiffness,omitempty"`
	Damping           float64 `yaml:"damping,omitempty"`
	Mass              float64 `yaml:"mass,omitempty"`
	OvershootClamping bool    `yaml:"overshoot_clamping,omitempty"`

	// Decay fields.
	Deceleration float64 `yaml:"deceleration,omitempty"`
}

// Load reads and validates an animated.yaml file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses and validates animated.yaml content.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse animated.yaml: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) validate() error {
	if err := checkEngineVersion(f.Engine.MinVersion); err != nil {
		return err
	}
	for name, p := range f.Presets {
		if err := p.validate(); err != nil {
			return fmt.Errorf("preset %q: %w", name, err)
		}
	}
	return nil
}

func (p Preset) validate() error {
	switch p.Type {
	case "timing":
		if p.Duration != "" {
			if _, err := time.ParseDuration(p.Duration); err != nil {
				return fmt.Errorf("invalid duration %q", p.Duration)
			}
		}
		if p.Curve != "" {
			if _, err := ParseCurve(p.Curve); err != nil {
				return err
			}
		}
	case "spring":
		if p.Stiffness < 0 || p.Damping < 0 || p.Mass < 0 {
			return fmt.Errorf("spring parameters must be non-negative")
		}
	case "decay":
		// Zero selects the driver default.
		if p.Deceleration != 0 && (p.Deceleration <= 0 || p.Deceleration >= 1) {
			return fmt.Errorf("deceleration must be in (0, 1), got %v", p.Deceleration)
		}
	case "":
		return fmt.Errorf("missing type")
	default:
		return fmt.Errorf("unknown type %q", p.Type)
	}
	return nil
}

func checkEngineVersion(min string) error {
	if min == "" {
		return nil
	}
	if !semver.IsValid(min) {
		return fmt.Errorf("invalid engine.min_version %q", min)
	}
	if semver.Compare(Version, min) < 0 {
		return fmt.Errorf("presets require animated %s, this module is %s", min, Version)
	}
	return nil
}

// Preset returns the named preset.
func (f *File) Preset(name string) (Preset, error) {
	p, ok := f.Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("no preset named %q", name)
	}
	return p, nil
}

// Driver constructs the driver described by the named preset, animating
// node toward target. Decay presets ignore target and use velocity as
// the initial speed; for timing and spring presets velocity seeds
// springs and is ignored by timing.
func (f *File) Driver(name string, node *animated.ValueNode, target, velocity float64) (animation.Driver, error) {
	p, err := f.Preset(name)
	if err != nil {
		return nil, err
	}
	switch p.Type {
	case "timing":
		d := &animation.TimingDriver{Node: node, To: target}
		if p.Duration != "" {
			d.Duration, _ = time.ParseDuration(p.Duration)
		}
		if p.Curve != "" {
			d.Curve, _ = ParseCurve(p.Curve)
		}
		return d, nil
	case "spring":
		spring := animation.Spring{Stiffness: p.Stiffness, Damping: p.Damping, Mass: p.Mass}
		return &animation.SpringDriver{
			Node:              node,
			To:                target,
			Spring:            spring,
			InitialVelocity:   velocity,
			OvershootClamping: p.OvershootClamping,
		}, nil
	case "decay":
		return &animation.DecayDriver{
			Node:         node,
			Velocity:     velocity,
			Deceleration: p.Deceleration,
		}, nil
	default:
		return nil, fmt.Errorf("preset %q: unknown type %q", name, p.Type)
	}
}

// ParseCurve resolves a curve name: "linear", "ease", "ease-in",
// "ease-out", "ease-in-out", or "cubic-bezier(x1, y1, x2, y2)".
func ParseCurve(s string) (func(float64) float64, error) {
	switch s {
	case "linear":
		return animation.LinearCurve, nil
	case "ease":
		return animation.Ease, nil
	case "ease-in":
		return animation.EaseIn, nil
	case "ease-out":
		return animation.EaseOut, nil
	case "ease-in-out":
		return animation.EaseInOut, nil
	}
	if inner, ok := strings.CutPrefix(s, "cubic-bezier("); ok {
		inner, ok = strings.CutSuffix(inner, ")")
		if ok {
			parts := strings.Split(inner, ",")
			if len(parts) == 4 {
				var vals [4]float64
				for i, part := range parts {
					v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
					if err != nil {
						return nil, fmt.Errorf("invalid curve %q", s)
					}
					vals[i] = v
				}
				return animation.CubicBezier(vals[0], vals[1], vals[2], vals[3]), nil
			}
		}
		return nil, fmt.Errorf("invalid curve %q", s)
	}
	return nil, fmt.Errorf("unknown curve %q", s)
}
