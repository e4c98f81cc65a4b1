package spherecast

import (
	"encoding/json"
	"fmt"
	"os"
)

type SphereCfg struct {
	Position *Vector `json:"position,omitempty"` // defaults to DefaultSpherePosition
	Radius   Real    `json:"radius"`             // must be > 0
}

type Config struct {
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	FOV       Real      `json:"fov"`
	Output    string    `json:"output"`
	Format    string    `json:"format,omitempty"`  // png, bmp, tiff; empty = from Output extension
	Workers   int       `json:"workers,omitempty"` // <= 0 uses NumCPU
	HitColor  *RGB8     `json:"hitColor,omitempty"`
	MissColor *RGB8     `json:"missColor,omitempty"`
	Sphere    SphereCfg `json:"sphere"`
}

// Build validates and constructs the runtime sphere. A nil Position uses
// DefaultSpherePosition; the radius is taken as given and must be > 0.
func (sc SphereCfg) Build() (Sphere, error) {
	pos := DefaultSpherePosition
	if sc.Position != nil {
		pos = *sc.Position
	}
	r := sc.Radius
	if !(r > 0) || !isFinite(r) {
		return Sphere{}, opErrorf(opSphere, fmt.Errorf("radius %g: %w", r, ErrBadRadius))
	}
	if !pos.IsFinite() {
		return Sphere{}, opErrorf(opSphere, fmt.Errorf("position (%g, %g, %g, %g) is not finite", pos.X, pos.Y, pos.Z, pos.W))
	}
	return Sphere{Position: pos, Radius: r}, nil
}

// DefaultConfig is the single-sphere scene rendered at 1000x600, 90° FOV.
// Start from it when building a Config in code: zero sizes are not defaulted.
func DefaultConfig() *Config {
	pos := DefaultSpherePosition
	cfg := &Config{
		Width:  Width,
		Height: Height,
		FOV:    FOV,
		Output: Output,
		Sphere: SphereCfg{Position: &pos, Radius: DefaultSphereRadius},
	}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills only fields whose zero value means "not set".
// Width, Height, FOV and the sphere radius are never replaced, so bad values
// reach NewCamera and SphereCfg.Build and get reported.
func (cfg *Config) applyDefaults() {
	if cfg.Output == "" {
		cfg.Output = Output
	}
	if cfg.Format == "" {
		cfg.Format = FormatFromPath(cfg.Output)
	}
	if cfg.HitColor == nil {
		c := HitColor
		cfg.HitColor = &c
	}
	if cfg.MissColor == nil {
		c := MissColor
		cfg.MissColor = &c
	}
}

// LoadConfig reads a JSON config; an empty path yields DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// keys missing from the file keep their default values
	cfg := DefaultConfig()
	cfg.Format = ""
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	DebugLog("Loaded config from %s: size=(%d, %d), fov=%.2f, output=%s (%s), workers=%d", path, cfg.Width, cfg.Height, cfg.FOV, cfg.Output, cfg.Format, cfg.Workers)
	return cfg, nil
}
