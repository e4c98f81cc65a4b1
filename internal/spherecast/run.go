package spherecast

import (
	"context"
	"time"
)

// Run renders the scene described by cfg and writes the image to cfg.Output.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	cfg.applyDefaults()
	cam, err := NewCamera(cfg.Width, cfg.Height, cfg.FOV)
	if err != nil {
		return nil, err
	}
	sphere, err := cfg.Sphere.Build()
	if err != nil {
		return nil, err
	}
	p := sphere.Position
	DebugLog("Sphere at (%.4f, %.4f, %.4f, %.4f), radius %.4f", p.X, p.Y, p.Z, p.W, sphere.Radius)

	start := time.Now()
	fb, stats, err := Render(ctx, cam, sphere, cfg.Workers)
	if err != nil {
		return nil, err
	}
	DebugLog("Rays: %d (%s), time: %s", stats.Total(), stats, time.Since(start))

	if err := SaveImage(fb, cfg.Output, cfg.Format, *cfg.HitColor, *cfg.MissColor); err != nil {
		return nil, err
	}
	return stats, nil
}
