package spherecast

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// renderRow casts one ray per pixel of scanline y. Only row y of fb is written.
func renderRow(cam *Camera, sphere Sphere, fb *Framebuffer, stats *Stats, y int) {
	for x := 0; x < cam.Width; x++ {
		c := Classify(sphere, cam.RayFor(x, y))
		stats.add(c)
		fb.Set(x, y, c == Hit)
	}
}

// Render casts one ray per pixel and returns the hit mask.
// Scanlines are spread over workers goroutines (NumCPU when workers <= 0);
// workers == 1 renders sequentially. Cancelling ctx stops between scanlines.
func Render(ctx context.Context, cam *Camera, sphere Sphere, workers int) (*Framebuffer, *Stats, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > cam.Height {
		workers = cam.Height
	}
	fb := NewFramebuffer(cam.Width, cam.Height)
	stats := &Stats{}

	var done int64
	step := int64(imax(1, cam.Height/ProbeEvery))
	progress := func() {
		d := atomic.AddInt64(&done, 1)
		if Progress && d%step == 0 {
			fmt.Printf("[RENDER] %.2f%%\n", Real(d)*100/Real(cam.Height))
		}
	}

	if workers == 1 {
		for y := 0; y < cam.Height; y++ {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
			renderRow(cam, sphere, fb, stats, y)
			progress()
		}
		return fb, stats, nil
	}

	DebugLog("Launching %d scanline workers for %d rows", workers, cam.Height)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y := 0; y < cam.Height; y++ {
		if gctx.Err() != nil {
			break
		}
		y := y
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			renderRow(cam, sphere, fb, stats, y)
			progress()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return fb, stats, nil
}
