package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/spherecast/internal/spherecast"
)

func newRootCmd() *cobra.Command {
	var (
		width, height, workers int
		fov                    float64
		out, format            string
	)
	cmd := &cobra.Command{
		Use:           "spherecast [config.json]",
		Short:         "Render a single sphere with one ray per pixel",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath := ""
			if len(args) > 0 {
				cfgPath = args[0]
			}
			cfg, err := spherecast.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("width") {
				cfg.Width = width
			}
			if flags.Changed("height") {
				cfg.Height = height
			}
			if flags.Changed("fov") {
				cfg.FOV = fov
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if flags.Changed("out") {
				cfg.Output = out
				if !flags.Changed("format") {
					cfg.Format = spherecast.FormatFromPath(out)
				}
			}
			if flags.Changed("format") {
				cfg.Format = format
			}
			stats, err := spherecast.Run(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			fmt.Printf("Saved %s (%s)\n", cfg.Output, stats)
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&width, "width", spherecast.Width, "image width in pixels")
	f.IntVar(&height, "height", spherecast.Height, "image height in pixels")
	f.Float64Var(&fov, "fov", spherecast.FOV, "field of view in degrees")
	f.StringVar(&out, "out", spherecast.Output, "output image path")
	f.StringVar(&format, "format", "", "output format: png, bmp or tiff (default: from --out extension)")
	f.IntVar(&workers, "workers", 0, "scanline workers (0 = NumCPU, 1 = sequential)")
	return cmd
}

func main() {
	spherecast.Debug = os.Getenv("DEBUG") != ""
	spherecast.Progress = os.Getenv("PROGRESS") != ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Printf("Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
