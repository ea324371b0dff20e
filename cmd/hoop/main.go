// cmd/hoop/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/opd-ai/go-hoop/pkg/config"
	"github.com/opd-ai/go-hoop/pkg/event"
	"github.com/opd-ai/go-hoop/pkg/logging"
	"github.com/opd-ai/go-hoop/pkg/render"
	"github.com/opd-ai/go-hoop/pkg/render/chart"
	playback "github.com/opd-ai/go-hoop/pkg/render/engo"
	"github.com/opd-ai/go-hoop/pkg/render/svg"
	"github.com/opd-ai/go-hoop/pkg/sim"
)

func main() {
	logger := logging.NewLogger()
	ctx := logging.WithCorrelationID(context.Background(), "")

	configPath := flag.String("config", "shot.json", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	textPlot := flag.Bool("text", true, "Draw the trajectory as ASCII")
	svgPath := flag.String("svg", "", "Write an animated SVG to this file")
	chartPath := flag.String("chart", "", "Write a chart image (png/pdf/svg) to this file")
	animate := flag.Bool("animate", false, "Replay the shot in a window")

	speed := flag.Float64("speed", 0, "Override initial speed (m/s)")
	angle := flag.Float64("angle", 0, "Override launch angle (degrees)")
	basketX := flag.Float64("basket-x", 0, "Override basket X (m)")
	basketY := flag.Float64("basket-y", 0, "Override basket Y (m)")
	flag.Parse()

	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	cfg := loadConfiguration(ctx, logger, *configPath)

	if err := config.ApplyEnvironmentOverrides(cfg); err != nil {
		logger.Error(ctx, "Failed to apply environment configuration", err)
		os.Exit(1)
	}

	// Command-line overrides win over both the file and the
	// environment, but only for flags actually given.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "speed":
			cfg.Launch.Speed = *speed
		case "angle":
			cfg.Launch.AngleDeg = *angle
		case "basket-x":
			cfg.Basket.X = *basketX
		case "basket-y":
			cfg.Basket.Y = *basketY
		}
	})

	shot := sim.NewShot(cfg)
	shot.EventBus.Subscribe(event.ApexReached, func(e event.Event) {
		apex := e.(*event.ApexEvent)
		logger.Debug(ctx, "apex reached", "t", apex.Time, "height", apex.Height)
	})

	result, err := shot.Run(ctx)
	if err != nil {
		logger.Error(ctx, "Shot rejected", err)
		os.Exit(1)
	}

	printBanner(cfg)
	printTrajectory(result)

	renderers := buildRenderers(cfg, *textPlot, *svgPath, *chartPath)
	for _, r := range renderers {
		if err := r.Render(result.Trajectory, result.Target, result.Hit); err != nil {
			logger.Error(ctx, "Rendering failed", err)
			os.Exit(1)
		}
	}

	if *animate {
		playback.Run("go-hoop", int(cfg.Render.SVGWidth), int(cfg.Render.SVGHeight),
			result.Trajectory, result.Target)
	}
}

// loadConfiguration loads the config file, falling back to the
// defaults when the file does not exist.
func loadConfiguration(ctx context.Context, logger *logging.Logger, path string) *config.Config {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", path,
		)
		return config.DefaultConfig()
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err,
			"config_path", path,
		)
		os.Exit(1)
	}
	return cfg
}

// buildRenderers assembles the requested output surfaces.
func buildRenderers(cfg *config.Config, text bool, svgPath, chartPath string) []render.Renderer {
	var renderers []render.Renderer
	if text {
		renderers = append(renderers, render.NewTerminal(os.Stdout,
			cfg.Render.TextRows, cfg.Render.TextCols,
			cfg.Render.RowsMeters, cfg.Render.ColsMeters))
	}
	if svgPath != "" {
		renderers = append(renderers, svg.FileRenderer{
			Path: svgPath,
			Plot: svg.Plot{
				Width:    cfg.Render.SVGWidth,
				Height:   cfg.Render.SVGHeight,
				Duration: cfg.Sim.Seconds,
			},
		})
	}
	if chartPath != "" {
		renderers = append(renderers, chart.Renderer{Path: chartPath})
	}
	return renderers
}

// printBanner echoes the inputs the way the classic illustrator did.
func printBanner(cfg *config.Config) {
	fmt.Println("********************************************")
	fmt.Println("** Did the basketball go into the basket? **")
	fmt.Println("********************************************")
	fmt.Println("Data:")
	fmt.Println("\n  Player throw position:")
	fmt.Printf("    x: %0.2f m\n", cfg.Launch.X)
	fmt.Printf("    y: %0.2f m\n", cfg.Launch.Y)
	fmt.Printf("    z: %0.2f m\n", cfg.Launch.Z)
	fmt.Println("\n  Initial velocity vector:")
	fmt.Printf("    speed: %0.2f m/s (%0.2f km/h)\n", cfg.Launch.Speed, cfg.Launch.SpeedKMH())
	fmt.Printf("    angle: %0.2f degrees above the horizontal\n", cfg.Launch.AngleDeg)
	fmt.Printf("    azimuth: %0.2f degrees from +X toward +Z\n", cfg.Launch.AzimuthDeg)
	fmt.Println("\n  Basket position:")
	fmt.Printf("    x: %0.2f m\n", cfg.Basket.X)
	fmt.Printf("    y: %0.2f m\n", cfg.Basket.Y)
	fmt.Printf("    z: %0.2f m\n", cfg.Basket.Z)
	fmt.Printf("    acceptance radius: %0.2f m\n", cfg.Basket.Radius)
	fmt.Println("\n  Simulation:")
	fmt.Printf("    window: %0.2f s in %d steps\n", cfg.Sim.Seconds, cfg.Sim.Steps)
	fmt.Printf("    gravity: %0.3f m/s²\n", cfg.Sim.Gravity)
}

// printTrajectory prints the per-sample table and the verdict.
func printTrajectory(result *sim.Result) {
	fmt.Println("\n****************")
	fmt.Println("** Trajectory **")
	fmt.Println("****************")
	fmt.Printf("  Entered the basket: %v\n\n", result.Hit.Made)

	for i, s := range result.Trajectory {
		note := ""
		if result.Hit.Made && i == result.Hit.Index {
			note = "ball entered the basket"
		}
		fmt.Printf("  t: %0.2f s, x: %0.2f m, y: %0.2f m  %s\n", s.T, s.Pos.X, s.Pos.Y, note)
	}
	fmt.Printf("\n  Closest approach: %0.3f m at t=%0.2f s\n\n", result.Hit.MinDistance, result.Hit.Time)
}
