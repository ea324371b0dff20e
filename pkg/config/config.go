// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gehtsoft-usa/go_ballisticcalc/bmath/unit"

	"github.com/opd-ai/go-hoop/pkg/validation"
)

// Config contains the full description of one shot: where the ball
// leaves the hand, where the basket is, how the flight is discretized
// and how the result is drawn.
type Config struct {
	Launch LaunchConfig `json:"launch"`
	Basket BasketConfig `json:"basket"`
	Sim    SimConfig    `json:"sim"`
	Render RenderConfig `json:"render"`
}

// LaunchConfig contains the initial conditions of the throw.
// Angles are stored in degrees, the way people type them; the
// *Radians accessors convert for the physics layer.
type LaunchConfig struct {
	X          float64 `json:"x"`       // meters
	Y          float64 `json:"y"`       // meters
	Z          float64 `json:"z"`       // meters
	Speed      float64 `json:"speed"`   // m/s
	AngleDeg   float64 `json:"angle"`   // elevation, degrees
	AzimuthDeg float64 `json:"azimuth"` // degrees from +X toward +Z
}

// AngleRadians returns the elevation converted to radians.
func (l LaunchConfig) AngleRadians() float64 {
	return unit.MustCreateAngular(l.AngleDeg, unit.AngularDegree).In(unit.AngularRadian)
}

// AzimuthRadians returns the azimuth converted to radians.
func (l LaunchConfig) AzimuthRadians() float64 {
	return unit.MustCreateAngular(l.AzimuthDeg, unit.AngularDegree).In(unit.AngularRadian)
}

// SpeedKMH returns the initial speed converted to km/h, for the
// banner printout.
func (l LaunchConfig) SpeedKMH() float64 {
	return unit.MustCreateVelocity(l.Speed, unit.VelocityMPS).In(unit.VelocityKMH)
}

// BasketConfig contains the target position and acceptance radius.
type BasketConfig struct {
	X      float64 `json:"x"`      // meters
	Y      float64 `json:"y"`      // meters
	Z      float64 `json:"z"`      // meters
	Radius float64 `json:"radius"` // meters, counted as a made basket
}

// SimConfig contains the discretization and stopping bounds.
type SimConfig struct {
	Seconds float64 `json:"seconds"` // simulated flight window
	Steps   int     `json:"steps"`   // instants across Seconds
	Gravity float64 `json:"gravity"` // m/s²
	GroundY float64 `json:"groundY"` // landing plane
}

// RenderConfig contains the output surfaces' dimensions.
type RenderConfig struct {
	TextRows   int     `json:"textRows"`
	TextCols   int     `json:"textCols"`
	RowsMeters float64 `json:"rowsMeters"` // world height covered by the text grid
	ColsMeters float64 `json:"colsMeters"` // world width covered by the text grid
	SVGWidth   float64 `json:"svgWidth"`   // px
	SVGHeight  float64 `json:"svgHeight"`  // px
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *Config, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the demo shot: a throw from 1.5 m at 45°
// toward a regulation-height basket 8 m out.
func DefaultConfig() *Config {
	return &Config{
		Launch: LaunchConfig{
			X:        0,
			Y:        1.5,
			Z:        0,
			Speed:    10,
			AngleDeg: 45,
		},
		Basket: BasketConfig{
			X:      8,
			Y:      3.05,
			Z:      5,
			Radius: 0.1,
		},
		Sim: SimConfig{
			Seconds: 3,
			Steps:   60,
			Gravity: 9.807,
			GroundY: 0,
		},
		Render: RenderConfig{
			TextRows:   50,
			TextCols:   80,
			RowsMeters: 10,
			ColsMeters: 10,
			SVGWidth:   500,
			SVGHeight:  300,
		},
	}
}

// Validate applies the boundary checks before the core runs: every
// value finite, speed and radius positive, a sane step count. Angle,
// heights and the basket position are deliberately unconstrained —
// any finite geometry degenerates gracefully in the sampler.
func (c *Config) Validate() error {
	if err := validation.AllFinite(map[string]float64{
		"launch.x":       c.Launch.X,
		"launch.y":       c.Launch.Y,
		"launch.z":       c.Launch.Z,
		"launch.angle":   c.Launch.AngleDeg,
		"launch.azimuth": c.Launch.AzimuthDeg,
		"basket.x":       c.Basket.X,
		"basket.y":       c.Basket.Y,
		"basket.z":       c.Basket.Z,
		"sim.groundY":    c.Sim.GroundY,
	}); err != nil {
		return err
	}
	if err := validation.Positive("launch.speed", c.Launch.Speed); err != nil {
		return err
	}
	if err := validation.Positive("basket.radius", c.Basket.Radius); err != nil {
		return err
	}
	if err := validation.Positive("sim.seconds", c.Sim.Seconds); err != nil {
		return err
	}
	if err := validation.Positive("sim.gravity", c.Sim.Gravity); err != nil {
		return err
	}
	return validation.MinSteps("sim.steps", c.Sim.Steps)
}
