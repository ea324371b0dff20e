// Package sim wires the shot pipeline together: validate the
// configured parameters, sample the arc, evaluate the basket, and
// publish the lifecycle on an event bus for anyone listening.
package sim

import (
	"context"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/opd-ai/go-hoop/pkg/config"
	"github.com/opd-ai/go-hoop/pkg/event"
	"github.com/opd-ai/go-hoop/pkg/logging"
	"github.com/opd-ai/go-hoop/pkg/physics"
	"github.com/opd-ai/go-hoop/pkg/trajectory"
)

// Result bundles everything a renderer needs from one run.
type Result struct {
	Launch     physics.Launch
	Target     trajectory.Target
	Trajectory trajectory.Trajectory
	Hit        trajectory.HitResult
}

// Result3 is the 3D analogue of Result.
type Result3 struct {
	Launch     physics.Launch3D
	Target     trajectory.Target3
	Trajectory trajectory.Trajectory3
	Hit        trajectory.HitResult
}

// Shot runs the validate → sample → evaluate pipeline for one
// configured throw. Apart from event publication and logging the run
// is pure: the same config always yields the same Result.
type Shot struct {
	Config   *config.Config
	EventBus *event.Bus
	logger   *logging.Logger
}

// NewShot creates a Shot with a fresh event bus.
func NewShot(cfg *config.Config) *Shot {
	return &Shot{
		Config:   cfg,
		EventBus: event.NewBus(),
		logger:   logging.NewLogger(),
	}
}

// sampler builds the discretization from the config.
func (s *Shot) sampler() trajectory.Sampler {
	return trajectory.Sampler{
		Steps:    s.Config.Sim.Steps,
		Duration: s.Config.Sim.Seconds,
		Ground:   s.Config.Sim.GroundY,
	}
}

// Run simulates the configured throw in the vertical plane of the
// velocity vector. Invalid parameters fail before any sampling
// happens; every valid config terminates in at most Sim.Steps
// samples.
func (s *Shot) Run(ctx context.Context) (*Result, error) {
	if err := s.Config.Validate(); err != nil {
		return nil, logging.WrapError(err, "shot rejected")
	}

	launch := physics.Launch{
		Origin:  physics.Vector2D{X: s.Config.Launch.X, Y: s.Config.Launch.Y},
		Speed:   s.Config.Launch.Speed,
		Angle:   s.Config.Launch.AngleRadians(),
		Gravity: s.Config.Sim.Gravity,
	}
	target := trajectory.Target{
		Pos:    physics.Vector2D{X: s.Config.Basket.X, Y: s.Config.Basket.Y},
		Radius: s.Config.Basket.Radius,
	}

	s.EventBus.Publish(event.NewShotEvent(s, launch.Speed, launch.Angle))

	traj := s.sampler().Sample(launch)
	hit := trajectory.Evaluate(traj, target)

	if apexTime := launch.ApexTime(); apexTime > 0 && apexTime <= s.Config.Sim.Seconds {
		s.EventBus.Publish(event.NewApexEvent(s, apexTime, launch.ApexHeight()))
	}
	s.EventBus.Publish(event.NewHitEvent(s, hit.Made, hit.MinDistance, hit.Time))

	s.logger.Info(ctx, "shot simulated",
		"samples", len(traj),
		"made", hit.Made,
		"min_distance", hit.MinDistance,
		"closest_at", hit.Time,
	)

	return &Result{
		Launch:     launch,
		Target:     target,
		Trajectory: traj,
		Hit:        hit,
	}, nil
}

// Run3D simulates the throw in full 3D, honoring the configured
// azimuth and the basket's Z position.
func (s *Shot) Run3D(ctx context.Context) (*Result3, error) {
	if err := s.Config.Validate(); err != nil {
		return nil, logging.WrapError(err, "shot rejected")
	}

	launch := physics.Launch3D{
		Origin:    mgl64.Vec3{s.Config.Launch.X, s.Config.Launch.Y, s.Config.Launch.Z},
		Speed:     s.Config.Launch.Speed,
		Elevation: s.Config.Launch.AngleRadians(),
		Azimuth:   s.Config.Launch.AzimuthRadians(),
		Gravity:   s.Config.Sim.Gravity,
	}
	target := trajectory.Target3{
		Pos:    mgl64.Vec3{s.Config.Basket.X, s.Config.Basket.Y, s.Config.Basket.Z},
		Radius: s.Config.Basket.Radius,
	}

	s.EventBus.Publish(event.NewShotEvent(s, launch.Speed, launch.Elevation))

	traj := s.sampler().Sample3D(launch)
	hit := trajectory.Evaluate3(traj, target)

	s.EventBus.Publish(event.NewHitEvent(s, hit.Made, hit.MinDistance, hit.Time))

	s.logger.Info(ctx, "shot simulated in 3D",
		"samples", len(traj),
		"made", hit.Made,
		"min_distance", hit.MinDistance,
	)

	return &Result3{
		Launch:     launch,
		Target:     target,
		Trajectory: traj,
		Hit:        hit,
	}, nil
}
