// pkg/sim/sim_test.go
package sim

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-hoop/pkg/config"
	"github.com/opd-ai/go-hoop/pkg/event"
	"github.com/opd-ai/go-hoop/pkg/validation"
)

func TestShot_RunSpecExample(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Launch.Y = 0
	cfg.Sim.Gravity = 9.8
	cfg.Sim.Steps = 301 // dt = 0.01
	cfg.Basket.X = 10.2
	cfg.Basket.Y = 0
	cfg.Basket.Radius = 0.5

	result, err := NewShot(cfg).Run(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Hit.Made, "min distance was %v", result.Hit.MinDistance)
	assert.NotEmpty(t, result.Trajectory)

	// Apex around t ≈ 0.72 s at ≈ 2.55 m.
	apex := result.Trajectory.Apex()
	require.GreaterOrEqual(t, apex, 0)
	assert.InDelta(t, 0.72, result.Trajectory[apex].T, 0.02)
	assert.InDelta(t, 2.55, result.Trajectory[apex].Pos.Y, 0.01)
}

func TestShot_RunRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Launch.Speed = math.NaN()

	result, err := NewShot(cfg).Run(context.Background())
	assert.Nil(t, result)
	assert.ErrorIs(t, err, validation.ErrInvalidParameter)
}

func TestShot_RunIsIdempotent(t *testing.T) {
	cfg := config.DefaultConfig()
	shot := NewShot(cfg)

	a, err := shot.Run(context.Background())
	require.NoError(t, err)
	b, err := shot.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestShot_RunPublishesLifecycle(t *testing.T) {
	cfg := config.DefaultConfig()
	shot := NewShot(cfg)

	var types []event.Type
	record := func(e event.Event) { types = append(types, e.GetType()) }
	shot.EventBus.Subscribe(event.ShotLaunched, record)
	shot.EventBus.Subscribe(event.ApexReached, record)
	shot.EventBus.Subscribe(event.BasketMade, record)
	shot.EventBus.Subscribe(event.BallLanded, record)

	result, err := shot.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, types, 3)
	assert.Equal(t, event.ShotLaunched, types[0])
	assert.Equal(t, event.ApexReached, types[1])
	if result.Hit.Made {
		assert.Equal(t, event.BasketMade, types[2])
	} else {
		assert.Equal(t, event.BallLanded, types[2])
	}
}

func TestShot_Run3D(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Launch.AzimuthDeg = 30

	result, err := NewShot(cfg).Run3D(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, result.Trajectory)

	// Horizontal motion follows the azimuth.
	last := result.Trajectory[len(result.Trajectory)-1]
	heading := math.Atan2(last.Pos.Z(), last.Pos.X())
	assert.InDelta(t, math.Pi/6, heading, 1e-9)
}

func TestShot_Run3DZeroAzimuthMatches2D(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Launch.Z = 0
	cfg.Launch.AzimuthDeg = 0
	cfg.Basket.Z = 0
	shot := NewShot(cfg)

	flat, err := shot.Run(context.Background())
	require.NoError(t, err)
	full, err := shot.Run3D(context.Background())
	require.NoError(t, err)

	require.Equal(t, len(flat.Trajectory), len(full.Trajectory))
	for i := range flat.Trajectory {
		assert.InDelta(t, flat.Trajectory[i].Pos.X, full.Trajectory[i].Pos.X(), 1e-9)
		assert.InDelta(t, flat.Trajectory[i].Pos.Y, full.Trajectory[i].Pos.Y(), 1e-9)
	}
	assert.InDelta(t, flat.Hit.MinDistance, full.Hit.MinDistance, 1e-9)
}
