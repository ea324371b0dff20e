// pkg/render/chart/chart_test.go
package chart

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-hoop/pkg/physics"
	"github.com/opd-ai/go-hoop/pkg/trajectory"
)

func TestRenderer_WritesPNG(t *testing.T) {
	l := physics.Launch{
		Origin:  physics.Vector2D{Y: 1.5},
		Speed:   10,
		Angle:   math.Pi / 4,
		Gravity: 9.807,
	}
	traj := trajectory.Sampler{Steps: 60, Duration: 3}.Sample(l)
	require.NotEmpty(t, traj)
	target := trajectory.Target{Pos: physics.Vector2D{X: 8, Y: 3.05}, Radius: 0.1}
	hit := trajectory.Evaluate(traj, target)

	path := filepath.Join(t.TempDir(), "arc.png")
	require.NoError(t, Renderer{Path: path}.Render(traj, target, hit))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestTitle(t *testing.T) {
	made := title(trajectory.HitResult{Made: true, MinDistance: 0.05, Time: 1.2})
	assert.Contains(t, made, "Basket made")

	missed := title(trajectory.HitResult{Made: false, MinDistance: 0.8, Time: 1.2})
	assert.Contains(t, missed, "Missed")
}
