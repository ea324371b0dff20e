// Package engo replays a sampled shot in a desktop window: the arc as
// a dotted trail, the basket as a bar, and the ball flying the arc on
// repeat in real time.
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-hoop/pkg/physics"
	"github.com/opd-ai/go-hoop/pkg/trajectory"
)

// spriteEntity is a renderable entity with a position.
type spriteEntity struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// PlaybackScene shows one shot. It is non-interactive: close the
// window to stop.
type PlaybackScene struct {
	Traj   trajectory.Trajectory
	Target trajectory.Target

	Width  float32 // window px
	Height float32 // window px

	world *ecs.World
	scale float64
}

// Type returns the scene type (required by Engo)
func (s *PlaybackScene) Type() string {
	return "PlaybackScene"
}

// Preload is called before the scene starts (required by Engo)
func (s *PlaybackScene) Preload() {}

// Setup builds the static trail and the animated ball.
func (s *PlaybackScene) Setup(u engo.Updater) {
	world, _ := u.(*ecs.World)
	s.world = world

	// A launch point under the ground samples to nothing; leave the
	// window empty instead of indexing a zero-length arc.
	if len(s.Traj) == 0 {
		return
	}

	common.SetBackground(color.Black)

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	maxX, maxY := s.Traj.Bounds()
	extent := math.Max(maxX, maxY)
	if extent <= 0 {
		extent = 1
	}
	s.scale = float64(s.Width) / extent

	for _, sample := range s.Traj {
		dotColor := color.NRGBA{B: 255, A: 255}
		if s.Target.Contains(sample.Pos) {
			dotColor = color.NRGBA{G: 255, A: 255}
		}
		dot := s.newSprite(diskSprite(4, dotColor), sample.Pos, 4)
		renderSystem.Add(&dot.BasicEntity, &dot.RenderComponent, &dot.SpaceComponent)
	}

	rim := s.newSprite(barSprite(20, 4, color.NRGBA{G: 200, A: 255}), s.Target.Pos, 20)
	renderSystem.Add(&rim.BasicEntity, &rim.RenderComponent, &rim.SpaceComponent)

	ball := s.newSprite(diskSprite(8, color.NRGBA{R: 255, G: 200, A: 255}), s.Traj[0].Pos, 8)
	renderSystem.Add(&ball.BasicEntity, &ball.RenderComponent, &ball.SpaceComponent)

	world.AddSystem(&playbackSystem{scene: s, ball: ball})
}

// newSprite places a drawable at a world position, centered.
func (s *PlaybackScene) newSprite(drawable common.Drawable, pos physics.Vector2D, size float32) *spriteEntity {
	entity := &spriteEntity{BasicEntity: ecs.NewBasic()}
	entity.RenderComponent = common.RenderComponent{Drawable: drawable}
	screenX, screenY := s.worldToScreen(pos)
	entity.SpaceComponent = common.SpaceComponent{
		Position: engo.Point{X: screenX - size/2, Y: screenY - size/2},
		Width:    size,
		Height:   size,
	}
	return entity
}

// worldToScreen converts meters to window pixels, Y flipped so the
// ground sits at the bottom.
func (s *PlaybackScene) worldToScreen(pos physics.Vector2D) (float32, float32) {
	return float32(pos.X * s.scale), s.Height - float32(pos.Y*s.scale)
}

// playbackSystem advances the ball along the trajectory in real time,
// wrapping at the end of the flight.
type playbackSystem struct {
	scene   *PlaybackScene
	ball    *spriteEntity
	elapsed float64
}

// Update implements ecs.System.
func (p *playbackSystem) Update(dt float32) {
	traj := p.scene.Traj
	if len(traj) == 0 {
		return
	}
	p.elapsed += float64(dt)

	flight := traj[len(traj)-1].T
	t := p.elapsed
	if flight > 0 {
		t = math.Mod(p.elapsed, flight)
	}

	pos := positionAt(traj, t)
	screenX, screenY := p.scene.worldToScreen(pos)
	p.ball.SpaceComponent.Position = engo.Point{
		X: screenX - p.ball.SpaceComponent.Width/2,
		Y: screenY - p.ball.SpaceComponent.Height/2,
	}
}

// Remove implements ecs.System.
func (p *playbackSystem) Remove(ecs.BasicEntity) {}

// positionAt interpolates the trajectory at time t, clamping to the
// first and last samples.
func positionAt(traj trajectory.Trajectory, t float64) physics.Vector2D {
	if len(traj) == 0 {
		return physics.Vector2D{}
	}
	if t <= traj[0].T {
		return traj[0].Pos
	}
	for i := 1; i < len(traj); i++ {
		if t <= traj[i].T {
			span := traj[i].T - traj[i-1].T
			if span <= 0 {
				return traj[i].Pos
			}
			fraction := (t - traj[i-1].T) / span
			return traj[i-1].Pos.Lerp(traj[i].Pos, fraction)
		}
	}
	return traj[len(traj)-1].Pos
}

// Run opens the playback window and blocks until it closes.
func Run(title string, width, height int, traj trajectory.Trajectory, target trajectory.Target) {
	scene := &PlaybackScene{
		Traj:   traj,
		Target: target,
		Width:  float32(width),
		Height: float32(height),
	}
	engo.Run(engo.RunOptions{
		Title:  title,
		Width:  width,
		Height: height,
	}, scene)
}
