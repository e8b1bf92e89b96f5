package boxjump

import (
	"github.com/vovakirdan/box-jump/internal/core"
)

// Frame is the per-frame output handed to a renderer: final geometry plus
// the flags it branches on.
type Frame struct {
	Box       [4]core.Vec2 // Box corners, clockwise from the top-left at rest
	Obstacles []Obstacle   // Live obstacles, oldest first
	Phase     Phase
	Rotation  float64 // Degrees turned in the current jump
	Level     int     // Platform level of the next spawn

	Score       int
	Frames      int
	FPS         float64
	ShakeOffset float64 // Current horizontal shake displacement

	Running  bool
	Paused   bool
	Collided bool
	Shaking  bool
}

// Frame returns a snapshot of the current state. The snapshot owns its
// obstacle slice and stays valid after further steps.
func (g *Game) Frame() Frame {
	view := g.obstacles.Obstacles()
	obstacles := make([]Obstacle, len(view))
	copy(obstacles, view)

	return Frame{
		Box:         g.box.Vertices(),
		Obstacles:   obstacles,
		Phase:       g.box.Phase(),
		Rotation:    g.box.Rotation(),
		Level:       g.obstacles.Level(),
		Score:       g.score,
		Frames:      g.frames,
		FPS:         g.fps.FPS(),
		ShakeOffset: g.shake.Current(),
		Running:     g.running,
		Paused:      g.paused,
		Collided:    g.collided,
		Shaking:     g.shake.Active(),
	}
}
