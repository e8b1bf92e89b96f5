package boxjump

import (
	"math"

	"github.com/vovakirdan/box-jump/internal/config"
	"github.com/vovakirdan/box-jump/internal/core"
)

// Phase is the vertical motion state of the box.
// Exactly one phase is active at a time.
type Phase int

const (
	PhaseNeutral  Phase = iota // Resting on a surface
	PhaseJumping               // Following the half-sine jump arc
	PhaseDropping              // Falling at constant speed after losing support
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNeutral:
		return "neutral"
	case PhaseJumping:
		return "jumping"
	case PhaseDropping:
		return "dropping"
	default:
		return "unknown"
	}
}

// Box is the player: a square that jumps and spins in place while the world
// scrolls past it.
type Box struct {
	verts [4]core.Vec2 // Clockwise from top-left at rest

	phase      Phase
	rotation   float64 // Degrees turned since the jump started
	elapsed    float64 // Seconds since the jump started
	lastSine   float64 // Arc sample applied on the previous frame
	restY      float64 // Bottom of the box at rest, the supporting surface
	dropTarget float64 // Surface a drop ends on
	prevBottom float64 // Bounding box bottom before the latest Advance

	x       float64
	size    float64
	groundY float64
	jump    config.JumpConfig
}

// NewBox creates a box resting on the ground.
func NewBox(cfg config.BoxJumpConfig) *Box {
	b := &Box{
		x:       cfg.Box.X,
		size:    cfg.Box.Size,
		groundY: cfg.GroundY(),
		jump:    cfg.Jump,
	}
	b.Reset()
	return b
}

// Reset puts the box back on the ground with no rotation and no jump progress.
func (b *Box) Reset() {
	b.restY = b.groundY
	b.placeAtRest()
}

// placeAtRest snaps the box to its canonical square on the rest baseline.
func (b *Box) placeAtRest() {
	top := b.restY - b.size
	b.verts = [4]core.Vec2{
		{X: b.x, Y: top},
		{X: b.x + b.size, Y: top},
		{X: b.x + b.size, Y: b.restY},
		{X: b.x, Y: b.restY},
	}
	b.phase = PhaseNeutral
	b.rotation = 0
	b.elapsed = 0
	b.lastSine = 0
	b.dropTarget = 0
	b.prevBottom = b.restY
}

// RestVertices returns the canonical square for the current rest baseline.
func (b *Box) RestVertices() [4]core.Vec2 {
	top := b.restY - b.size
	return [4]core.Vec2{
		{X: b.x, Y: top},
		{X: b.x + b.size, Y: top},
		{X: b.x + b.size, Y: b.restY},
		{X: b.x, Y: b.restY},
	}
}

// Vertices returns the current corners of the box.
func (b *Box) Vertices() [4]core.Vec2 {
	return b.verts
}

// Bounds returns the live axis-aligned extents of the box.
func (b *Box) Bounds() core.Bounds {
	return core.BoundsOf(b.verts[:])
}

// Center returns the center of the live extents.
func (b *Box) Center() core.Vec2 {
	return b.Bounds().Center()
}

// Phase returns the current motion phase.
func (b *Box) Phase() Phase {
	return b.phase
}

// Airborne reports whether the box is jumping or dropping.
func (b *Box) Airborne() bool {
	return b.phase != PhaseNeutral
}

// Descending reports whether the box is moving down: the second half of a
// jump, or any drop.
func (b *Box) Descending() bool {
	switch b.phase {
	case PhaseJumping:
		return b.elapsed > b.jump.Duration/2
	case PhaseDropping:
		return true
	default:
		return false
	}
}

// Rotation returns the degrees turned since the jump started.
func (b *Box) Rotation() float64 {
	return b.rotation
}

// RestY returns the baseline the box rests on.
func (b *Box) RestY() float64 {
	return b.restY
}

// PrevBottom returns the bottom of the box before the latest Advance.
func (b *Box) PrevBottom() float64 {
	return b.prevBottom
}

// Translate moves every vertex by (dx, dy).
func (b *Box) Translate(dx, dy float64) {
	for i := range b.verts {
		b.verts[i].X += dx
		b.verts[i].Y += dy
	}
}

// Rotate turns the box by degrees around its current center.
func (b *Box) Rotate(degrees float64) {
	core.RotateAround(b.verts[:], b.Center(), degrees)
}

// StartJump begins a jump. It only succeeds from the neutral phase.
func (b *Box) StartJump() bool {
	if b.phase != PhaseNeutral {
		return false
	}
	b.phase = PhaseJumping
	b.rotation = 0
	b.elapsed = 0
	b.lastSine = 0
	return true
}

// StartDrop makes a resting box fall onto a lower surface.
func (b *Box) StartDrop(surface float64) bool {
	if b.phase != PhaseNeutral || surface <= b.restY {
		return false
	}
	b.phase = PhaseDropping
	b.dropTarget = surface
	return true
}

// LandOn ends any jump or drop with the box resting on surface.
func (b *Box) LandOn(surface float64) {
	b.restY = surface
	b.placeAtRest()
}

// Advance moves the box by one frame of delta seconds.
func (b *Box) Advance(delta float64) {
	b.prevBottom = b.Bounds().MaxY

	switch b.phase {
	case PhaseJumping:
		b.advanceJump(delta)
	case PhaseDropping:
		b.advanceDrop(delta)
	}
}

// advanceJump follows a half-sine arc of jump.height over jump.duration while
// turning jump.max_rotate degrees. Vertical motion is applied as the change
// in the arc since the previous frame.
func (b *Box) advanceJump(delta float64) {
	step := b.jump.MaxRotate * delta / b.jump.Duration
	b.elapsed += delta
	b.rotation += step

	if b.rotation >= b.jump.MaxRotate {
		b.placeAtRest()
		return
	}

	sine := math.Sin(b.elapsed * math.Pi / b.jump.Duration)
	rise := (sine - b.lastSine) * b.jump.Height
	b.lastSine = sine

	b.Translate(0, -rise)
	b.Rotate(step)
}

// advanceDrop falls at the speed of the jump's average vertical velocity.
func (b *Box) advanceDrop(delta float64) {
	fall := 2 * b.jump.Height * delta / b.jump.Duration
	b.Translate(0, fall)

	if b.Bounds().MaxY >= b.dropTarget {
		b.LandOn(b.dropTarget)
	}
}
