// Package boxjump implements a side-scrolling box jump game.
// The player's box jumps and spins over spikes and onto platforms while the
// world scrolls towards it.
package boxjump

import (
	"github.com/vovakirdan/box-jump/internal/config"
	"github.com/vovakirdan/box-jump/internal/core"
)

// Game owns the whole simulation state of a run.
type Game struct {
	cfg       config.BoxJumpConfig
	geo       Geometry
	box       *Box
	obstacles *ObstacleManager
	detector  *Detector
	shake     *Shake
	fps       *core.FPSMeter
	runtime   core.RuntimeConfig

	running  bool // Cleared by a quit request
	paused   bool // Simulation skipped
	collided bool // Frozen until restart
	jumpHeld bool // Jump pressed and not yet released
	score    int  // Obstacles cleared
	frames   int  // Simulated frames since restart
}

// New creates a game for the given tuning constants.
// The configuration must have passed Validate.
func New(cfg config.BoxJumpConfig) *Game {
	geo := NewGeometry(cfg)
	g := &Game{
		cfg:       cfg,
		geo:       geo,
		box:       NewBox(cfg),
		obstacles: NewObstacleManager(0, cfg),
		detector:  NewDetector(geo),
		shake:     NewShake(cfg.Shake),
		fps:       core.NewFPSMeter(cfg.Frame.FPSWindow),
		runtime:   core.DefaultConfig(),
	}
	g.restart()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "boxjump"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Box Jump"
}

// Config returns the tuning constants the game was built with.
func (g *Game) Config() config.BoxJumpConfig {
	return g.cfg
}

// Reset initializes the game for a new session and reseeds obstacle spawning.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.obstacles.Reset(runtime.Seed)
	g.restart()
}

// restart returns every piece of state to start-of-game values.
// The spawn RNG keeps its sequence so consecutive runs differ.
func (g *Game) restart() {
	g.box.Reset()
	g.obstacles.Clear()
	g.shake.Stop()
	g.detector.Reset()

	g.running = true
	g.paused = false
	g.collided = false
	g.jumpHeld = false
	g.score = 0
	g.frames = 0
}

// Step processes one frame of input and advances the simulation by delta
// seconds.
func (g *Game) Step(in core.InputFrame, delta float64) core.StepResult {
	if delta < 0 {
		delta = 0
	}
	g.fps.Add(delta)

	if in.Has(core.ActionQuit) {
		g.running = false
	}
	if !g.running {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.restart()
	}

	// Release before press so a tap within one frame still registers
	if in.Has(core.ActionJumpRelease) {
		g.jumpHeld = false
	}
	if in.Has(core.ActionJump) {
		g.jumpHeld = true
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionResume) {
		g.paused = false
	}

	switch {
	case g.paused:
	case g.collided:
		g.updateShake(delta)
	default:
		g.update(delta)
	}

	return core.StepResult{State: g.State()}
}

// update runs one frame of live simulation: obstacles, then the box, then
// collision detection.
func (g *Game) update(delta float64) {
	g.frames++

	if g.jumpHeld {
		g.box.StartJump()
	}

	g.score += g.obstacles.Update(delta)
	g.box.Advance(delta)
	g.resolveSupport()

	if g.detector.Collides(g.box, g.obstacles.Obstacles()) {
		g.collided = true
		g.jumpHeld = false
		g.shake.Start()
	}
}

// resolveSupport lands a descending box on a platform it reached, and drops
// a resting box whose support scrolled away.
func (g *Game) resolveSupport() {
	obstacles := g.obstacles.Obstacles()

	if g.box.Airborne() {
		if top, ok := g.detector.LandingSurface(g.box, obstacles); ok {
			g.box.LandOn(top)
		}
		return
	}

	if surface := g.detector.SurfaceBelow(g.box, obstacles); surface > g.box.RestY()+core.Epsilon {
		g.box.StartDrop(surface)
	}
}

// updateShake moves the box and obstacles by the shake's change in offset.
func (g *Game) updateShake(delta float64) {
	dx := g.shake.Advance(delta)
	if dx == 0 {
		return
	}
	g.box.Translate(dx, 0)
	g.obstacles.Shift(dx)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Running:  g.running,
		Paused:   g.paused,
		Collided: g.collided,
		Shaking:  g.shake.Active(),
	}
}
