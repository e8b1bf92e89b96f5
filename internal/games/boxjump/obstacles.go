package boxjump

import (
	"math/rand"

	"github.com/vovakirdan/box-jump/internal/config"
	"github.com/vovakirdan/box-jump/internal/core"
)

// Kind tags the variant of an obstacle.
type Kind int

const (
	KindSpike    Kind = iota // Triangle, on a pedestal above level 0
	KindPlatform             // Solid pillar the box can stand on
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindSpike:
		return "spike"
	case KindPlatform:
		return "platform"
	default:
		return "unknown"
	}
}

// Obstacle is a single scrolling obstacle.
type Obstacle struct {
	Kind  Kind
	X     float64 // Horizontal center
	Level int     // Platform level the obstacle stands on (spike) or reaches (platform)
}

// Geometry turns obstacle records into world shapes.
type Geometry struct {
	Size    float64
	GroundY float64
}

// NewGeometry builds the obstacle geometry from the configuration.
func NewGeometry(cfg config.BoxJumpConfig) Geometry {
	return Geometry{Size: cfg.Obstacle.Size, GroundY: cfg.GroundY()}
}

func (g Geometry) surface(level int) float64 {
	return g.GroundY - float64(level)*g.Size
}

// Triangle returns the spike outline as base-left, apex, base-right.
func (g Geometry) Triangle(o Obstacle) ([3]core.Vec2, bool) {
	if o.Kind != KindSpike {
		return [3]core.Vec2{}, false
	}
	base := g.surface(o.Level)
	half := g.Size / 2
	return [3]core.Vec2{
		{X: o.X - half, Y: base},
		{X: o.X, Y: base - g.Size},
		{X: o.X + half, Y: base},
	}, true
}

// Pillar returns the solid block under an obstacle: the whole platform, or
// the pedestal of a raised spike. Spikes on the ground have none.
func (g Geometry) Pillar(o Obstacle) (core.Bounds, bool) {
	if o.Level <= 0 {
		return core.Bounds{}, false
	}
	half := g.Size / 2
	return core.Bounds{MinX: o.X - half, MinY: g.surface(o.Level), MaxX: o.X + half, MaxY: g.GroundY}, true
}

// Bounds returns the extents of everything the obstacle occupies.
func (g Geometry) Bounds(o Obstacle) core.Bounds {
	var b core.Bounds
	has := false
	if tri, ok := g.Triangle(o); ok {
		b = core.BoundsOf(tri[:])
		has = true
	}
	if p, ok := g.Pillar(o); ok {
		if has {
			b = b.Union(p)
		} else {
			b = p
		}
	}
	return b
}

// Ring is a fixed-capacity FIFO of obstacles. Logical positions grow
// monotonically and map onto slots modulo the capacity; head is the oldest
// live obstacle and tail the next write, head == tail means empty.
type Ring struct {
	slots []Obstacle
	head  uint64
	tail  uint64
}

// NewRing creates an empty ring holding at most capacity obstacles.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{slots: make([]Obstacle, capacity)}
}

// Len returns the number of live obstacles.
func (r *Ring) Len() int {
	return int(r.tail - r.head)
}

// Cap returns the capacity.
func (r *Ring) Cap() int {
	return len(r.slots)
}

// Empty reports whether no obstacle is live.
func (r *Ring) Empty() bool {
	return r.head == r.tail
}

// Full reports whether another Push would be refused.
func (r *Ring) Full() bool {
	return r.Len() >= len(r.slots)
}

func (r *Ring) slot(pos uint64) int {
	return int(pos % uint64(len(r.slots)))
}

// Push appends an obstacle as the newest entry. It never overwrites: a push
// into a full ring is refused.
func (r *Ring) Push(o Obstacle) bool {
	if r.Full() {
		return false
	}
	r.slots[r.slot(r.tail)] = o
	r.tail++
	return true
}

// PopFront removes and returns the oldest obstacle.
func (r *Ring) PopFront() (Obstacle, bool) {
	if r.Empty() {
		return Obstacle{}, false
	}
	o := r.slots[r.slot(r.head)]
	r.head++
	return o, true
}

// Front returns the oldest obstacle.
func (r *Ring) Front() (Obstacle, bool) {
	if r.Empty() {
		return Obstacle{}, false
	}
	return r.slots[r.slot(r.head)], true
}

// Back returns the newest obstacle.
func (r *Ring) Back() (Obstacle, bool) {
	if r.Empty() {
		return Obstacle{}, false
	}
	return r.slots[r.slot(r.tail-1)], true
}

// At returns a pointer to the i-th live obstacle, 0 being the oldest.
func (r *Ring) At(i int) *Obstacle {
	return &r.slots[r.slot(r.head+uint64(i))]
}

// AppendTo appends the live obstacles, oldest first, to dst.
func (r *Ring) AppendTo(dst []Obstacle) []Obstacle {
	for pos := r.head; pos != r.tail; pos++ {
		dst = append(dst, r.slots[r.slot(pos)])
	}
	return dst
}

// Clear drops every obstacle.
func (r *Ring) Clear() {
	r.head = 0
	r.tail = 0
}

// SpawnChoice is the per-frame spawn decision.
type SpawnChoice int

const (
	ChoiceNone SpawnChoice = iota
	ChoiceSpike
	ChoicePlatformUp
	ChoicePlatformDown
)

// String returns a human-readable name for the choice.
func (c SpawnChoice) String() string {
	switch c {
	case ChoiceNone:
		return "none"
	case ChoiceSpike:
		return "spike"
	case ChoicePlatformUp:
		return "platform-up"
	case ChoicePlatformDown:
		return "platform-down"
	default:
		return "unknown"
	}
}

// ObstacleManager handles spawning, movement, and retirement of obstacles.
type ObstacleManager struct {
	ring  *Ring
	rng   *rand.Rand
	cfg   config.BoxJumpConfig
	level int // Platform level new obstacles spawn at
	view  []Obstacle
}

// NewObstacleManager creates a new obstacle manager with the given RNG seed.
func NewObstacleManager(seed int64, cfg config.BoxJumpConfig) *ObstacleManager {
	om := &ObstacleManager{
		ring: NewRing(cfg.Capacity()),
		cfg:  cfg,
	}
	om.Reset(seed)
	return om
}

// Reset clears all obstacles, returns to ground level and reseeds the RNG.
func (om *ObstacleManager) Reset(seed int64) {
	om.rng = rand.New(rand.NewSource(seed))
	om.Clear()
}

// Clear drops all obstacles and returns to ground level, keeping the RNG.
func (om *ObstacleManager) Clear() {
	om.ring.Clear()
	om.level = 0
}

// Len returns the number of live obstacles.
func (om *ObstacleManager) Len() int {
	return om.ring.Len()
}

// Cap returns the ring capacity.
func (om *ObstacleManager) Cap() int {
	return om.ring.Cap()
}

// Level returns the platform level new obstacles spawn at.
func (om *ObstacleManager) Level() int {
	return om.level
}

// Obstacles returns the live obstacles, oldest first. The slice is reused by
// the next call.
func (om *ObstacleManager) Obstacles() []Obstacle {
	om.view = om.ring.AppendTo(om.view[:0])
	return om.view
}

// SpawnAt writes an obstacle at x. Returns false if the ring is full.
func (om *ObstacleManager) SpawnAt(kind Kind, x float64, level int) bool {
	return om.ring.Push(Obstacle{Kind: kind, X: x, Level: level})
}

// Spawn writes an obstacle of the given kind at the right edge, at the
// current platform level.
func (om *ObstacleManager) Spawn(kind Kind) bool {
	return om.SpawnAt(kind, om.cfg.SpawnX(), om.level)
}

// CanSpawn reports whether the newest obstacle has left enough room for the
// box to land before the next one.
func (om *ObstacleManager) CanSpawn() bool {
	if om.ring.Full() {
		return false
	}
	last, ok := om.ring.Back()
	if !ok {
		return true
	}
	return last.X < om.cfg.SpawnGapX()
}

// Choose picks a spawn decision using the configured weights.
// Platform-down is never chosen at ground level.
func (om *ObstacleManager) Choose() SpawnChoice {
	w := om.cfg.Spawn.Weights
	down := w.PlatformDown
	if om.level == 0 {
		down = 0
	}

	total := w.None + w.Spike + w.PlatformUp + down
	if total <= 0 {
		return ChoiceNone
	}

	n := om.rng.Intn(total)
	switch {
	case n < w.None:
		return ChoiceNone
	case n < w.None+w.Spike:
		return ChoiceSpike
	case n < w.None+w.Spike+w.PlatformUp:
		return ChoicePlatformUp
	default:
		return ChoicePlatformDown
	}
}

// Apply carries out a spawn decision. Returns true if an obstacle was written.
func (om *ObstacleManager) Apply(choice SpawnChoice) bool {
	switch choice {
	case ChoiceSpike:
		return om.Spawn(KindSpike)
	case ChoicePlatformUp:
		if om.level < om.cfg.Spawn.MaxLevel {
			om.level++
		}
		if om.level == 0 {
			// max_level 0 has no platforms to climb
			return om.Spawn(KindSpike)
		}
		return om.Spawn(KindPlatform)
	case ChoicePlatformDown:
		if om.level == 0 {
			return false
		}
		ok := om.Spawn(KindPlatform)
		om.level--
		return ok
	default:
		return false
	}
}

// Update runs the spawn decision and scrolls the world by one frame.
// Returns the number of obstacles retired.
func (om *ObstacleManager) Update(delta float64) int {
	if om.CanSpawn() {
		om.Apply(om.Choose())
	}
	return om.Advance(delta)
}

// Advance scrolls every obstacle left by box.speed*delta and retires those
// that have left the screen. Returns the number retired.
func (om *ObstacleManager) Advance(delta float64) int {
	return om.Shift(-om.cfg.Box.Speed * delta)
}

// Shift moves every obstacle horizontally by dx and retires those past the
// left edge. Returns the number retired.
func (om *ObstacleManager) Shift(dx float64) int {
	for i := 0; i < om.ring.Len(); i++ {
		om.ring.At(i).X += dx
	}
	return om.retire()
}

// retire pops obstacles from the front while they are fully off screen.
// Obstacles never overtake each other, so only the front needs checking.
func (om *ObstacleManager) retire() int {
	limit := -om.cfg.HalfObstacle()
	retired := 0
	for {
		front, ok := om.ring.Front()
		if !ok || front.X >= limit {
			return retired
		}
		om.ring.PopFront()
		retired++
	}
}
