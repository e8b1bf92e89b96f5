package boxjump

import (
	"testing"

	"github.com/vovakirdan/box-jump/internal/config"
)

// quietConfig never spawns on its own so tests control every obstacle.
func quietConfig() config.BoxJumpConfig {
	cfg := config.DefaultBoxJumpConfig()
	cfg.Spawn.Weights = config.SpawnWeights{None: 1}
	return cfg
}

func TestRingPushPop(t *testing.T) {
	r := NewRing(3)

	for i := 0; i < 3; i++ {
		if !r.Push(Obstacle{X: float64(i)}) {
			t.Fatalf("push %d refused before the ring was full", i)
		}
	}
	if !r.Full() {
		t.Error("ring should be full after 3 pushes")
	}
	if r.Push(Obstacle{X: 99}) {
		t.Error("push into a full ring should be refused")
	}
	if front, _ := r.Front(); front.X != 0 {
		t.Errorf("a refused push must not overwrite the oldest entry, front = %f", front.X)
	}

	o, ok := r.PopFront()
	if !ok || o.X != 0 {
		t.Errorf("PopFront() = %+v, %v, expected X=0", o, ok)
	}

	// Wraps into the freed slot
	if !r.Push(Obstacle{X: 3}) {
		t.Fatal("push after pop should succeed")
	}

	got := r.AppendTo(nil)
	want := []float64{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("AppendTo() returned %d obstacles, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i].X != want[i] {
			t.Errorf("obstacle %d X = %f, expected %f", i, got[i].X, want[i])
		}
	}
	if back, _ := r.Back(); back.X != 3 {
		t.Errorf("Back().X = %f, expected 3", back.X)
	}

	r.Clear()
	if !r.Empty() || r.Len() != 0 {
		t.Error("Clear() should empty the ring")
	}
	if _, ok := r.PopFront(); ok {
		t.Error("PopFront() on an empty ring should fail")
	}
}

func TestRingCapacityFromConfig(t *testing.T) {
	om := NewObstacleManager(1, config.DefaultBoxJumpConfig())
	if om.Cap() != 32 {
		t.Errorf("Cap() = %d, expected 32", om.Cap())
	}
}

func TestSpawnEveryFrameNeverExceedsCapacity(t *testing.T) {
	cfg := quietConfig()
	om := NewObstacleManager(1, cfg)

	refused := 0
	for i := 0; i < 1000; i++ {
		if !om.SpawnAt(KindSpike, cfg.SpawnX(), 0) {
			refused++
		}
		om.Advance(frameDelta)
		if om.Len() > om.Cap() {
			t.Fatalf("frame %d: %d live obstacles exceed capacity %d", i, om.Len(), om.Cap())
		}
	}
	if refused == 0 {
		t.Error("expected some spawns to be refused at capacity")
	}
}

func TestObstacleRetiresOffScreen(t *testing.T) {
	om := NewObstacleManager(1, quietConfig())
	om.SpawnAt(KindSpike, 850, 0)

	retired := 0
	for i := 0; i < 120; i++ {
		retired += om.Advance(frameDelta)
		for _, o := range om.Obstacles() {
			if o.X < -25 {
				t.Fatalf("frame %d: obstacle at %f still live past the left edge", i, o.X)
			}
		}
	}

	if retired != 1 {
		t.Errorf("retired = %d, expected 1", retired)
	}
	if om.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", om.Len())
	}
}

func TestRetireKeepsOrder(t *testing.T) {
	om := NewObstacleManager(1, quietConfig())
	om.SpawnAt(KindSpike, 0, 0)
	om.SpawnAt(KindSpike, 100, 0)
	om.SpawnAt(KindSpike, 200, 0)

	if n := om.Shift(-50); n != 1 {
		t.Errorf("Shift() retired %d, expected 1", n)
	}

	obs := om.Obstacles()
	if len(obs) != 2 || obs[0].X != 50 || obs[1].X != 150 {
		t.Errorf("unexpected obstacles after shift: %+v", obs)
	}
}

func TestCanSpawnRespectsGap(t *testing.T) {
	cfg := quietConfig()
	om := NewObstacleManager(1, cfg)

	if !om.CanSpawn() {
		t.Fatal("empty world should allow a spawn")
	}

	om.Spawn(KindSpike)
	if om.CanSpawn() {
		t.Error("spawn right after a spawn should be blocked")
	}

	// SpawnGapX = 800 - 25 - 4.5*50 = 550
	om.Shift(cfg.SpawnGapX() - cfg.SpawnX())
	if om.CanSpawn() {
		t.Error("obstacle exactly at the gap limit should still block")
	}

	om.Shift(-1)
	if !om.CanSpawn() {
		t.Error("obstacle past the gap limit should allow a spawn")
	}
}

func TestChooseNeverDropsBelowGround(t *testing.T) {
	cfg := config.DefaultBoxJumpConfig()
	cfg.Spawn.Weights = config.SpawnWeights{PlatformDown: 10}
	om := NewObstacleManager(7, cfg)

	for i := 0; i < 100; i++ {
		if c := om.Choose(); c == ChoicePlatformDown {
			t.Fatal("platform-down chosen at ground level")
		}
	}

	om.level = 1
	if c := om.Choose(); c != ChoicePlatformDown {
		t.Errorf("Choose() = %v, expected platform-down above ground", c)
	}
}

func TestChooseDeterministic(t *testing.T) {
	cfg := config.DefaultBoxJumpConfig()
	a := NewObstacleManager(42, cfg)
	b := NewObstacleManager(42, cfg)

	for i := 0; i < 500; i++ {
		ca, cb := a.Choose(), b.Choose()
		if ca != cb {
			t.Fatalf("choice %d differs: %v vs %v", i, ca, cb)
		}
	}
}

func TestApplyLevels(t *testing.T) {
	cfg := quietConfig()
	om := NewObstacleManager(1, cfg)

	tests := []struct {
		choice    SpawnChoice
		wrote     bool
		kind      Kind
		obstLevel int
		level     int
	}{
		{ChoicePlatformDown, false, 0, 0, 0},
		{ChoiceSpike, true, KindSpike, 0, 0},
		{ChoicePlatformUp, true, KindPlatform, 1, 1},
		{ChoiceSpike, true, KindSpike, 1, 1},
		{ChoicePlatformUp, true, KindPlatform, 2, 2},
		{ChoicePlatformUp, true, KindPlatform, 2, 2}, // capped at max_level
		{ChoicePlatformDown, true, KindPlatform, 2, 1},
		{ChoicePlatformDown, true, KindPlatform, 1, 0},
		{ChoiceNone, false, 0, 0, 0},
	}

	for i, tc := range tests {
		before := om.Len()
		wrote := om.Apply(tc.choice)
		if wrote != tc.wrote {
			t.Errorf("step %d (%v): wrote = %v, expected %v", i, tc.choice, wrote, tc.wrote)
		}
		if om.Level() != tc.level {
			t.Errorf("step %d (%v): level = %d, expected %d", i, tc.choice, om.Level(), tc.level)
		}
		if tc.wrote {
			if om.Len() != before+1 {
				t.Fatalf("step %d (%v): expected one new obstacle", i, tc.choice)
			}
			o, _ := om.ring.Back()
			if o.Kind != tc.kind || o.Level != tc.obstLevel {
				t.Errorf("step %d (%v): spawned %v at level %d, expected %v at level %d",
					i, tc.choice, o.Kind, o.Level, tc.kind, tc.obstLevel)
			}
		} else if om.Len() != before {
			t.Errorf("step %d (%v): unexpected obstacle written", i, tc.choice)
		}
		// Keep the ring from filling up
		om.ring.Clear()
	}
}

func TestGeometry(t *testing.T) {
	geo := NewGeometry(config.DefaultBoxJumpConfig())

	tri, ok := geo.Triangle(Obstacle{Kind: KindSpike, X: 100})
	if !ok {
		t.Fatal("spike should have a triangle")
	}
	if tri[0].X != 75 || tri[0].Y != 500 || tri[1].X != 100 || tri[1].Y != 450 || tri[2].X != 125 {
		t.Errorf("unexpected ground spike %+v", tri)
	}
	if _, ok := geo.Pillar(Obstacle{Kind: KindSpike, X: 100}); ok {
		t.Error("ground spike has no pedestal")
	}

	raised := Obstacle{Kind: KindSpike, X: 100, Level: 1}
	tri, _ = geo.Triangle(raised)
	if tri[0].Y != 450 || tri[1].Y != 400 {
		t.Errorf("raised spike should sit on level 1, got %+v", tri)
	}
	pillar, ok := geo.Pillar(raised)
	if !ok || pillar.MinY != 450 || pillar.MaxY != 500 {
		t.Errorf("unexpected pedestal %+v", pillar)
	}
	if b := geo.Bounds(raised); b.MinY != 400 || b.MaxY != 500 {
		t.Errorf("raised spike bounds = %+v", b)
	}

	platform := Obstacle{Kind: KindPlatform, X: 100, Level: 2}
	if _, ok := geo.Triangle(platform); ok {
		t.Error("platform has no triangle")
	}
	if b := geo.Bounds(platform); b.MinX != 75 || b.MaxX != 125 || b.MinY != 400 || b.MaxY != 500 {
		t.Errorf("platform bounds = %+v", b)
	}
}
