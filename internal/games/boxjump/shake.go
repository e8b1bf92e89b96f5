package boxjump

import (
	"math"

	"github.com/vovakirdan/box-jump/internal/config"
)

// Shake is a damped horizontal sine oscillation started by a collision.
type Shake struct {
	cfg     config.ShakeConfig
	active  bool
	elapsed float64
}

// NewShake creates an idle shake.
func NewShake(cfg config.ShakeConfig) *Shake {
	return &Shake{cfg: cfg}
}

// Start begins a new shake from t = 0.
func (s *Shake) Start() {
	s.active = true
	s.elapsed = 0
}

// Stop ends the shake immediately.
func (s *Shake) Stop() {
	s.active = false
	s.elapsed = 0
}

// Active reports whether the shake is running.
func (s *Shake) Active() bool {
	return s.active
}

// Elapsed returns seconds since the shake started.
func (s *Shake) Elapsed() float64 {
	return s.elapsed
}

// Offset returns the displacement t seconds into the shake:
// mag * e^(-4t/duration) * sin(2π * freq * t).
func (s *Shake) Offset(t float64) float64 {
	decay := math.Exp(-4 / s.cfg.Duration * t)
	return s.cfg.Magnitude * decay * math.Sin(2*math.Pi*s.cfg.Frequency*t)
}

// Current returns the displacement at the current time, 0 when idle.
func (s *Shake) Current() float64 {
	if !s.active {
		return 0
	}
	return s.Offset(s.elapsed)
}

// Advance moves the shake forward by delta seconds and returns the change in
// displacement to apply to the world. Time is clamped to the duration and the
// shake ends once it gets there.
func (s *Shake) Advance(delta float64) float64 {
	if !s.active {
		return 0
	}

	prev := s.elapsed
	s.elapsed = math.Min(prev+delta, s.cfg.Duration)
	dx := s.Offset(s.elapsed) - s.Offset(prev)

	if s.elapsed >= s.cfg.Duration {
		s.active = false
	}
	return dx
}
