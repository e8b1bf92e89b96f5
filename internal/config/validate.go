package config

import (
	"fmt"
	"math"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the constants describe a playable, well-formed game.
// Checks:
//   - All sizes, speeds and durations are positive
//   - The screen fits at least one obstacle
//   - The jump clears a spike standing on the highest platform
//   - At least one spawn weight is set
//   - The shake ends on a zero crossing
func (c BoxJumpConfig) Validate() error {
	positives := []struct {
		name string
		val  float64
	}{
		{"screen.width", c.Screen.Width},
		{"screen.height", c.Screen.Height},
		{"box.size", c.Box.Size},
		{"box.speed", c.Box.Speed},
		{"jump.height", c.Jump.Height},
		{"jump.duration", c.Jump.Duration},
		{"jump.max_rotate", c.Jump.MaxRotate},
		{"obstacle.size", c.Obstacle.Size},
		{"spawn.min_gap_boxes", c.Spawn.MinGapBoxes},
		{"shake.duration", c.Shake.Duration},
		{"shake.frequency", c.Shake.Frequency},
	}
	for _, p := range positives {
		if !(p.val > 0) {
			return ValidationError{
				Code:    "NOT_POSITIVE",
				Message: fmt.Sprintf("%s must be positive, got %v", p.name, p.val),
			}
		}
	}

	if c.Screen.GroundOffset < 0 || c.GroundY() <= c.Box.Size {
		return ValidationError{
			Code:    "BAD_GROUND",
			Message: fmt.Sprintf("ground line %.1f leaves no room for the box", c.GroundY()),
		}
	}

	if c.Capacity() < 1 {
		return ValidationError{
			Code:    "NO_CAPACITY",
			Message: fmt.Sprintf("screen width %.1f is narrower than one obstacle", c.Screen.Width),
		}
	}

	if c.Spawn.MaxLevel < 0 {
		return ValidationError{
			Code:    "BAD_LEVEL",
			Message: fmt.Sprintf("spawn.max_level must not be negative, got %d", c.Spawn.MaxLevel),
		}
	}

	// A spike on the top platform reaches (max_level+1) obstacle sizes above the ground
	if reach := float64(c.Spawn.MaxLevel+1) * c.Obstacle.Size; c.Jump.Height <= reach {
		return ValidationError{
			Code:    "UNCLEARABLE",
			Message: fmt.Sprintf("jump.height %.1f cannot clear obstacles reaching %.1f", c.Jump.Height, reach),
		}
	}

	w := c.Spawn.Weights
	if w.None < 0 || w.Spike < 0 || w.PlatformUp < 0 || w.PlatformDown < 0 || w.Total() == 0 {
		return ValidationError{
			Code:    "BAD_WEIGHTS",
			Message: "spawn weights must be non-negative with a positive total",
		}
	}

	halfCycles := 2 * c.Shake.Frequency * c.Shake.Duration
	if math.Abs(halfCycles-math.Round(halfCycles)) > 1e-9 {
		return ValidationError{
			Code:    "SHAKE_PHASE",
			Message: fmt.Sprintf("2 * shake.frequency * shake.duration must be whole, got %v", halfCycles),
		}
	}

	if c.Shake.Magnitude < 0 || c.Frame.MaxDelta < 0 || c.Frame.FPSWindow < 0 {
		return ValidationError{
			Code:    "NEGATIVE",
			Message: "shake.magnitude, frame.max_delta and frame.fps_window must not be negative",
		}
	}

	return nil
}
