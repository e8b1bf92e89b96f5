package headless

import "github.com/vovakirdan/box-jump/internal/core"

// Script produces the input for the frame starting at elapsed seconds.
type Script func(elapsed float64) core.InputFrame

// Idle never presses anything.
func Idle() Script {
	return func(float64) core.InputFrame {
		return core.NewInputFrame()
	}
}

// JumpEvery taps jump at t = 0 and then every interval seconds. Each press
// is released on the following frame. A non-positive interval never jumps.
func JumpEvery(interval float64) Script {
	next := 0.0
	pressed := false
	return func(elapsed float64) core.InputFrame {
		in := core.NewInputFrame()
		if pressed {
			in.Set(core.ActionJumpRelease)
			pressed = false
		}
		if interval > 0 && elapsed+core.Epsilon >= next {
			in.Set(core.ActionJump)
			pressed = true
			for next <= elapsed+core.Epsilon {
				next += interval
			}
		}
		return in
	}
}

// HoldJump keeps jump pressed for the whole run.
func HoldJump() Script {
	first := true
	return func(float64) core.InputFrame {
		in := core.NewInputFrame()
		if first {
			in.Set(core.ActionJump)
			first = false
		}
		return in
	}
}
