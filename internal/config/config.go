// Package config provides YAML-based loading and validation of the box jump
// tuning constants.
package config

// BoxJumpConfig contains all tunable constants of the game.
// All distances are world pixels, all durations seconds.
type BoxJumpConfig struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Box      BoxConfig      `yaml:"box"`
	Jump     JumpConfig     `yaml:"jump"`
	Obstacle ObstacleConfig `yaml:"obstacle"`
	Spawn    SpawnConfig    `yaml:"spawn"`
	Shake    ShakeConfig    `yaml:"shake"`
	Frame    FrameConfig    `yaml:"frame"`
}

// ScreenConfig defines the world dimensions.
type ScreenConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // Distance from the bottom edge to the ground line
}

// BoxConfig defines the player box.
type BoxConfig struct {
	X     float64 `yaml:"x"`     // Left edge of the box at rest
	Size  float64 `yaml:"size"`  // Side length
	Speed float64 `yaml:"speed"` // World scroll speed in pixels per second
}

// JumpConfig defines the jump arc.
type JumpConfig struct {
	Height    float64 `yaml:"height"`     // Apex height above the rest baseline
	Duration  float64 `yaml:"duration"`   // Seconds from take-off to landing
	MaxRotate float64 `yaml:"max_rotate"` // Degrees turned over a full jump
}

// ObstacleConfig defines obstacle geometry.
type ObstacleConfig struct {
	Size float64 `yaml:"size"` // Spike base width and height, pillar width and step height
}

// SpawnConfig defines procedural obstacle spawning.
type SpawnConfig struct {
	MinGapBoxes float64      `yaml:"min_gap_boxes"` // Landing room between spawns, in box sizes
	MaxLevel    int          `yaml:"max_level"`     // Highest platform level
	Weights     SpawnWeights `yaml:"weights"`
}

// SpawnWeights are the relative odds of each spawn decision per frame.
type SpawnWeights struct {
	None         int `yaml:"none"`
	Spike        int `yaml:"spike"`
	PlatformUp   int `yaml:"platform_up"`
	PlatformDown int `yaml:"platform_down"`
}

// Total returns the sum of all weights.
func (w SpawnWeights) Total() int {
	return w.None + w.Spike + w.PlatformUp + w.PlatformDown
}

// ShakeConfig defines the damped screen shake after a collision.
type ShakeConfig struct {
	Magnitude float64 `yaml:"magnitude"` // Peak horizontal offset
	Duration  float64 `yaml:"duration"`  // Seconds until the shake stops
	Frequency float64 `yaml:"frequency"` // Oscillations per second
}

// FrameConfig defines frame timing for the frontends.
type FrameConfig struct {
	MaxDelta  float64 `yaml:"max_delta"`  // Largest delta fed to the simulation
	FPSWindow float64 `yaml:"fps_window"` // Averaging window of the FPS counter
}

// GroundY returns the y coordinate of the ground line.
func (c BoxJumpConfig) GroundY() float64 {
	return c.Screen.Height - c.Screen.GroundOffset
}

// HalfObstacle returns half the obstacle size.
func (c BoxJumpConfig) HalfObstacle() float64 {
	return c.Obstacle.Size / 2
}

// Surface returns the y coordinate of the walkable surface at a platform level.
func (c BoxJumpConfig) Surface(level int) float64 {
	return c.GroundY() - float64(level)*c.Obstacle.Size
}

// Capacity returns the obstacle ring capacity: two obstacles per
// obstacle-width of screen.
func (c BoxJumpConfig) Capacity() int {
	return 2 * int(c.Screen.Width/c.Obstacle.Size)
}

// SpawnX returns the x coordinate new obstacles are written at.
func (c BoxJumpConfig) SpawnX() float64 {
	return c.Screen.Width + c.HalfObstacle()
}

// SpawnGapX returns the x the newest obstacle must scroll below before the
// next one may spawn.
func (c BoxJumpConfig) SpawnGapX() float64 {
	return c.Screen.Width - c.HalfObstacle() - c.Spawn.MinGapBoxes*c.Box.Size
}
