package config

import (
	_ "embed"
)

//go:embed defaults/boxjump.yaml
var defaultBoxJumpYAML []byte

// DefaultBoxJumpConfig returns the built-in configuration.
// Mirrors defaults/boxjump.yaml and is used if the embedded file cannot be parsed.
func DefaultBoxJumpConfig() BoxJumpConfig {
	return BoxJumpConfig{
		Screen: ScreenConfig{
			Width:        800,
			Height:       600,
			GroundOffset: 100,
		},
		Box: BoxConfig{
			X:     150,
			Size:  50,
			Speed: 750,
		},
		Jump: JumpConfig{
			Height:    200,
			Duration:  0.5,
			MaxRotate: 180,
		},
		Obstacle: ObstacleConfig{
			Size: 50,
		},
		Spawn: SpawnConfig{
			MinGapBoxes: 4.5,
			MaxLevel:    2,
			Weights: SpawnWeights{
				None:         90,
				Spike:        6,
				PlatformUp:   2,
				PlatformDown: 2,
			},
		},
		Shake: ShakeConfig{
			Magnitude: 20,
			Duration:  0.5,
			Frequency: 10,
		},
		Frame: FrameConfig{
			MaxDelta:  0.1,
			FPSWindow: 0.5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBoxJumpYAML
}
