package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration. It matches the
// embedded defaults/flappy.yaml and is used when that cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: WorldConfig{
			Width:           375,
			Height:          667,
			GroundHeight:    100,
			GroundTileWidth: 336,
			CloudTileWidth:  300,
			CloudHeight:     100,
		},
		Physics: PhysicsConfig{
			Gravity:     -600,
			FlapImpulse: 330,
		},
		Bird: BirdConfig{
			Width:         34,
			Height:        26,
			StartX:        0.2,
			StartY:        0.7,
			FrameDuration: 0.2,
		},
		Obstacles: ObstacleConfig{
			WallWidth:        60,
			WallHeight:       420,
			SpawnInterval:    2,
			TraverseDuration: 4,
			SlitFactor:       3,
			RangeFactor:      3,
		},
		Scroll: ScrollConfig{
			GroundLoopDuration: 5,
			CloudLoopDuration:  20,
		},
		Session: SessionConfig{
			SettleDuration: 1,
			RollFactor:     0.01,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
