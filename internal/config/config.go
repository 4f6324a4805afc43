// Package config provides YAML-based game configuration loading and
// validation for the flappy game.
package config

import (
	"errors"
	"fmt"
)

// FlappyConfig contains all configuration for the game world.
// Lengths are world units (points), times are seconds, y points up.
type FlappyConfig struct {
	World     WorldConfig    `yaml:"world"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Bird      BirdConfig     `yaml:"bird"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Scroll    ScrollConfig   `yaml:"scroll"`
	Session   SessionConfig  `yaml:"session"`
}

// WorldConfig defines the visible world and its scrolling layers.
type WorldConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	GroundHeight    float64 `yaml:"ground_height"`
	GroundTileWidth float64 `yaml:"ground_tile_width"`
	CloudTileWidth  float64 `yaml:"cloud_tile_width"`
	CloudHeight     float64 `yaml:"cloud_height"`
}

// PhysicsConfig defines gravity and the flap impulse.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // vertical acceleration, negative = down
	FlapImpulse float64 `yaml:"flap_impulse"` // vertical velocity set by a tap
}

// BirdConfig defines the player body.
type BirdConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	StartX        float64 `yaml:"start_x"` // fraction of world width
	StartY        float64 `yaml:"start_y"` // fraction of world height
	FrameDuration float64 `yaml:"frame_duration"`
}

// ObstacleConfig defines wall pairs and their spawning.
type ObstacleConfig struct {
	WallWidth        float64 `yaml:"wall_width"`
	WallHeight       float64 `yaml:"wall_height"`
	SpawnInterval    float64 `yaml:"spawn_interval"`
	TraverseDuration float64 `yaml:"traverse_duration"` // time to cross width + wall width
	SlitFactor       float64 `yaml:"slit_factor"`       // slit length in bird heights
	RangeFactor      float64 `yaml:"range_factor"`      // random band in bird heights
}

// ScrollConfig defines the loop periods of the background layers.
type ScrollConfig struct {
	GroundLoopDuration float64 `yaml:"ground_loop_duration"`
	CloudLoopDuration  float64 `yaml:"cloud_loop_duration"`
}

// SessionConfig defines the game over animation.
type SessionConfig struct {
	SettleDuration float64 `yaml:"settle_duration"`
	RollFactor     float64 `yaml:"roll_factor"` // roll = pi * y * factor radians
}

// SlitLength returns the vertical gap between the two walls of a pair.
func (c FlappyConfig) SlitLength() float64 {
	return c.Bird.Height * c.Obstacles.SlitFactor
}

// RandomRange returns the width of the band the lower wall is offset within.
func (c FlappyConfig) RandomRange() float64 {
	return c.Bird.Height * c.Obstacles.RangeFactor
}

// BaseLowestY returns the lowest possible center of a lower wall. The band
// [BaseLowestY, BaseLowestY+RandomRange) is centered on the playable area
// above the ground.
func (c FlappyConfig) BaseLowestY() float64 {
	centerY := c.World.GroundHeight + (c.World.Height-c.World.GroundHeight)/2
	return centerY - c.SlitLength()/2 - c.Obstacles.WallHeight/2 - c.RandomRange()/2
}

// WallSpeed returns the leftward speed of obstacles.
func (c FlappyConfig) WallSpeed() float64 {
	return (c.World.Width + c.Obstacles.WallWidth) / c.Obstacles.TraverseDuration
}

// GroundSpeed returns the leftward speed of the ground layer.
func (c FlappyConfig) GroundSpeed() float64 {
	return c.World.GroundTileWidth / c.Scroll.GroundLoopDuration
}

// CloudSpeed returns the leftward speed of the cloud layer.
func (c FlappyConfig) CloudSpeed() float64 {
	return c.World.CloudTileWidth / c.Scroll.CloudLoopDuration
}

// Validate checks that every field is usable and that the slit can never
// leave the playable area for any random offset.
func (c FlappyConfig) Validate() error {
	var errs []error

	positive := []struct {
		name  string
		value float64
	}{
		{"world.width", c.World.Width},
		{"world.height", c.World.Height},
		{"world.ground_height", c.World.GroundHeight},
		{"world.ground_tile_width", c.World.GroundTileWidth},
		{"world.cloud_tile_width", c.World.CloudTileWidth},
		{"world.cloud_height", c.World.CloudHeight},
		{"physics.flap_impulse", c.Physics.FlapImpulse},
		{"bird.width", c.Bird.Width},
		{"bird.height", c.Bird.Height},
		{"bird.frame_duration", c.Bird.FrameDuration},
		{"obstacles.wall_width", c.Obstacles.WallWidth},
		{"obstacles.wall_height", c.Obstacles.WallHeight},
		{"obstacles.spawn_interval", c.Obstacles.SpawnInterval},
		{"obstacles.traverse_duration", c.Obstacles.TraverseDuration},
		{"obstacles.slit_factor", c.Obstacles.SlitFactor},
		{"obstacles.range_factor", c.Obstacles.RangeFactor},
		{"scroll.ground_loop_duration", c.Scroll.GroundLoopDuration},
		{"scroll.cloud_loop_duration", c.Scroll.CloudLoopDuration},
		{"session.settle_duration", c.Session.SettleDuration},
	}
	for _, p := range positive {
		if p.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", p.name, p.value))
		}
	}

	if c.Physics.Gravity >= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be negative, got %v", c.Physics.Gravity))
	}
	if c.World.GroundHeight >= c.World.Height {
		errs = append(errs, fmt.Errorf("world.ground_height %v must be below world.height %v",
			c.World.GroundHeight, c.World.Height))
	}
	if c.Bird.StartX <= 0 || c.Bird.StartX >= 1 {
		errs = append(errs, fmt.Errorf("bird.start_x must be in (0, 1), got %v", c.Bird.StartX))
	}
	if c.Bird.StartY <= 0 || c.Bird.StartY >= 1 {
		errs = append(errs, fmt.Errorf("bird.start_y must be in (0, 1), got %v", c.Bird.StartY))
	}

	// Slit bottom ranges over [base+wallH/2, base+wallH/2+range), its top adds
	// the slit length; both ends must stay strictly inside the playable area.
	if len(errs) == 0 {
		lowest := c.BaseLowestY() + c.Obstacles.WallHeight/2
		highest := lowest + c.RandomRange() + c.SlitLength()
		if lowest <= c.World.GroundHeight || highest >= c.World.Height {
			errs = append(errs, fmt.Errorf(
				"obstacles: slit band [%.1f, %.1f] leaves playable area (%.1f, %.1f); reduce slit_factor or range_factor",
				lowest, highest, c.World.GroundHeight, c.World.Height))
		}
	}

	return errors.Join(errs...)
}
