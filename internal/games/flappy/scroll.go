package flappy

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/physics"
)

// Layer is a strip of identical tiles scrolling left. Every tile moves by
// the same Offset; when a tile has moved one full tile width the whole strip
// jumps back right by that width, so the loop is seamless.
type Layer struct {
	Name       string
	TileWidth  float64
	TileHeight float64
	Y          float64 // center y of every tile
	Count      int
	Offset     float64 // in [0, TileWidth)
	Speed      float64 // units per second at speed multiplier 1
}

func newLayer(name string, worldW, tileW, tileH, y, speed float64) Layer {
	return Layer{
		Name:       name,
		TileWidth:  tileW,
		TileHeight: tileH,
		Y:          y,
		Count:      int(worldW/tileW) + 2,
		Speed:      speed,
	}
}

// TileX returns the center x of tile i.
func (l Layer) TileX(i int) float64 {
	return l.TileWidth/2 + l.TileWidth*float64(i) - l.Offset
}

// Span returns the total width covered by the tiles.
func (l Layer) Span() float64 {
	return l.TileWidth * float64(l.Count)
}

func (l *Layer) advance(dx float64) {
	l.Offset += dx
	for l.Offset >= l.TileWidth {
		l.Offset -= l.TileWidth
	}
}

// ScrollController moves everything that scrolls: the ground and cloud
// layers and the obstacles. A single speed multiplier scales all of it;
// 0 freezes the world.
type ScrollController struct {
	speed     float64
	wallSpeed float64
	ground    Layer
	clouds    Layer

	// groundBody is the physical ground. It spans the whole ground layer and
	// follows its offset.
	groundBody *physics.Body
}

// NewScrollController creates a controller running at speed 1 whose ground
// body gets the given ID.
func NewScrollController(cfg config.FlappyConfig, groundID physics.BodyID) *ScrollController {
	w := cfg.World
	s := &ScrollController{
		speed:     1,
		wallSpeed: cfg.WallSpeed(),
		ground:    newLayer("ground", w.Width, w.GroundTileWidth, w.GroundHeight, w.GroundHeight/2, cfg.GroundSpeed()),
		clouds:    newLayer("clouds", w.Width, w.CloudTileWidth, w.CloudHeight, w.Height-w.CloudHeight/2, cfg.CloudSpeed()),
	}
	s.groundBody = &physics.Body{
		ID:       groundID,
		Shape:    physics.Rectangle(s.ground.Span(), w.GroundHeight),
		Category: physics.CategoryGround,
		Static:   true,
	}
	s.syncGround()
	return s
}

// Advance scrolls the world by dt seconds of wall-clock time and returns the
// scaled time that actually elapsed for the scrolled world.
func (s *ScrollController) Advance(dt float64, obstacles []*Obstacle) float64 {
	scaled := dt * s.speed
	if scaled <= 0 {
		return 0
	}

	s.ground.advance(s.ground.Speed * scaled)
	s.clouds.advance(s.clouds.Speed * scaled)
	s.syncGround()

	dx := -s.wallSpeed * scaled
	for _, o := range obstacles {
		o.shift(dx)
	}
	return scaled
}

func (s *ScrollController) syncGround() {
	s.groundBody.Position = mgl64.Vec2{s.ground.Span()/2 - s.ground.Offset, s.ground.Y}
}

// SetSpeed sets the speed multiplier. Negative values are treated as 0.
func (s *ScrollController) SetSpeed(speed float64) {
	if speed < 0 {
		speed = 0
	}
	s.speed = speed
}

// Speed returns the speed multiplier.
func (s *ScrollController) Speed() float64 {
	return s.speed
}

// Layers returns the ground and cloud layers, back to front.
func (s *ScrollController) Layers() []Layer {
	return []Layer{s.clouds, s.ground}
}

// Ground returns the ground body.
func (s *ScrollController) Ground() *physics.Body {
	return s.groundBody
}
