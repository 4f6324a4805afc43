package flappy

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-flappy/internal/physics"
)

// SpriteKind identifies what a sprite depicts.
type SpriteKind int

const (
	SpriteCloud SpriteKind = iota
	SpriteGround
	SpriteWall
	SpriteScoreTrigger
	SpriteBird
)

// Bird animation frames.
const (
	FrameWingsUp   = 0
	FrameWingsDown = 1
	birdFrameCount = 2
)

// Sprite is one drawable element of a frame.
type Sprite struct {
	Kind     SpriteKind
	Position mgl64.Vec2 // center, world units
	Shape    physics.Shape
	Frame    int     // animation frame, bird only
	Rotation float64 // radians, bird only
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	WorldW, WorldH float64
	Sprites        []Sprite // back to front
	ScoreText      string
	BestText       string
	State          State
	Settled        bool
}

// Snapshot captures the current frame.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		WorldW:    g.cfg.World.Width,
		WorldH:    g.cfg.World.Height,
		ScoreText: g.session.ScoreText(),
		BestText:  g.session.BestText(),
		State:     g.session.State(),
		Settled:   g.halted,
	}

	layers := g.scroll.Layers()
	clouds, ground := layers[0], layers[1]
	snap.Sprites = appendTiles(snap.Sprites, SpriteCloud, clouds)

	for _, o := range g.spawner.Obstacles() {
		for _, b := range o.Bodies() {
			kind := SpriteWall
			if b.Category.Has(physics.CategoryScoreTrigger) {
				kind = SpriteScoreTrigger
			}
			snap.Sprites = append(snap.Sprites, Sprite{Kind: kind, Position: b.Position, Shape: b.Shape})
		}
	}

	snap.Sprites = appendTiles(snap.Sprites, SpriteGround, ground)
	snap.Sprites = append(snap.Sprites, Sprite{
		Kind:     SpriteBird,
		Position: g.bird.Position,
		Shape:    g.bird.Shape,
		Frame:    g.birdFrame(),
		Rotation: g.bird.Rotation,
	})
	return snap
}

func appendTiles(dst []Sprite, kind SpriteKind, l Layer) []Sprite {
	for i := 0; i < l.Count; i++ {
		dst = append(dst, Sprite{
			Kind:     kind,
			Position: mgl64.Vec2{l.TileX(i), l.Y},
			Shape:    physics.Rectangle(l.TileWidth, l.TileHeight),
		})
	}
	return dst
}

// birdFrame returns the flap animation frame. The animation stops with the
// bird once it is halted.
func (g *Game) birdFrame() int {
	d := g.cfg.Bird.FrameDuration
	if d <= 0 {
		return FrameWingsUp
	}
	return int(g.flapTime/d) % birdFrameCount
}
