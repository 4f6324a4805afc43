package flappy

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/physics"
)

// Obstacle is a pair of walls separated by a slit, plus the score trigger
// the bird enters right after clearing them.
type Obstacle struct {
	Lower   *physics.Body
	Upper   *physics.Body
	Trigger *physics.Body

	travelled float64 // leftward distance scrolled since spawn
}

// Bodies returns the obstacle's bodies, walls first.
func (o *Obstacle) Bodies() []*physics.Body {
	return []*physics.Body{o.Lower, o.Upper, o.Trigger}
}

// X returns the horizontal center of the wall pair.
func (o *Obstacle) X() float64 {
	return o.Lower.Position.X()
}

// SlitBounds returns the bottom and top y of the gap between the walls.
func (o *Obstacle) SlitBounds() (bottom, top float64) {
	_, _, _, bottom = o.Lower.Bounds()
	_, top, _, _ = o.Upper.Bounds()
	return bottom, top
}

func (o *Obstacle) shift(dx float64) {
	for _, b := range o.Bodies() {
		b.Translate(dx, 0)
	}
	o.travelled -= dx
}

// Spawner creates obstacles on a fixed interval of scrolled time and retires
// them once they have crossed the world.
type Spawner struct {
	cfg       config.FlappyConfig
	rng       *rand.Rand
	nextID    physics.BodyID
	timer     float64 // time until the next spawn; <= 0 spawns
	obstacles []*Obstacle
}

// NewSpawner creates a spawner. Body IDs are allocated upward from firstID.
// The first obstacle is spawned on the first Advance.
func NewSpawner(cfg config.FlappyConfig, seed int64, firstID physics.BodyID) *Spawner {
	return &Spawner{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
		nextID:    firstID,
		obstacles: make([]*Obstacle, 0, 4),
	}
}

// Advance moves the spawn clock by dt seconds of scrolled time, retiring
// obstacles that finished their traversal and spawning when due. It returns
// the obstacles spawned during this call. A zero dt (frozen world) does
// nothing.
func (s *Spawner) Advance(dt float64) []*Obstacle {
	if dt <= 0 {
		return nil
	}
	s.retire()

	var spawned []*Obstacle
	s.timer -= dt
	for s.timer <= 0 {
		spawned = append(spawned, s.Spawn())
		s.timer += s.cfg.Obstacles.SpawnInterval
	}
	return spawned
}

// Spawn creates one obstacle at the right edge of the world with a random
// vertical offset and adds it to the live set.
func (s *Spawner) Spawn() *Obstacle {
	obs := s.cfg.Obstacles
	wallW, wallH := obs.WallWidth, obs.WallHeight

	x := s.cfg.World.Width + wallW/2
	lowerY := s.cfg.BaseLowestY() + s.rng.Float64()*s.cfg.RandomRange()
	upperY := lowerY + wallH + s.cfg.SlitLength()

	o := &Obstacle{
		Lower: s.wall(x, lowerY),
		Upper: s.wall(x, upperY),
		Trigger: &physics.Body{
			ID:          s.id(),
			Position:    mgl64.Vec2{x + wallW + s.cfg.Bird.Width/2, s.cfg.World.Height / 2},
			Shape:       physics.Rectangle(wallW, s.cfg.World.Height),
			Category:    physics.CategoryScoreTrigger,
			ContactWith: physics.CategoryBird,
			Static:      true,
		},
	}
	s.obstacles = append(s.obstacles, o)
	return o
}

func (s *Spawner) wall(x, y float64) *physics.Body {
	return &physics.Body{
		ID:       s.id(),
		Position: mgl64.Vec2{x, y},
		Shape:    physics.Rectangle(s.cfg.Obstacles.WallWidth, s.cfg.Obstacles.WallHeight),
		Category: physics.CategoryWall,
		Static:   true,
	}
}

func (s *Spawner) id() physics.BodyID {
	id := s.nextID
	s.nextID++
	return id
}

// retire drops obstacles that have scrolled the full traversal distance.
func (s *Spawner) retire() {
	distance := s.cfg.World.Width + s.cfg.Obstacles.WallWidth
	live := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.travelled < distance-1e-9 {
			live = append(live, o)
		}
	}
	for i := len(live); i < len(s.obstacles); i++ {
		s.obstacles[i] = nil
	}
	s.obstacles = live
}

// Clear removes every live obstacle. The spawn clock keeps running.
func (s *Spawner) Clear() {
	for i := range s.obstacles {
		s.obstacles[i] = nil
	}
	s.obstacles = s.obstacles[:0]
}

// Obstacles returns the live obstacles, oldest first.
func (s *Spawner) Obstacles() []*Obstacle {
	return s.obstacles
}
