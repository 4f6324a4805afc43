// Package flappy implements a Flappy Bird-style game.
// The player taps to make the bird flap, passes through the slits of
// scrolling wall pairs to score, and loses on touching a wall or the ground.
package flappy

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/physics"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// GameID keys the game's records in score storage.
const GameID = "flappy"

// Fixed body IDs. Obstacle bodies are numbered from firstObstacleID.
const (
	birdID physics.BodyID = iota + 1
	groundID
	firstObstacleID
)

// maxBirdStep bounds one bird integration step, so at low tick rates the
// bird cannot cross the ground between two collision checks.
const maxBirdStep = 1.0 / 60.0

// birdMask is what the bird collides with and reports contacts for while
// alive.
const birdMask = physics.CategoryGround | physics.CategoryWall

// Game implements the game loop.
//
// Each tick runs in a fixed order: queued taps, scrolling and spawning,
// bird integration, contact detection and classification, physical
// separation, then the game over settling timer.
type Game struct {
	cfg     config.FlappyConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	store   ScoreStore
	gravity mgl64.Vec2

	bird    *physics.Body
	scroll  *ScrollController
	spawner *Spawner
	session *Session

	contacts  map[physics.BodyID]bool // bodies touching the bird last tick
	taps      int                     // queued taps for the next tick
	flapTime  float64                 // drives the flap animation
	halted    bool                    // bird simulation stopped after settling
	rollSpeed float64                 // radians per second while settling
	runEnded  bool                    // a lethal contact happened this tick
}

// Option configures a Game.
type Option func(*Game)

// WithConfig sets the world configuration.
func WithConfig(cfg config.FlappyConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithStore sets the best score store.
func WithStore(store ScoreStore) Option {
	return func(g *Game) { g.store = store }
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// New creates a game ready to play with the default runtime config.
// Without options it uses the built-in world, an in-memory store and a
// logger that discards everything. An invalid world config is replaced by
// the built-in one.
func New(opts ...Option) *Game {
	g := &Game{cfg: config.DefaultFlappyConfig()}
	for _, opt := range opts {
		opt(g)
	}
	if g.store == nil {
		g.store = storage.NewMemory()
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if err := g.cfg.Validate(); err != nil {
		g.logger.Warn("invalid config, using defaults", "err", err)
		g.cfg = config.DefaultFlappyConfig()
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset rebuilds the world from scratch for a runtime config. The best score
// is reloaded from the store.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.gravity = mgl64.Vec2{0, g.cfg.Physics.Gravity}

	g.bird = &physics.Body{
		ID:           birdID,
		Shape:        physics.Circle(g.cfg.Bird.Height / 2),
		Category:     physics.CategoryBird,
		CollidesWith: birdMask,
		ContactWith:  birdMask,
	}
	g.scroll = NewScrollController(g.cfg, groundID)
	g.spawner = NewSpawner(g.cfg, rc.Seed, firstObstacleID)
	g.session = NewSession(g.store, g.cfg.Session.SettleDuration, g.logger)
	g.resetBird()

	g.contacts = make(map[physics.BodyID]bool)
	g.taps = 0
	g.runEnded = false

	g.logger.Info("session start", "seed", rc.Seed, "best", g.session.Best())
}

// startPosition returns where the bird starts a run.
func (g *Game) startPosition() mgl64.Vec2 {
	return mgl64.Vec2{
		g.cfg.World.Width * g.cfg.Bird.StartX,
		g.cfg.World.Height * g.cfg.Bird.StartY,
	}
}

func (g *Game) resetBird() {
	g.bird.Position = g.startPosition()
	g.bird.ResetVelocity()
	g.bird.Rotation = 0
	g.bird.CollidesWith = birdMask
	g.halted = false
	g.rollSpeed = 0
	g.flapTime = 0
}

// OnInput queues a tap. Taps are applied at the start of the next tick.
func (g *Game) OnInput() {
	g.taps++
}

// Tick advances the game by dt seconds.
func (g *Game) Tick(dt float64) {
	if dt <= 0 {
		return
	}

	g.applyTaps()

	scrolled := g.scroll.Advance(dt, g.spawner.Obstacles())
	for _, o := range g.spawner.Advance(scrolled) {
		bottom, top := o.SlitBounds()
		g.logger.Debug("spawn obstacle", "slit_bottom", bottom, "slit_top", top)
	}

	if !g.halted {
		g.integrateBird(dt)
		g.flapTime += dt
	}

	g.detectContacts()
	g.separate()
	g.settle(dt)
}

// integrateBird moves the bird in steps of at most maxBirdStep and stops
// early once it runs into a body that blocks it.
func (g *Game) integrateBird(dt float64) {
	steps := max(int(math.Ceil(dt/maxBirdStep-1e-9)), 1)
	step := dt / float64(steps)
	for i := 0; i < steps; i++ {
		g.bird.Integrate(step, g.gravity)
		if g.blocked() {
			return
		}
	}
}

// blocked reports whether the bird overlaps a body that blocks it.
func (g *Game) blocked() bool {
	for _, other := range g.bodies() {
		if g.bird.Blocks(other) && physics.Overlaps(g.bird, other) {
			return true
		}
	}
	return false
}

func (g *Game) applyTaps() {
	for ; g.taps > 0; g.taps-- {
		switch {
		case g.session.State() == Playing:
			g.bird.ResetVelocity()
			g.bird.ApplyImpulse(mgl64.Vec2{0, g.cfg.Physics.FlapImpulse})
		case g.session.Settled():
			g.Restart()
		}
	}
}

// bodies returns every body the bird can touch.
func (g *Game) bodies() []*physics.Body {
	bodies := []*physics.Body{g.scroll.Ground()}
	for _, o := range g.spawner.Obstacles() {
		bodies = append(bodies, o.Bodies()...)
	}
	return bodies
}

// detectContacts finds the bodies overlapping the bird and handles those
// whose contact began this tick.
func (g *Game) detectContacts() {
	current := make(map[physics.BodyID]bool, len(g.contacts))
	for _, other := range g.bodies() {
		if !g.bird.Reports(other) || !physics.Overlaps(g.bird, other) {
			continue
		}
		current[other.ID] = true
		if !g.contacts[other.ID] {
			g.beginContact(other)
		}
	}
	g.contacts = current
}

func (g *Game) beginContact(other *physics.Body) {
	if g.session.State() != Playing {
		return
	}

	switch Classify(g.bird.Category, other.Category) {
	case ScoreEvent:
		newBest := g.session.RecordScore()
		g.logger.Debug("score", "score", g.session.Score(), "new_best", newBest)
	case LethalEvent:
		g.gameOver(other)
	}
}

func (g *Game) gameOver(cause *physics.Body) {
	if !g.session.EnterGameOver() {
		return
	}
	g.runEnded = true
	g.scroll.SetSpeed(0)
	g.bird.CollidesWith = physics.CategoryGround
	g.rollSpeed = math.Pi * g.bird.Position.Y() * g.cfg.Session.RollFactor / g.cfg.Session.SettleDuration

	g.logger.Info("game over",
		"score", g.session.Score(),
		"best", g.session.Best(),
		"hit", cause.Category)
}

// separate pushes the bird out of the bodies that block it.
func (g *Game) separate() {
	if g.halted {
		return
	}
	for _, other := range g.bodies() {
		if g.bird.Blocks(other) {
			g.bird.Separate(other)
		}
	}
}

// settle runs the game over roll. When it completes the bird is halted and
// a tap restarts.
func (g *Game) settle(dt float64) {
	elapsed, done := g.session.advanceSettle(dt)
	g.bird.Rotation += g.rollSpeed * elapsed
	if done {
		g.halted = true
		g.logger.Debug("bird settled", "rotation", g.bird.Rotation)
	}
}

// Restart starts a new run: score 0, bird back at the start, obstacles
// cleared, world scrolling again.
func (g *Game) Restart() {
	g.session.Reset()
	g.resetBird()
	g.spawner.Clear()
	g.scroll.SetSpeed(1)
	g.contacts = make(map[physics.BodyID]bool)

	g.logger.Info("restart", "best", g.session.Best())
}

// Step advances the game by one fixed tick with the input collected since
// the previous one.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for i := 0; i < in.Count(core.ActionFlap); i++ {
		g.OnInput()
	}
	g.runEnded = false
	g.Tick(g.runtime.TickSeconds())
	return core.StepResult{State: g.State(), RunEnded: g.runEnded}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		Best:     g.session.Best(),
		GameOver: g.session.State() == GameOver,
		Settled:  g.halted,
	}
}

// Session returns the score and state machine.
func (g *Game) Session() *Session {
	return g.session
}

// Scroll returns the scroll controller.
func (g *Game) Scroll() *ScrollController {
	return g.scroll
}
