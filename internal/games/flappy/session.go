package flappy

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// ScoreStore persists the best score. GetBest returns 0 when nothing has
// been stored yet.
type ScoreStore interface {
	GetBest() (int, error)
	SetBest(score int) error
}

// State is the session state.
type State int

const (
	Playing State = iota
	GameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Playing:
		return "Playing"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// settleEpsilon absorbs float drift when summing fixed ticks.
const settleEpsilon = 1e-9

// Session holds the score, the best score and the Playing/GameOver state.
// GameOver starts in a settling phase lasting settleDuration seconds; once
// it runs out the session is settled and a restart is accepted.
//
// Store failures never reach the caller: they are logged and the session
// carries on with what it has in memory.
type Session struct {
	store          ScoreStore
	logger         *log.Logger
	settleDuration float64

	score  int
	best   int
	state  State
	settle float64 // remaining settling time while GameOver
}

// NewSession creates a Playing session and loads the best score from store.
func NewSession(store ScoreStore, settleDuration float64, logger *log.Logger) *Session {
	s := &Session{
		store:          store,
		logger:         logger,
		settleDuration: settleDuration,
	}
	s.best = s.loadBest()
	return s
}

func (s *Session) loadBest() int {
	best, err := s.store.GetBest()
	if err != nil {
		s.logger.Warn("failed to read best score", "err", err)
		return 0
	}
	if best < 0 {
		return 0
	}
	return best
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Best returns the best score known to the session.
func (s *Session) Best() int { return s.best }

// State returns the current state.
func (s *Session) State() State { return s.state }

// Settling reports whether the game over animation is still running.
func (s *Session) Settling() bool {
	return s.state == GameOver && s.settle > settleEpsilon
}

// Settled reports whether the session is in GameOver and done settling.
func (s *Session) Settled() bool {
	return s.state == GameOver && s.settle <= settleEpsilon
}

// ScoreText returns the score display string.
func (s *Session) ScoreText() string {
	return fmt.Sprintf("Score:%d", s.score)
}

// BestText returns the best score display string.
func (s *Session) BestText() string {
	return fmt.Sprintf("Best Score:%d", s.best)
}

// RecordScore adds one point while Playing and persists a new best. It
// reports whether the best score was raised.
func (s *Session) RecordScore() bool {
	if s.state != Playing {
		return false
	}
	s.score++

	// Another session may share the store and have raised the record.
	if stored, err := s.store.GetBest(); err == nil && stored > s.best {
		s.best = stored
	}
	if s.score <= s.best {
		return false
	}

	s.best = s.score
	if err := s.store.SetBest(s.best); err != nil {
		s.logger.Warn("failed to persist best score", "best", s.best, "err", err)
	}
	return true
}

// EnterGameOver switches a Playing session to GameOver and starts settling.
// It reports whether the state changed.
func (s *Session) EnterGameOver() bool {
	if s.state != Playing {
		return false
	}
	s.state = GameOver
	s.settle = s.settleDuration
	return true
}

// advanceSettle consumes up to dt seconds of settling time. It returns the
// time consumed and whether settling finished during this call.
func (s *Session) advanceSettle(dt float64) (float64, bool) {
	if !s.Settling() || dt <= 0 {
		return 0, false
	}
	elapsed := dt
	if elapsed > s.settle {
		elapsed = s.settle
	}
	s.settle -= elapsed
	return elapsed, s.settle <= settleEpsilon
}

// Reset starts a new run: score 0, Playing. The best score is kept.
func (s *Session) Reset() {
	s.score = 0
	s.state = Playing
	s.settle = 0
}
