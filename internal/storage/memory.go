package storage

import (
	"sort"
	"sync"
	"time"
)

// Memory is a process-local store. It is used when nothing should touch the
// disk and as the fallback when a database cannot be opened.
type Memory struct {
	mu   sync.Mutex
	best int
	runs []ScoreEntry
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// GetBest returns the best score.
func (m *Memory) GetBest() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best, nil
}

// SetBest raises the best score to score; lower scores are ignored.
func (m *Memory) SetBest(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.best = max(m.best, score)
	return nil
}

// SaveRun appends a finished run.
func (m *Memory) SaveRun(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, ScoreEntry{
		ID:        int64(len(m.runs) + 1),
		Score:     score,
		CreatedAt: time.Now(),
	})
	return nil
}

// TopRuns returns up to limit runs, best first.
func (m *Memory) TopRuns(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	m.mu.Lock()
	runs := make([]ScoreEntry, len(m.runs))
	copy(runs, m.runs)
	m.mu.Unlock()

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Score > runs[j].Score
	})
	if len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// Stats summarizes the recorded runs.
func (m *Memory) Stats() (*GameStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := &GameStats{GamesCount: len(m.runs)}
	if len(m.runs) == 0 {
		return stats, nil
	}
	total := 0
	for _, r := range m.runs {
		total += r.Score
		stats.HighScore = max(stats.HighScore, r.Score)
	}
	stats.AvgScore = float64(total) / float64(len(m.runs))
	stats.LastPlayed = m.runs[len(m.runs)-1].CreatedAt
	return stats, nil
}

// Clear drops the best score and all runs.
func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.best = 0
	m.runs = nil
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
