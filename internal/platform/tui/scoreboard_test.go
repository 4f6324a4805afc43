package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// statsHistory is a fakeHistory that also summarizes its runs.
type statsHistory struct {
	fakeHistory
	stats storage.GameStats
}

func (h *statsHistory) Stats() (*storage.GameStats, error) {
	if h.err != nil {
		return nil, h.err
	}
	s := h.stats
	return &s, nil
}

func TestScoreboardSidebarShowsStats(t *testing.T) {
	played := time.Date(2026, time.March, 4, 18, 30, 0, 0, time.UTC)
	h := &statsHistory{
		fakeHistory: fakeHistory{saved: []int{9, 3}},
		stats:       storage.GameStats{GamesCount: 5, HighScore: 9, AvgScore: 4.4, LastPlayed: played},
	}

	m := NewScoreboardModel("Flappy", 0, h, 100, 30)
	if m.Stats() == nil || m.Stats().GamesCount != 5 {
		t.Fatalf("Stats() = %+v, expected 5 runs", m.Stats())
	}

	view := m.View()
	for _, want := range []string{"Runs: 5", "Average: 4.4", "Mar 04 18:30"} {
		if !strings.Contains(view, want) {
			t.Errorf("sidebar missing %q", want)
		}
	}
}

func TestScoreboardWithoutStatsCountsRows(t *testing.T) {
	h := &fakeHistory{saved: []int{6, 2, 1}}

	m := NewScoreboardModel("Flappy", 0, h, 100, 30)
	if m.Stats() != nil {
		t.Errorf("Stats() = %+v, expected nil", m.Stats())
	}
	if !strings.Contains(m.View(), "Runs: 3") {
		t.Error("sidebar should count listed runs")
	}
	if m.Best() != 6 {
		t.Errorf("Best() = %d, expected 6", m.Best())
	}
}

func TestScoreboardMemoryStats(t *testing.T) {
	mem := storage.NewMemory()
	for _, score := range []int{2, 4} {
		mem.SaveRun(score)
	}

	m := NewScoreboardModel("Flappy", 0, mem, 100, 30)
	if !strings.Contains(m.View(), "Average: 3.0") {
		t.Error("sidebar should show the memory store average")
	}
}
