package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("flappy", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("flappy", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("flappy", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("other", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for flappy
	scores, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for dino
	otherScores, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(otherScores) != 1 {
		t.Errorf("Expected 1 other score, got %d", len(otherScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("flappy", 100)
	store.SaveScore("flappy", 200)
	store.SetBestScore("flappy", 200)
	store.SaveScore("other", 300)

	// Clear only flappy scores
	err = store.ClearScores("flappy")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Flappy should be empty
	flappyScores, _ := store.TopScores("flappy", 10)
	if len(flappyScores) != 0 {
		t.Errorf("Expected 0 flappy scores after clear, got %d", len(flappyScores))
	}
	if best, _ := store.BestScore("flappy"); best != 0 {
		t.Errorf("Expected best score to be cleared, got %d", best)
	}

	// Other should still have scores
	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Errorf("Other scores should not be affected by clearing flappy")
	}
}

func TestStoreBestScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Nothing stored yet
	best, err := store.BestScore("flappy")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best score of 0 for empty game, got %d", best)
	}

	// Higher writes raise the best, lower ones are ignored
	for _, score := range []int{3, 9, 4} {
		if err := store.SetBestScore("flappy", score); err != nil {
			t.Fatalf("SetBestScore(%d) failed: %v", score, err)
		}
	}
	store.SetBestScore("other", 42)

	best, err = store.BestScore("flappy")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 9 {
		t.Errorf("Expected best score of 9, got %d", best)
	}
}

func TestStoreBestScoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	scores := store.Game("flappy")
	if err := scores.SetBest(17); err != nil {
		t.Fatalf("SetBest() failed: %v", err)
	}
	if err := scores.SaveRun(17); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	scores.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	best, err := store.Game("flappy").GetBest()
	if err != nil || best != 17 {
		t.Errorf("GetBest() after reopen = %d, %v; expected 17", best, err)
	}
	runs, err := store.Game("flappy").TopRuns(5)
	if err != nil || len(runs) != 1 || runs[0].Score != 17 {
		t.Errorf("TopRuns() after reopen = %v, %v", runs, err)
	}
}

func TestStoreGameStats(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, score := range []int{2, 4, 9} {
		store.SaveScore("flappy", score)
	}

	stats, err := store.GetGameStats("flappy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 9 || stats.AvgScore != 5 {
		t.Errorf("unexpected stats: %+v", stats)
	}

	bound, err := store.Game("flappy").Stats()
	if err != nil || bound.GamesCount != 3 || bound.LastPlayed.IsZero() {
		t.Errorf("GameScores.Stats() = %+v, %v", bound, err)
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty game stats: %+v", empty)
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/bird")

	tests := []struct {
		in, expected string
	}{
		{"~/.flappy/scores.db", "/home/bird/.flappy/scores.db"},
		{"/var/lib/scores.db", "/var/lib/scores.db"},
		{"", ""},
	}
	for _, tc := range tests {
		got, err := ExpandHome(tc.in)
		if err != nil {
			t.Fatalf("ExpandHome(%q) failed: %v", tc.in, err)
		}
		if got != tc.expected {
			t.Errorf("ExpandHome(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreBestScoreIsMonotonicAcrossWriters(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	var wg sync.WaitGroup
	for score := 1; score <= 20; score++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.Game("flappy").SetBest(score); err != nil {
				t.Errorf("SetBest(%d) failed: %v", score, err)
			}
		}()
	}
	wg.Wait()

	if best, _ := store.BestScore("flappy"); best != 20 {
		t.Errorf("Expected best score of 20 after concurrent writes, got %d", best)
	}
}
