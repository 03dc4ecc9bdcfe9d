package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	if _, err := store.SaveScore(Result{GameID: gameID, Score: score}); err != nil {
		t.Fatalf("SaveScore(%s, %d) failed: %v", gameID, score, err)
	}
}

func TestOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	save(t, store, "blocks", 300)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore("blocks"); high != 300 {
		t.Errorf("high score after reopen = %d, expected 300", high)
	}
}

func TestTopScoresOrderAndIsolation(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "blocks", 100)
	save(t, store, "blocks", 500)
	save(t, store, "blocks", 200)
	save(t, store, "snake", 12)

	scores, err := store.TopScores("blocks", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	want := []int{500, 200, 100}
	if len(scores) != len(want) {
		t.Fatalf("got %d scores, expected %d", len(scores), len(want))
	}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
		if scores[i].GameID != "blocks" {
			t.Errorf("scores[%d] game = %q", i, scores[i].GameID)
		}
	}

	snake, _ := store.TopScores("snake", 10)
	if len(snake) != 1 {
		t.Errorf("got %d snake scores, expected 1", len(snake))
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 1; i <= 15; i++ {
		save(t, store, "snake", i)
	}

	tests := []struct {
		limit int
		want  int
	}{
		{3, 3},
		{0, 10},
		{-1, 10},
		{100, 15},
	}
	for _, tt := range tests {
		scores, err := store.TopScores("snake", tt.limit)
		if err != nil {
			t.Fatalf("TopScores(%d) failed: %v", tt.limit, err)
		}
		if len(scores) != tt.want {
			t.Errorf("TopScores(%d) returned %d rows, expected %d", tt.limit, len(scores), tt.want)
		}
	}
}

func TestSaveScoreDefaults(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore(Result{Score: 1}); err == nil {
		t.Error("expected error for missing game id")
	}

	if _, err := store.SaveScore(Result{GameID: "snake", Score: 7, Difficulty: "hard"}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore(Result{GameID: "snake", Score: 3, Player: "alice"}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, _ := store.AllScores("snake")
	if len(scores) != 2 {
		t.Fatalf("got %d scores, expected 2", len(scores))
	}
	if scores[0].Player != DefaultPlayer || scores[0].Difficulty != "hard" {
		t.Errorf("first entry = %+v", scores[0])
	}
	if scores[1].Player != "alice" {
		t.Errorf("second entry player = %q, expected alice", scores[1].Player)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("created_at was not parsed")
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("blocks")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("empty high score = %d, expected 0", high)
	}

	save(t, store, "blocks", 100)
	save(t, store, "blocks", 300)
	save(t, store, "blocks", 200)

	if high, _ = store.HighScore("blocks"); high != 300 {
		t.Errorf("high score = %d, expected 300", high)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)
	save(t, store, "blocks", 100)
	save(t, store, "snake", 5)

	if err := store.ClearScores("blocks"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.AllScores("blocks"); len(scores) != 0 {
		t.Errorf("got %d blocks scores after clear", len(scores))
	}
	if scores, _ := store.AllScores("snake"); len(scores) != 1 {
		t.Error("clearing blocks affected snake")
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)
	save(t, store, "blocks", 100)
	save(t, store, "blocks", 300)
	save(t, store, "snake", 4)

	st, err := store.GetGameStats("blocks")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if st.GamesCount != 2 || st.HighScore != 300 || st.TotalScore != 400 || st.AvgScore != 200 {
		t.Errorf("blocks stats = %+v", st)
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.GameID != "nothing" {
		t.Errorf("empty stats = %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["snake"].HighScore != 4 {
		t.Errorf("all stats = %v", all)
	}
}
