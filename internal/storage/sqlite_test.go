package storage

import (
	"testing"

	"github.com/vovakirdan/floppy-monster/internal/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreStartsEmpty(t *testing.T) {
	store := openTestStore(t)

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected empty log, got %d runs", len(runs))
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.Best != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected zero stats for empty log, got %+v", stats)
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	if _, err := a.SaveRun(RunRecord{Score: 5, Cause: "floor"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := b.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("In-memory stores must not share data, got %d runs", len(runs))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []RunRecord{
		{Score: 3, Ticks: 400, Cause: "obstacle", Seed: 1, NewBest: true},
		{Score: 1, Ticks: 150, Cause: "floor", Seed: 2},
		{Score: 7, Ticks: 900, Cause: "obstacle", Seed: 3, NewBest: true},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(recent))
	}
	// Newest first
	if recent[0].Score != 7 || recent[1].Score != 1 || recent[2].Score != 3 {
		t.Errorf("Runs not in insertion order: %v", recent)
	}
	if recent[0].Ticks != 900 || recent[0].Cause != "obstacle" || recent[0].Seed != 3 || !recent[0].NewBest {
		t.Errorf("Fields not round-tripped: %+v", recent[0])
	}
	if recent[1].NewBest {
		t.Errorf("NewBest should be false for %+v", recent[1])
	}

	top, err := store.TopRuns(2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 2 || top[0].Score != 7 || top[1].Score != 3 {
		t.Errorf("TopRuns() = %v, expected scores 7, 3", top)
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 30; i++ {
		store.SaveRun(RunRecord{Score: i, Cause: "floor"})
	}

	runs, err := store.RecentRuns(5)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 5 {
		t.Errorf("Expected 5 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 29 {
		t.Errorf("Expected newest run first, got score %d", runs[0].Score)
	}

	// Non-positive limit falls back to the default
	runs, err = store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 20 {
		t.Errorf("Expected default limit of 20, got %d", len(runs))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Score: 2, Ticks: 100, Cause: "floor"})
	store.SaveRun(RunRecord{Score: 4, Ticks: 300, Cause: "obstacle"})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.Best != 4 || stats.AvgScore != 3 || stats.TotalTicks != 400 {
		t.Errorf("Unexpected stats: %+v", stats)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() after clear failed: %v", err)
	}
	if stats.Runs != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats after clear, got %+v", stats)
	}
}

func TestStoreRecordRun(t *testing.T) {
	store := openTestStore(t)

	err := store.RecordRun(game.RunResult{
		Score:   5,
		Best:    5,
		NewBest: true,
		Ticks:   812,
		Cause:   game.CauseObstacle,
		Seed:    99,
	})
	if err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}

	runs, _ := store.RecentRuns(1)
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	r := runs[0]
	if r.Score != 5 || r.Ticks != 812 || r.Cause != "obstacle" || r.Seed != 99 || !r.NewBest {
		t.Errorf("RecordRun() stored %+v", r)
	}

	stats, _ := store.Stats()
	if stats.Best != 5 {
		t.Errorf("Expected best score 5, got %d", stats.Best)
	}
}
