package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/floppy-monster/internal/config"
	"github.com/vovakirdan/floppy-monster/internal/storage"
)

func newTestHistory(t *testing.T, scores ...int) (HistoryModel, *storage.Store) {
	t.Helper()
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, s := range scores {
		if _, err := store.SaveRun(storage.RunRecord{Score: s, Cause: "floor"}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	h := NewHistoryModel(store, NewKeyMap(config.DefaultGameConfig().Keys), 80, 24)
	h.Reload()
	return h, store
}

func scoresOf(runs []storage.RunRecord) []int {
	out := make([]int, len(runs))
	for i, r := range runs {
		out[i] = r.Score
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestHistoryOrderToggle(t *testing.T) {
	h, _ := newTestHistory(t, 2, 9, 4)

	if got := scoresOf(h.runs); !equalInts(got, []int{4, 9, 2}) {
		t.Errorf("recent order = %v, expected [4 9 2]", got)
	}
	if !strings.Contains(h.View(), "recent runs") {
		t.Error("view should name the recent order")
	}

	h, _ = h.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := scoresOf(h.runs); !equalInts(got, []int{9, 4, 2}) {
		t.Errorf("best order = %v, expected [9 4 2]", got)
	}
	if !strings.Contains(h.View(), "best runs") {
		t.Error("view should name the best order")
	}

	h, _ = h.Update(runeKey('s'))
	if h.order != orderRecent {
		t.Error("second toggle should return to recent runs")
	}
}

func TestHistoryClear(t *testing.T) {
	h, store := newTestHistory(t, 3, 5)

	h, _ = h.Update(runeKey('x'))
	if len(h.runs) != 0 {
		t.Errorf("table still lists %d runs after clear", len(h.runs))
	}
	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 {
		t.Errorf("store still holds %d runs", stats.Runs)
	}
	if !strings.Contains(h.View(), "No runs yet") {
		t.Error("cleared history should show the empty message")
	}
}

func TestHistoryWithoutStore(t *testing.T) {
	h := NewHistoryModel(nil, NewKeyMap(config.DefaultGameConfig().Keys), 80, 24)
	h.Reload()
	h, _ = h.Update(runeKey('x')) // must not panic
	h, _ = h.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if len(h.runs) != 0 || h.err != nil {
		t.Errorf("nil store should show an empty history, got %d runs, err %v", len(h.runs), h.err)
	}
}
