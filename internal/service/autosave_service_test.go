package service

import (
	"sync"
	"testing"
	"time"
)

type countingProgressStore struct {
	fakeProgressStore
	mu    sync.Mutex
	saves []string
}

func (s *countingProgressStore) SaveDraft(userID uint, language, levelKey, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves = append(s.saves, code)
	return nil
}

func (s *countingProgressStore) saved() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.saves))
	copy(out, s.saves)
	return out
}

func TestAutosaveCoalesces(t *testing.T) {
	store := &countingProgressStore{}
	svc := NewAutosaveService(store, 50*time.Millisecond)
	defer svc.Close()

	// 连续敲击只落最后一份
	svc.Save(1, "python", "beginner", 0, "v1")
	svc.Save(1, "python", "beginner", 0, "v2")
	svc.Save(1, "python", "beginner", 0, "v3")

	time.Sleep(150 * time.Millisecond)

	saves := store.saved()
	if len(saves) != 1 {
		t.Fatalf("saves = %v, want exactly one", saves)
	}
	if saves[0] != "v3" {
		t.Errorf("saved %q, want %q", saves[0], "v3")
	}
}

func TestAutosaveSeparateKeys(t *testing.T) {
	store := &countingProgressStore{}
	svc := NewAutosaveService(store, 30*time.Millisecond)
	defer svc.Close()

	svc.Save(1, "python", "beginner", 0, "a")
	svc.Save(1, "python", "beginner", 1, "b")
	svc.Save(2, "python", "beginner", 0, "c")

	time.Sleep(120 * time.Millisecond)

	if got := len(store.saved()); got != 3 {
		t.Fatalf("saves = %d, want 3 (one per key)", got)
	}
}

func TestAutosaveFlush(t *testing.T) {
	store := &countingProgressStore{}
	svc := NewAutosaveService(store, time.Hour)

	svc.Save(1, "css", "advanced", 2, "pending")
	svc.Flush()

	saves := store.saved()
	if len(saves) != 1 || saves[0] != "pending" {
		t.Fatalf("saves = %v, want [pending]", saves)
	}
}

func TestAutosaveCloseRejectsNewSaves(t *testing.T) {
	store := &countingProgressStore{}
	svc := NewAutosaveService(store, time.Hour)

	svc.Save(1, "html", "beginner", 0, "before close")
	svc.Close()
	svc.Save(1, "html", "beginner", 0, "after close")

	time.Sleep(20 * time.Millisecond)
	saves := store.saved()
	if len(saves) != 1 || saves[0] != "before close" {
		t.Fatalf("saves = %v, want only the pre-close draft", saves)
	}
}
