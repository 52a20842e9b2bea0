package progress

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func day(offset int) time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestCurrentWeekBounds(t *testing.T) {
	cases := []struct {
		name       string
		startAgo   int // days before "now"
		totalWeeks int
		want       int
	}{
		{"no published content", 0, 0, 1},
		{"course not started yet", -10, 6, 1},
		{"first day", 0, 6, 1},
		{"one full week elapsed", 7, 6, 2},
		{"mid course", 20, 6, 3},
		{"thirty days into four-week course clamps", 30, 4, 4},
		{"far past the end", 300, 6, 6},
	}

	now := day(0)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CurrentWeek(day(-tc.startAgo), now, tc.totalWeeks)
			if got != tc.want {
				t.Errorf("CurrentWeek: want %d, got %d", tc.want, got)
			}
			max := tc.totalWeeks
			if max < 1 {
				max = 1
			}
			if got < 1 || got > max {
				t.Errorf("CurrentWeek %d outside [1, %d]", got, max)
			}
		})
	}
}

func TestMarkWeekCompleteIdempotent(t *testing.T) {
	s := NewStore(t.TempDir())

	if err := s.MarkWeekComplete(7, 2); err != nil {
		t.Fatalf("mark week: %v", err)
	}
	if err := s.MarkWeekComplete(7, 2); err != nil {
		t.Fatalf("mark week again: %v", err)
	}

	snap := s.Load(7, 4, day(-30), day(0))
	if snap.CompletedWeeks != 1 {
		t.Errorf("CompletedWeeks: want 1, got %d", snap.CompletedWeeks)
	}
	if !snap.WeeklyCompletion[2] {
		t.Errorf("week 2 should be complete")
	}
}

func TestMarkWeekCompleteRejectsInvalidWeek(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.MarkWeekComplete(7, 0); err == nil {
		t.Error("expected error for week 0")
	}
}

func TestMarkSessionCompleteSetSemantics(t *testing.T) {
	s := NewStore(t.TempDir())

	for _, id := range []uint{5, 5, 9} {
		if err := s.MarkSessionComplete(7, id); err != nil {
			t.Fatalf("mark session %d: %v", id, err)
		}
	}

	snap := s.Load(7, 4, day(-1), day(0))
	if len(snap.CompletedSessionIDs) != 2 {
		t.Fatalf("CompletedSessionIDs: want 2 entries, got %v", snap.CompletedSessionIDs)
	}
}

func TestLoadMissingStateIsEmpty(t *testing.T) {
	s := NewStore(t.TempDir())

	snap := s.Load(42, 4, day(-30), day(0))
	if snap.CompletedWeeks != 0 || len(snap.WeeklyCompletion) != 0 || len(snap.CompletedSessionIDs) != 0 {
		t.Errorf("missing state should load empty, got %+v", snap)
	}
	// Snapshot is still fully populated
	if snap.LearnerID != 42 || snap.TotalWeeks != 4 || snap.CurrentWeek != 4 {
		t.Errorf("snapshot fields not populated: %+v", snap)
	}
}

func TestLoadCorruptStateIsEmpty(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	if err := os.WriteFile(filepath.Join(dir, "learner-7.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("write corrupt state: %v", err)
	}

	snap := s.Load(7, 4, day(-30), day(0))
	if snap.CompletedWeeks != 0 || len(snap.WeeklyCompletion) != 0 {
		t.Errorf("corrupt state should load empty, got %+v", snap)
	}

	// Mutations recover by overwriting the corrupt file
	if err := s.MarkWeekComplete(7, 1); err != nil {
		t.Fatalf("mark week over corrupt state: %v", err)
	}
	snap = s.Load(7, 4, day(-30), day(0))
	if snap.CompletedWeeks != 1 {
		t.Errorf("CompletedWeeks after recovery: want 1, got %d", snap.CompletedWeeks)
	}
}

func TestStatePersistsAcrossStores(t *testing.T) {
	dir := t.TempDir()

	s1 := NewStore(dir)
	if err := s1.MarkWeekComplete(3, 1); err != nil {
		t.Fatalf("mark week: %v", err)
	}
	if err := s1.MarkSessionComplete(3, 11); err != nil {
		t.Fatalf("mark session: %v", err)
	}

	s2 := NewStore(dir)
	snap := s2.Load(3, 4, day(-8), day(0))
	if !snap.WeeklyCompletion[1] {
		t.Error("week 1 completion lost across stores")
	}
	if len(snap.CompletedSessionIDs) != 1 || snap.CompletedSessionIDs[0] != 11 {
		t.Errorf("session completion lost: %v", snap.CompletedSessionIDs)
	}
	if snap.CurrentWeek != 2 {
		t.Errorf("CurrentWeek: want 2, got %d", snap.CurrentWeek)
	}
}
