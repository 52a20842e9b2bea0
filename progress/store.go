// Package progress tracks a learner's week-by-week completion state.
// Completion flags live in one flat JSON file per learner, written
// wholesale on every mutation (last writer wins). Missing or corrupt
// state degrades to empty, never to an error: the dashboard must render
// regardless of what is on disk.
package progress

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Snapshot is a fully populated view of a learner's progress.
type Snapshot struct {
	LearnerID           uint         `json:"learner_id"`
	TotalWeeks          int          `json:"total_weeks"`
	CurrentWeek         int          `json:"current_week"`
	CompletedWeeks      int          `json:"completed_weeks"`
	WeeklyCompletion    map[int]bool `json:"weekly_completion"`
	CompletedSessionIDs []uint       `json:"completed_session_ids"`
}

// state is the persisted per-learner file layout.
type state struct {
	WeeklyProgress    map[int]bool `json:"weeklyProgress"`
	CompletedSessions []uint       `json:"completedSessions"`
}

type Store struct {
	dir string
	mu  sync.Mutex
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load returns a complete snapshot for the learner. totalWeeks comes from
// the published course content; courseStart/now drive the current-week
// clamp. Never returns a partially populated snapshot.
func (s *Store) Load(learnerID uint, totalWeeks int, courseStart, now time.Time) Snapshot {
	s.mu.Lock()
	st := s.read(learnerID)
	s.mu.Unlock()

	completed := 0
	for _, done := range st.WeeklyProgress {
		if done {
			completed++
		}
	}

	return Snapshot{
		LearnerID:           learnerID,
		TotalWeeks:          totalWeeks,
		CurrentWeek:         CurrentWeek(courseStart, now, totalWeeks),
		CompletedWeeks:      completed,
		WeeklyCompletion:    st.WeeklyProgress,
		CompletedSessionIDs: st.CompletedSessions,
	}
}

// MarkWeekComplete flags a week done and persists the whole snapshot.
// Marking an already-complete week is a no-op in effect.
func (s *Store) MarkWeekComplete(learnerID uint, week int) error {
	if week < 1 {
		return fmt.Errorf("invalid week number %d", week)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.read(learnerID)
	st.WeeklyProgress[week] = true
	return s.write(learnerID, st)
}

// MarkSessionComplete appends the session ID with set semantics.
func (s *Store) MarkSessionComplete(learnerID uint, sessionID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.read(learnerID)
	for _, id := range st.CompletedSessions {
		if id == sessionID {
			return nil
		}
	}
	st.CompletedSessions = append(st.CompletedSessions, sessionID)
	return s.write(learnerID, st)
}

// CurrentWeek derives the learner's current week from the wall clock:
// clamp(floor((now-courseStart)/7d)+1, 1, totalWeeks). Always within
// [1, max(totalWeeks, 1)].
func CurrentWeek(courseStart, now time.Time, totalWeeks int) int {
	week := int(now.Sub(courseStart)/(7*24*time.Hour)) + 1
	if week < 1 {
		week = 1
	}
	if totalWeeks < 1 {
		return 1
	}
	if week > totalWeeks {
		week = totalWeeks
	}
	return week
}

func (s *Store) path(learnerID uint) string {
	return filepath.Join(s.dir, fmt.Sprintf("learner-%d.json", learnerID))
}

// read loads the persisted state, degrading to empty on any failure.
func (s *Store) read(learnerID uint) state {
	st := state{WeeklyProgress: map[int]bool{}, CompletedSessions: []uint{}}

	raw, err := os.ReadFile(s.path(learnerID))
	if err != nil {
		return st
	}
	var parsed state
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return st
	}
	if parsed.WeeklyProgress != nil {
		st.WeeklyProgress = parsed.WeeklyProgress
	}
	if parsed.CompletedSessions != nil {
		st.CompletedSessions = parsed.CompletedSessions
	}
	return st
}

// write persists the whole state file.
func (s *Store) write(learnerID uint, st state) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	raw, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(learnerID), raw, 0644)
}
