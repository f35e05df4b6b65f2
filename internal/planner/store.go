package planner

import (
	"sync"
	"time"
)

// Store holds the current board. It is the only mutable piece of planner
// state; readers get immutable snapshots.
type Store struct {
	mu       sync.RWMutex
	board    Board
	subjects []Subject
	now      func() time.Time
}

func NewStore(board Board, subjects []Subject) *Store {
	return &Store{board: board, subjects: subjects, now: time.Now}
}

// NewSeededStore returns a store with the default subjects and sample tasks.
func NewSeededStore(now time.Time) *Store {
	return NewStore(NewBoard(NewIDSource(), SeedTasks(now)...), DefaultSubjects())
}

func (s *Store) Board() Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board
}

func (s *Store) Subjects() []Subject {
	return append([]Subject(nil), s.subjects...)
}

// Add validates form as a new entry and appends it.
func (s *Store) Add(form TaskForm) (Task, error) {
	if err := form.Validate(s.subjects, s.now(), false); err != nil {
		return Task{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	board, task := s.board.Insert(form.ToTask(0))
	s.board = board
	return task, nil
}

// Edit validates form and replaces task id with it.
func (s *Store) Edit(id int64, form TaskForm) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.board.Get(id); !ok {
		return Task{}, ErrTaskNotFound
	}
	if err := form.Validate(s.subjects, s.now(), true); err != nil {
		return Task{}, err
	}
	task := form.ToTask(id)
	board, err := s.board.Update(task)
	if err != nil {
		return Task{}, err
	}
	s.board = board
	return task, nil
}
