package inmemory

import (
	"context"
	"sync"
	"time"

	"taskboard/internal/models/task"
	repo "taskboard/internal/repository"

	"github.com/google/uuid"
)

// TaskStorage is the authoritative in-memory task collection. Tasks are kept
// newest-first; every operation runs under the mutex, so reads issued after a
// completed write always see it.
type TaskStorage struct {
	tasks []*task.Task
	mtx   *sync.RWMutex
}

func NewTaskStorage() *TaskStorage {
	return &TaskStorage{
		tasks: []*task.Task{},
		mtx:   &sync.RWMutex{},
	}
}

func (s *TaskStorage) HealthCheck(ctx context.Context) error {
	return nil
}

// Create prepends, so GetAll returns the most recently created task first.
func (s *TaskStorage) Create(ctx context.Context, taskToCreate *task.Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.tasks = append([]*task.Task{taskToCreate.Clone()}, s.tasks...)
	return nil
}

// GetAll returns a snapshot of clones. Mutating the result never touches
// stored state.
func (s *TaskStorage) GetAll(ctx context.Context) ([]*task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	snapshot := make([]*task.Task, len(s.tasks))
	for i, t := range s.tasks {
		snapshot[i] = t.Clone()
	}
	return snapshot, nil
}

func (s *TaskStorage) GetByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	// linear scan: collections stay small, an index is not worth keeping in
	// sync with the insertion order
	for _, t := range s.tasks {
		if t.ID == id {
			return t.Clone(), nil
		}
	}
	return nil, repo.ErrNotFound
}

// Update merges the given options into the stored task under the write lock:
// the options overwrite only the fields they carry, UpdatedAt is re-stamped
// on every call, and the task keeps its position.
func (s *TaskStorage) Update(ctx context.Context, id uuid.UUID, options ...task.Option) (*task.Task, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for i, existing := range s.tasks {
		if existing.ID != id {
			continue
		}

		updated := existing.Clone()
		for _, opt := range options {
			opt(updated)
		}
		updated.UpdatedAt = time.Now()

		s.tasks[i] = updated
		return updated.Clone(), nil
	}
	return nil, repo.ErrNotFound
}

// Delete removes the task for good. No tombstone, the id is never reused.
func (s *TaskStorage) Delete(ctx context.Context, id uuid.UUID) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func (s *TaskStorage) Stats(ctx context.Context) (*task.Stats, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	stats := &task.Stats{Total: len(s.tasks)}
	for _, t := range s.tasks {
		switch t.Status {
		case task.StatusDone:
			stats.Completed++
		case task.StatusProgress:
			stats.InProgress++
		default:
			stats.Active++
		}
	}
	return stats, nil
}
