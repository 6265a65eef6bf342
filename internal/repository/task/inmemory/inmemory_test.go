package inmemory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"taskboard/internal/models/task"
	"taskboard/internal/repository"
	"taskboard/internal/repository/task/inmemory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTask(title string, status task.Status) *task.Task {
	now := time.Now()
	return &task.Task{
		ID:        uuid.New(),
		Title:     title,
		Status:    status,
		Priority:  task.PriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestTaskStorage_New(t *testing.T) {
	storage := inmemory.NewTaskStorage()
	assert.NotNil(t, storage)
}

func TestTaskStorage_HealthCheck(t *testing.T) {
	storage := inmemory.NewTaskStorage()
	assert.NoError(t, storage.HealthCheck(context.Background()))
}

// TestTaskStorage_Create_Order verifies newest-first ordering: each create
// prepends
func TestTaskStorage_Create_Order(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()

	first := newTask("first", task.StatusTodo)
	second := newTask("second", task.StatusTodo)

	require.NoError(t, storage.Create(ctx, first))
	require.NoError(t, storage.Create(ctx, second))

	tasks, err := storage.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, second.ID, tasks[0].ID)
	assert.Equal(t, first.ID, tasks[1].ID)
}

// TestTaskStorage_GetAll_DefensiveCopy verifies that mutating the snapshot
// does not leak into stored state
func TestTaskStorage_GetAll_DefensiveCopy(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()

	created := newTask("untouchable", task.StatusTodo)
	require.NoError(t, storage.Create(ctx, created))

	snapshot, err := storage.GetAll(ctx)
	require.NoError(t, err)
	snapshot[0].Title = "mutated"
	snapshot[0].Status = task.StatusDone

	stored, err := storage.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "untouchable", stored.Title)
	assert.Equal(t, task.StatusTodo, stored.Status)
}

// The caller's own struct is not aliased by the store either.
func TestTaskStorage_Create_CopiesInput(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()

	created := newTask("original", task.StatusTodo)
	require.NoError(t, storage.Create(ctx, created))

	created.Title = "mutated after create"

	stored, err := storage.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", stored.Title)
}

func TestTaskStorage_GetByID_NotFound(t *testing.T) {
	storage := inmemory.NewTaskStorage()

	_, err := storage.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// TestTaskStorage_Update_PartialMerge verifies that only the supplied
// options change fields, everything else survives and UpdatedAt moves
// forward
func TestTaskStorage_Update_PartialMerge(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()

	created := newTask("A", task.StatusTodo)
	created.Description = "B"
	created.Priority = task.PriorityLow
	require.NoError(t, storage.Create(ctx, created))

	before := created.UpdatedAt
	time.Sleep(time.Millisecond)

	updated, err := storage.Update(ctx, created.ID, task.WithPriority(task.PriorityHigh))
	require.NoError(t, err)

	assert.Equal(t, "A", updated.Title)
	assert.Equal(t, "B", updated.Description)
	assert.Equal(t, task.PriorityHigh, updated.Priority)
	assert.True(t, updated.UpdatedAt.After(before))
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
}

// An update with no options still re-stamps UpdatedAt.
func TestTaskStorage_Update_EmptyStillStamps(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()

	created := newTask("noop", task.StatusTodo)
	require.NoError(t, storage.Create(ctx, created))

	before := created.UpdatedAt
	time.Sleep(time.Millisecond)

	updated, err := storage.Update(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(before))
}

// Updating must not move the task inside the collection.
func TestTaskStorage_Update_KeepsPosition(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()

	older := newTask("older", task.StatusTodo)
	newer := newTask("newer", task.StatusTodo)
	require.NoError(t, storage.Create(ctx, older))
	require.NoError(t, storage.Create(ctx, newer))

	_, err := storage.Update(ctx, older.ID, task.WithStatus(task.StatusDone))
	require.NoError(t, err)

	tasks, err := storage.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, newer.ID, tasks[0].ID)
	assert.Equal(t, older.ID, tasks[1].ID)
	assert.Equal(t, task.StatusDone, tasks[1].Status)
}

func TestTaskStorage_Update_NotFound(t *testing.T) {
	storage := inmemory.NewTaskStorage()

	_, err := storage.Update(context.Background(), uuid.New(), task.WithTitle("x"))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// TestTaskStorage_Delete verifies hard removal: the id is gone for good
func TestTaskStorage_Delete(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()

	created := newTask("doomed", task.StatusTodo)
	require.NoError(t, storage.Create(ctx, created))

	require.NoError(t, storage.Delete(ctx, created.ID))

	_, err := storage.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// second delete reports not found, no panic
	assert.ErrorIs(t, storage.Delete(ctx, created.ID), repository.ErrNotFound)

	tasks, err := storage.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

// TestTaskStorage_Stats verifies the partition sums to the total
func TestTaskStorage_Stats(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()

	statuses := []task.Status{
		task.StatusTodo, task.StatusTodo, task.StatusTodo,
		task.StatusProgress,
		task.StatusDone, task.StatusDone,
	}
	for i, status := range statuses {
		require.NoError(t, storage.Create(ctx, newTask(fmt.Sprintf("task-%d", i), status)))
	}

	stats, err := storage.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 3, stats.Active)
	assert.Equal(t, 1, stats.InProgress)
	assert.Equal(t, 2, stats.Completed)
	assert.Equal(t, stats.Total, stats.Active+stats.InProgress+stats.Completed)
}

func TestTaskStorage_Stats_Empty(t *testing.T) {
	stats, err := inmemory.NewTaskStorage().Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
}

// TestTaskStorage_ConcurrentAccess hammers the store from multiple
// goroutines; run with -race
func TestTaskStorage_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()

	seed := newTask("seed", task.StatusTodo)
	require.NoError(t, storage.Create(ctx, seed))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(3)
		go func(i int) {
			defer wg.Done()
			_ = storage.Create(ctx, newTask(fmt.Sprintf("concurrent-%d", i), task.StatusTodo))
		}(i)
		go func() {
			defer wg.Done()
			_, _ = storage.GetAll(ctx)
		}()
		go func() {
			defer wg.Done()
			_, _ = storage.Update(ctx, seed.ID, task.WithStatus(task.StatusProgress))
		}()
	}
	wg.Wait()

	tasks, err := storage.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 21)
}
