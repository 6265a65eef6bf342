package service

import (
	"context"
	"time"

	"taskboard/internal/models/task"

	"github.com/google/uuid"
)

type TaskRepository interface {
	HealthCheck(context.Context) error
	Create(context.Context, *task.Task) error
	GetAll(context.Context) ([]*task.Task, error)
	GetByID(context.Context, uuid.UUID) (*task.Task, error)
	Update(context.Context, uuid.UUID, ...task.Option) (*task.Task, error)
	Delete(context.Context, uuid.UUID) error
	Stats(context.Context) (*task.Stats, error)
}

// CreateTaskParams carries the caller-supplied part of a new task. Zero
// values mean "not provided" and fall back to the defaults applied in
// CreateTask.
type CreateTaskParams struct {
	Title       string
	Description string
	Status      task.Status
	Priority    task.Priority
	DueDate     *time.Time
}
