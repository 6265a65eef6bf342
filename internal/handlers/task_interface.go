package handlers

import (
	"context"

	"taskboard/internal/models/task"
	"taskboard/internal/service"

	"github.com/google/uuid"
)

type TaskService interface {
	HealthCheck(context.Context) error
	CreateTask(context.Context, service.CreateTaskParams) (*task.Task, error)
	GetTasks(context.Context) ([]*task.Task, error)
	GetTaskByID(context.Context, uuid.UUID) (*task.Task, error)
	UpdateTask(context.Context, uuid.UUID, ...task.Option) (*task.Task, error)
	ChangeStatus(context.Context, uuid.UUID, task.Status) (*task.Task, error)
	DeleteTask(context.Context, uuid.UUID) error
	GetStats(context.Context) (*task.Stats, error)
	GetBoard(context.Context) (*task.Board, error)
}
