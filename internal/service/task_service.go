package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taskboard/internal/logger"
	"taskboard/internal/models/task"
	"taskboard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TaskService struct {
	repo TaskRepository
}

func NewTaskService(repo TaskRepository) TaskService {
	return TaskService{
		repo: repo,
	}
}

func (s *TaskService) HealthCheck(ctx context.Context) error {
	return s.repo.HealthCheck(ctx)
}

// CreateTask materializes the full task: fresh id, both timestamps set to
// now, trimmed text fields and defaults for everything the caller omitted.
func (s *TaskService) CreateTask(ctx context.Context, params CreateTaskParams) (*task.Task, error) {
	now := time.Now()

	newTask := &task.Task{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(params.Title),
		Description: strings.TrimSpace(params.Description),
		Status:      params.Status,
		Priority:    params.Priority,
		DueDate:     params.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if newTask.Status == "" {
		newTask.Status = task.StatusTodo
	}
	if newTask.Priority == "" {
		newTask.Priority = task.PriorityMedium
	}

	if err := s.repo.Create(ctx, newTask); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	logger.Info("Service: task created",
		zap.String("task_id", newTask.ID.String()),
		zap.String("status", string(newTask.Status)))

	return newTask, nil
}

func (s *TaskService) GetTasks(ctx context.Context) ([]*task.Task, error) {
	tasks, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) GetTaskByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Info("Service: task not found", zap.String("task_id", id.String()))
			return nil, fmt.Errorf("task %s: %w", id.String(), err)
		}
		return nil, fmt.Errorf("getting task: %w", err)
	}
	return t, nil
}

// UpdateTask applies a partial update. The store performs the merge
// atomically and re-stamps UpdatedAt even when options is empty.
func (s *TaskService) UpdateTask(ctx context.Context, id uuid.UUID, options ...task.Option) (*task.Task, error) {
	updated, err := s.repo.Update(ctx, id, options...)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Info("Service: task not found", zap.String("task_id", id.String()))
			return nil, fmt.Errorf("task %s: %w", id.String(), err)
		}
		return nil, fmt.Errorf("updating task: %w", err)
	}
	return updated, nil
}

// ChangeStatus moves a task to any status. There is no workflow ordering:
// done back to todo is as legal as todo to progress.
func (s *TaskService) ChangeStatus(ctx context.Context, id uuid.UUID, status task.Status) (*task.Task, error) {
	return s.UpdateTask(ctx, id, task.WithStatus(status))
}

func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Info("Service: task not found", zap.String("task_id", id.String()))
			return fmt.Errorf("task %s: %w", id.String(), err)
		}
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

func (s *TaskService) GetStats(ctx context.Context) (*task.Stats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("computing stats: %w", err)
	}
	return stats, nil
}

// GetBoard projects a fresh snapshot into kanban columns. Nothing is cached,
// the grouping is recomputed on every call.
func (s *TaskService) GetBoard(ctx context.Context) (*task.Board, error) {
	tasks, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return task.GroupByStatus(tasks), nil
}
