package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"taskboard/internal/handlers/dto"
	"taskboard/internal/logger"
	"taskboard/internal/models/task"
	"taskboard/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TaskHandler struct {
	TaskService TaskService
	development bool
}

func NewTaskHandler(taskService TaskService, development bool) TaskHandler {
	return TaskHandler{
		TaskService: taskService,
		development: development,
	}
}

// parseTaskID pulls the id out of the route. Reports the 400 itself and
// returns false when the id is not a uuid.
func parseTaskID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idParam := chi.URLParam(r, "id")
	id, err := uuid.Parse(idParam)
	if err != nil || id == uuid.Nil {
		logger.Warn("HTTP: invalid task id",
			zap.String("id", idParam),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "invalid task id")
		return uuid.Nil, false
	}
	return id, true
}

func (s *TaskHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	tasks, err := s.TaskService.GetTasks(r.Context())
	if err != nil {
		s.handleServiceError(w, r, "get_tasks", err)
		return
	}

	responseWithJSON(w, http.StatusOK, tasks)
}

func (s *TaskHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	stats, err := s.TaskService.GetStats(r.Context())
	if err != nil {
		s.handleServiceError(w, r, "get_stats", err)
		return
	}

	responseWithJSON(w, http.StatusOK, stats)
}

func (s *TaskHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	board, err := s.TaskService.GetBoard(r.Context())
	if err != nil {
		s.handleServiceError(w, r, "get_board", err)
		return
	}

	responseWithJSON(w, http.StatusOK, board)
}

func (s *TaskHandler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	foundTask, err := s.TaskService.GetTaskByID(r.Context(), id)
	if err != nil {
		s.handleServiceError(w, r, "get_task", err)
		return
	}

	responseWithJSON(w, http.StatusOK, foundTask)
}

func (s *TaskHandler) PostTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	if !checkContentType(r, "application/json") {
		logger.Warn("HTTP: wrong content type",
			zap.String("received", r.Header.Get("Content-Type")),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var request dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: malformed JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithDetails(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	defer r.Body.Close()

	if problems := validateCreateTask(request); len(problems) > 0 {
		logger.Warn("HTTP: validation failed",
			zap.Strings("problems", problems),
			zap.String("client_ip", r.RemoteAddr))

		responseWithDetails(w, http.StatusBadRequest, "invalid request data", strings.Join(problems, ", "))
		return
	}

	createdTask, err := s.TaskService.CreateTask(r.Context(), service.CreateTaskParams{
		Title:       request.Title,
		Description: request.Description,
		Status:      task.Status(request.Status),
		Priority:    task.Priority(request.Priority),
		DueDate:     request.DueDate,
	})
	if err != nil {
		s.handleServiceError(w, r, "create_task", err)
		return
	}

	logger.Info("HTTP_OUT: task created",
		zap.String("task_id", createdTask.ID.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))

	responseWithJSON(w, http.StatusCreated, createdTask)
}

func (s *TaskHandler) UpdateTaskByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	var request dto.UpdateTaskRequest

	decoder := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := decoder.Decode(&request); err != nil {
		logger.Warn("HTTP: malformed JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithDetails(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if problems := validateUpdateTask(request); len(problems) > 0 {
		logger.Warn("HTTP: validation failed",
			zap.Strings("problems", problems),
			zap.String("client_ip", r.RemoteAddr))

		responseWithDetails(w, http.StatusBadRequest, "invalid request data", strings.Join(problems, ", "))
		return
	}

	updatedTask, err := s.TaskService.UpdateTask(r.Context(), id, updateOptions(request)...)
	if err != nil {
		s.handleServiceError(w, r, "update_task", err)
		return
	}

	logger.Info("HTTP_OUT: task updated",
		zap.String("task_id", updatedTask.ID.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, updatedTask)
}

func (s *TaskHandler) ChangeTaskStatus(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	var request dto.ChangeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: malformed JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithDetails(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	defer r.Body.Close()

	if problems := validateStatus(request.Status); len(problems) > 0 {
		logger.Warn("HTTP: validation failed",
			zap.Strings("problems", problems),
			zap.String("client_ip", r.RemoteAddr))

		responseWithDetails(w, http.StatusBadRequest, "invalid request data", strings.Join(problems, ", "))
		return
	}

	updatedTask, err := s.TaskService.ChangeStatus(r.Context(), id, task.Status(request.Status))
	if err != nil {
		s.handleServiceError(w, r, "change_status", err)
		return
	}

	logger.Info("HTTP_OUT: task status changed",
		zap.String("task_id", updatedTask.ID.String()),
		zap.String("status", string(updatedTask.Status)),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, updatedTask)
}

func (s *TaskHandler) DeleteTaskByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	if err := s.TaskService.DeleteTask(r.Context(), id); err != nil {
		s.handleServiceError(w, r, "delete_task", err)
		return
	}

	logger.Info("HTTP_OUT: task deleted",
		zap.String("task_id", id.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusNoContent))

	w.WriteHeader(http.StatusNoContent)
}

func (s *TaskHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP: health check")

	if err := s.TaskService.HealthCheck(r.Context()); err != nil {
		responseWithError(w, http.StatusServiceUnavailable, "storage unavailable")
		return
	}

	responseWithJSON(w, http.StatusOK, healthResponse{
		Status:    "OK",
		Message:   "Taskboard API is running",
		Timestamp: time.Now(),
	})
}
