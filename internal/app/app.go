package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"taskboard/internal/config"
	"taskboard/internal/handlers"
	"taskboard/internal/logger"
	"taskboard/internal/middleware"
	"taskboard/internal/repository/task/inmemory"
	"taskboard/internal/service"
	"taskboard/internal/worker"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// App owns the whole object graph: the store is constructed here and lives
// for the process lifetime, nothing holds it as a global.
type App struct {
	config *config.Config
	server *http.Server
	worker *worker.StatsWorker
}

func New(cfg *config.Config) *App {
	return &App{
		config: cfg,
	}
}

func (a *App) Init() error {
	if err := logger.Init(a.config.Logging.Development); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	taskRepo := inmemory.NewTaskStorage()
	taskService := service.NewTaskService(taskRepo)
	taskHandler := handlers.NewTaskHandler(&taskService, a.config.Logging.Development)

	a.worker = worker.NewStatsWorker(&taskService, a.config.Worker.StatsInterval)
	a.server = &http.Server{
		Addr:    a.config.ServerAddr(),
		Handler: a.routes(taskHandler),
	}

	return nil
}

func (a *App) routes(h handlers.TaskHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.RateLimit(a.config.RateLimit.RPM))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: a.config.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}))

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", h.GetTasks)      // GET /tasks
		r.Post("/", h.PostTask)     // POST /tasks
		r.Get("/stats", h.GetStats) // GET /tasks/stats
		r.Get("/board", h.GetBoard) // GET /tasks/board

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetTaskByID)       // GET /tasks/{id}
			r.Put("/", h.UpdateTaskByID)    // PUT /tasks/{id}
			r.Delete("/", h.DeleteTaskByID) // DELETE /tasks/{id}

			r.Patch("/status", h.ChangeTaskStatus) // PATCH /tasks/{id}/status
		})
	})

	r.Get("/health", h.HealthCheck)

	return r
}

// Run serves until ctx is cancelled, then drains in-flight requests within
// the configured shutdown timeout.
func (a *App) Run(ctx context.Context) error {
	defer logger.Sync()

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	go a.worker.Start(workerCtx)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server started on " + a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Server shutting down")
	stopWorker()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
