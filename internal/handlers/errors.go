package handlers

import (
	"errors"
	"net/http"

	"taskboard/internal/logger"
	"taskboard/internal/repository"

	"go.uber.org/zap"
)

// handleServiceError maps service failures onto the HTTP taxonomy: not-found
// becomes 404, everything else a generic 500. Diagnostic details leak into
// the payload only in development mode.
func (s *TaskHandler) handleServiceError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		logger.Warn("HTTP: task not found",
			zap.String("operation", operation),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusNotFound, "task not found")
		return
	}

	logger.Error("HTTP: service error", err,
		zap.String("operation", operation),
		zap.String("client_ip", r.RemoteAddr))

	if s.development {
		responseWithDetails(w, http.StatusInternalServerError, "something went wrong", err.Error())
		return
	}
	responseWithError(w, http.StatusInternalServerError, "something went wrong")
}
