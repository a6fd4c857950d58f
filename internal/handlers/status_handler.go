package handlers

import (
	"net/http"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gitscribe/internal/common"
	"github.com/ternarybob/gitscribe/internal/interfaces"
	"github.com/ternarybob/gitscribe/internal/services/retention"
)

// StatusHandler handles HTTP requests for application status and maintenance
type StatusHandler struct {
	storage   interfaces.AnalysisStorage
	scheduler *retention.Scheduler
	startedAt time.Time
	logger    arbor.ILogger
}

// NewStatusHandler creates a new StatusHandler. The scheduler may be nil when
// retention is disabled.
func NewStatusHandler(storage interfaces.AnalysisStorage, scheduler *retention.Scheduler, logger arbor.ILogger) *StatusHandler {
	return &StatusHandler{
		storage:   storage,
		scheduler: scheduler,
		startedAt: time.Now(),
		logger:    logger,
	}
}

// GetStatusHandler handles GET /api/status
func (h *StatusHandler) GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	count, err := h.storage.CountAnalyses()
	if err != nil {
		h.logger.Warn().Err(err).Msg("Failed to count analyses for status")
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"version":  common.GetVersion(),
		"uptime":   time.Since(h.startedAt).Round(time.Second).String(),
		"analyses": count,
	})
}

// TriggerCleanupHandler handles POST /api/retention/cleanup, running the
// retention sweep immediately instead of waiting for the next scheduled run.
func (h *StatusHandler) TriggerCleanupHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	if h.scheduler == nil {
		WriteError(w, http.StatusConflict, "Retention is disabled")
		return
	}

	h.scheduler.RunNow()
	WriteJSON(w, http.StatusAccepted, map[string]string{
		"status": "Cleanup started",
	})
}
