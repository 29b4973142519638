package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"go_roadmap_progress/internal/model"
	"go_roadmap_progress/internal/webutil"
)

// Pinger は *sql.DB を想定
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
}

func NewHealthHandler(db Pinger, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{db: db, logger: logger}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "Health")

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.PingContext(ctx); err != nil {
		logger.Error("Health check failed: DB ping error", slog.Any("error", err))
		webutil.RespondWithJSON(w, http.StatusServiceUnavailable, model.APIErrorResponse{
			Error: model.ErrorDetail{Code: "DB_UNAVAILABLE", Message: "データベースに接続できません。"},
		}, logger)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "OK"}, logger)
}
