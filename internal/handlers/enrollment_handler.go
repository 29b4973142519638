// internal/handlers/enrollment_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_roadmap_progress/internal/model"
	"go_roadmap_progress/internal/service"
	"go_roadmap_progress/internal/webutil"
)

type EnrollmentHandler struct {
	service service.EnrollmentService
	logger  *slog.Logger
}

func NewEnrollmentHandler(s service.EnrollmentService, logger *slog.Logger) *EnrollmentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EnrollmentHandler{
		service: s,
		logger:  logger,
	}
}

// PostEnroll はロードマップに参加します。新規なら 201、参加済みなら既存の記録を 200 で返す
func (h *EnrollmentHandler) PostEnroll(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "PostEnroll")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	roadmapID, ok := parseUUIDParam(w, r, logger, "roadmap_id")
	if !ok {
		return
	}

	enrollment, created, err := h.service.Enroll(r.Context(), userID, roadmapID)
	if err != nil {
		logger.Warn("Error enrolling in service", slog.Any("error", err), slog.String("roadmap_id", roadmapID.String()))
		webutil.HandleError(w, logger, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	logger.Info("Enrollment resolved", slog.String("enrollment_id", enrollment.EnrollmentID.String()), slog.Bool("created", created))
	webutil.RespondWithJSON(w, status, enrollment, logger)
}

func (h *EnrollmentHandler) GetEnrollment(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetEnrollment")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	roadmapID, ok := parseUUIDParam(w, r, logger, "roadmap_id")
	if !ok {
		return
	}

	enrollment, err := h.service.GetEnrollment(r.Context(), userID, roadmapID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, enrollment, logger)
}

// PatchEnrollment は参加状態 (active / paused / completed) を変更します
func (h *EnrollmentHandler) PatchEnrollment(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "PatchEnrollment")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	roadmapID, ok := parseUUIDParam(w, r, logger, "roadmap_id")
	if !ok {
		return
	}

	var req model.UpdateEnrollmentStatusRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	enrollment, err := h.service.UpdateStatus(r.Context(), userID, roadmapID, req.Status)
	if err != nil {
		logger.Warn("Error updating enrollment status", slog.Any("error", err), slog.String("status", string(req.Status)))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, enrollment, logger)
}
