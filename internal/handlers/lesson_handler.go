package handlers

import (
	"log/slog"
	"net/http"

	"go_roadmap_progress/internal/service"
	"go_roadmap_progress/internal/webutil"
)

type LessonHandler struct {
	service service.LessonService
	logger  *slog.Logger
}

func NewLessonHandler(s service.LessonService, logger *slog.Logger) *LessonHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LessonHandler{service: s, logger: logger}
}

func (h *LessonHandler) OpenLesson(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "OpenLesson")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	lessonID, ok := parseUUIDParam(w, r, logger, "lesson_id")
	if !ok {
		return
	}

	view, err := h.service.OpenLesson(r.Context(), userID, lessonID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, view, logger)
}

func (h *LessonHandler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "CompleteLesson")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	lessonID, ok := parseUUIDParam(w, r, logger, "lesson_id")
	if !ok {
		return
	}

	view, err := h.service.CompleteLesson(r.Context(), userID, lessonID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, view, logger)
}
