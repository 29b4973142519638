// internal/handlers/quiz_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_roadmap_progress/internal/model"
	"go_roadmap_progress/internal/service"
	"go_roadmap_progress/internal/webutil"
)

type QuizHandler struct {
	service service.QuizService
	logger  *slog.Logger
}

func NewQuizHandler(s service.QuizService, logger *slog.Logger) *QuizHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizHandler{service: s, logger: logger}
}

// GetQuiz は正解を除いたクイズを返します
func (h *QuizHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetQuiz")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	quizID, ok := parseUUIDParam(w, r, logger, "quiz_id")
	if !ok {
		return
	}

	view, err := h.service.GetQuiz(r.Context(), userID, quizID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, view, logger)
}

func (h *QuizHandler) PostAttempt(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "PostQuizAttempt")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	quizID, ok := parseUUIDParam(w, r, logger, "quiz_id")
	if !ok {
		return
	}

	attempt, err := h.service.StartQuizAttempt(r.Context(), userID, quizID)
	if err != nil {
		logger.Warn("Quiz attempt rejected", slog.Any("error", err), slog.String("quiz_id", quizID.String()))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, attempt, logger)
}

func (h *QuizHandler) SubmitAttempt(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "SubmitQuizAttempt")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	attemptID, ok := parseUUIDParam(w, r, logger, "attempt_id")
	if !ok {
		return
	}

	var req model.SubmitQuizRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	result, err := h.service.SubmitQuizAttempt(r.Context(), userID, attemptID, req.Answers)
	if err != nil {
		logger.Warn("Quiz submission rejected", slog.Any("error", err), slog.String("attempt_id", attemptID.String()))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
