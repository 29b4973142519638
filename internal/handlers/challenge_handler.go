// internal/handlers/challenge_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_roadmap_progress/internal/model"
	"go_roadmap_progress/internal/service"
	"go_roadmap_progress/internal/webutil"
)

type ChallengeHandler struct {
	service service.ChallengeService
	logger  *slog.Logger
}

func NewChallengeHandler(s service.ChallengeService, logger *slog.Logger) *ChallengeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChallengeHandler{service: s, logger: logger}
}

func (h *ChallengeHandler) GetChallenge(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetChallenge")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	challengeID, ok := parseUUIDParam(w, r, logger, "challenge_id")
	if !ok {
		return
	}

	view, err := h.service.GetChallenge(r.Context(), userID, challengeID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, view, logger)
}

func (h *ChallengeHandler) PostAttempt(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "PostChallengeAttempt")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	challengeID, ok := parseUUIDParam(w, r, logger, "challenge_id")
	if !ok {
		return
	}

	attempt, err := h.service.StartChallengeAttempt(r.Context(), userID, challengeID)
	if err != nil {
		logger.Warn("Challenge attempt rejected", slog.Any("error", err), slog.String("challenge_id", challengeID.String()))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, attempt, logger)
}

// SubmitAttempt はコードを採点します。実行サービスの失敗も判定結果として 200 で返す
func (h *ChallengeHandler) SubmitAttempt(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "SubmitChallengeAttempt")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	attemptID, ok := parseUUIDParam(w, r, logger, "attempt_id")
	if !ok {
		return
	}

	var req model.SubmitChallengeRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	result, err := h.service.SubmitChallengeAttempt(r.Context(), userID, attemptID, req.Code)
	if err != nil {
		logger.Warn("Challenge submission rejected", slog.Any("error", err), slog.String("attempt_id", attemptID.String()))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
