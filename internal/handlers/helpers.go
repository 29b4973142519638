package handlers

import (
	"log/slog"
	"net/http"

	"go_roadmap_progress/internal/middleware"
	"go_roadmap_progress/internal/model"
	"go_roadmap_progress/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// requestLogger はリクエストスコープのロガー (request_id, user_id 付き) に handler 名を足して返します
func requestLogger(r *http.Request, fallback *slog.Logger, handler string) *slog.Logger {
	return middleware.LoggerOr(r.Context(), fallback).With(slog.String("handler", handler))
}

func requireUserID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return uuid.Nil, false
	}
	return userID, true
}

func parseUUIDParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn("Invalid ID format in URL", slog.String(name, raw), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", name+"の形式が正しくありません。", name, model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return id, true
}

// decodeAndValidate はボディをデコードして validator で検証します。失敗時はレスポンスを書いて false
func decodeAndValidate(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst interface{}) bool {
	if err := webutil.DecodeJSONBody(r, dst); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return false
	}
	if err := webutil.ValidateStruct(dst); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return false
	}
	return true
}
