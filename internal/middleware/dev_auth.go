// internal/middleware/dev_auth.go
package middleware

import (
	"context"
	"net/http"

	"go_roadmap_progress/internal/model"
	"go_roadmap_progress/internal/webutil"

	"github.com/google/uuid"
)

// DevUserContextMiddleware は開発時用ミドルウェアです。
// X-User-ID ヘッダーのUUIDを検証せずにコンテキストへ設定します。
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		userID, err := uuid.Parse(r.Header.Get("X-User-ID"))
		if err != nil {
			logger.Warn("[DEV AUTH] Failed: missing or invalid X-User-ID header")
			appErr := model.NewAppError("UNAUTHORIZED", "[DEV] X-User-ID ヘッダーが必要です。", "", model.ErrUnauthorized)
			webutil.HandleError(w, logger, appErr)
			return
		}

		ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
		ctx = WithLogger(ctx, logger.With("user_id", userID.String()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
