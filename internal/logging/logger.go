// internal/logging/logger.go
package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"go_roadmap_progress/internal/config"
)

// ParseLevel は設定ファイルのログレベル文字列を slog.Level に変換します
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false // 不明な場合はInfo
	}
}

// NewLogger は設定に基づいて slog ロガーを組み立てます
// dev 環境では tint、それ以外は JSON。Rollbar トークンがあればエラーを転送する
func NewLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	logLevel := new(slog.LevelVar)
	level, ok := ParseLevel(cfg.Log.Level)
	logLevel.Set(level)

	var handler slog.Handler
	if strings.ToLower(cfg.Env) == "dev" {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}

	if cfg.Log.RollbarToken != "" {
		handler = NewRollbarHandler(handler, cfg.Log.RollbarToken, cfg.Env)
	}

	logger := slog.New(handler).With(slog.String("app", config.AppName))
	if !ok {
		logger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", cfg.Log.Level))
	}
	return logger
}
