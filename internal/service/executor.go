package service

import (
	"context"
	"log/slog"

	"go_roadmap_progress/internal/config"
	"go_roadmap_progress/internal/middleware"
	"go_roadmap_progress/internal/model"
)

// ExecutionRequest はテストケース1件分の実行依頼
type ExecutionRequest struct {
	Code     string
	Language model.Language
	Stdin    string
}

// ExecutionResult は実行結果。実行失敗もデータとして返す
type ExecutionResult struct {
	Success bool
	Output  string
	Error   string
}

// Executor は外部のコード実行サービス。チャレンジの状態は変更しない
// error は通信できなかった場合のみ返す
type Executor interface {
	Execute(ctx context.Context, req ExecutionRequest) (ExecutionResult, error)
}

// --- LogExecutor ---
// 実行サービスが無い開発環境用。常に失敗として返す
type LogExecutor struct{}

func (e *LogExecutor) Execute(ctx context.Context, req ExecutionRequest) (ExecutionResult, error) {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Executing code (LogExecutor) ---",
		"language", req.Language,
		"code_bytes", len(req.Code),
		"stdin_bytes", len(req.Stdin),
	)
	return ExecutionResult{Success: false, Error: "code executor is not configured"}, nil
}

// --- NewExecutor ファクトリ関数 ---
func NewExecutor(cfg *config.Config) Executor {
	logger := slog.Default()
	switch cfg.Executor.Type {
	case "http":
		logger.Info("Initializing HTTP code executor...", "url", cfg.Executor.URL)
		return NewHTTPExecutor(&cfg.Executor)
	case "log":
		logger.Info("Initializing Log code executor...")
		return &LogExecutor{}
	default:
		logger.Warn("Unknown executor type, defaulting to LogExecutor", "type", cfg.Executor.Type)
		return &LogExecutor{}
	}
}
