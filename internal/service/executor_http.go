package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"go_roadmap_progress/internal/config"
	"go_roadmap_progress/internal/middleware"
	"go_roadmap_progress/internal/model"

	"golang.org/x/time/rate"
)

const pistonExecutePath = "/api/v2/execute"

// HTTPExecutor は Piston 互換の実行API (POST /api/v2/execute) を呼び出す実装です
type HTTPExecutor struct {
	baseURL    string
	runTimeout time.Duration
	client     *http.Client
	limiter    *rate.Limiter
}

func NewHTTPExecutor(cfg *config.ExecutorConfig) *HTTPExecutor {
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	limit := rate.Limit(cfg.RatePerSecond)
	if cfg.RatePerSecond <= 0 {
		limit = rate.Inf
	}
	return &HTTPExecutor{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		runTimeout: cfg.RunTimeout,
		// 実行時間 + コンパイル/通信の余裕分
		client:  &http.Client{Timeout: cfg.RunTimeout*2 + 5*time.Second},
		limiter: rate.NewLimiter(limit, burst),
	}
}

type pistonFile struct {
	Content string `json:"content"`
}

type pistonRequest struct {
	Language       string       `json:"language"`
	Version        string       `json:"version"`
	Files          []pistonFile `json:"files"`
	Stdin          string       `json:"stdin"`
	RunTimeout     int64        `json:"run_timeout,omitempty"`
	CompileTimeout int64        `json:"compile_timeout,omitempty"`
}

type pistonStage struct {
	Stdout string  `json:"stdout"`
	Stderr string  `json:"stderr"`
	Output string  `json:"output"`
	Code   *int    `json:"code"`
	Signal *string `json:"signal"`
}

func (s *pistonStage) failed() bool {
	return (s.Code != nil && *s.Code != 0) || s.Signal != nil
}

func (s *pistonStage) killed() bool {
	return s.Signal != nil && *s.Signal == "SIGKILL"
}

type pistonResponse struct {
	Run     pistonStage  `json:"run"`
	Compile *pistonStage `json:"compile,omitempty"`
	Message string       `json:"message,omitempty"`
}

func pistonLanguage(l model.Language) string {
	if l == model.LanguageCpp {
		return "c++"
	}
	return string(l)
}

func (e *HTTPExecutor) Execute(ctx context.Context, req ExecutionRequest) (ExecutionResult, error) {
	logger := middleware.GetLogger(ctx)

	if err := e.limiter.Wait(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return ExecutionResult{}, fmt.Errorf("HTTPExecutor.Execute: waiting for rate limiter: %w", err)
		}
		// 期限内に順番が回ってこない場合も実行されなかったケースとして timeout
		logger.Warn("Code executor rate limit wait exceeded deadline", "error", err, "language", req.Language)
		return ExecutionResult{Success: false, Error: timeoutError}, nil
	}

	body, err := json.Marshal(pistonRequest{
		Language:       pistonLanguage(req.Language),
		Version:        "*",
		Files:          []pistonFile{{Content: req.Code}},
		Stdin:          req.Stdin,
		RunTimeout:     e.runTimeout.Milliseconds(),
		CompileTimeout: e.runTimeout.Milliseconds(),
	})
	if err != nil {
		return ExecutionResult{}, fmt.Errorf("HTTPExecutor.Execute: encoding request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+pistonExecutePath, bytes.NewReader(body))
	if err != nil {
		return ExecutionResult{}, fmt.Errorf("HTTPExecutor.Execute: building request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := e.client.Do(httpReq)
	if err != nil {
		logger.Warn("Code executor request failed", "error", err, "language", req.Language)
		if isTimeout(err) {
			return ExecutionResult{Success: false, Error: timeoutError}, nil
		}
		return ExecutionResult{}, fmt.Errorf("HTTPExecutor.Execute: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return ExecutionResult{}, fmt.Errorf("HTTPExecutor.Execute: reading response: %w", err)
	}

	var out pistonResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return ExecutionResult{}, fmt.Errorf("HTTPExecutor.Execute: decoding response (status %d): %w", resp.StatusCode, err)
	}

	logger.Debug("Code executor responded",
		"status", resp.StatusCode,
		"language", req.Language,
		"duration", time.Since(start),
	)

	if resp.StatusCode != http.StatusOK {
		// 未対応言語などは実行失敗として扱う
		msg := out.Message
		if msg == "" {
			msg = fmt.Sprintf("executor returned status %d", resp.StatusCode)
		}
		return ExecutionResult{Success: false, Error: msg}, nil
	}

	if out.Compile != nil && out.Compile.failed() {
		return ExecutionResult{Success: false, Output: out.Compile.Stdout, Error: firstNonEmpty(out.Compile.Stderr, out.Compile.Output, "compile error")}, nil
	}
	if out.Run.killed() {
		return ExecutionResult{Success: false, Output: out.Run.Stdout, Error: timeoutError}, nil
	}
	if out.Run.failed() {
		return ExecutionResult{Success: false, Output: out.Run.Stdout, Error: firstNonEmpty(out.Run.Stderr, "runtime error")}, nil
	}
	return ExecutionResult{Success: true, Output: out.Run.Stdout}, nil
}

// isTimeout はクライアントのタイムアウトまたはコンテキストの期限切れかを判定します
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
