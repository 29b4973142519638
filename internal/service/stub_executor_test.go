package service

import (
	"context"
	"sync"
)

// stubExecutor はテストケースの標準入力ごとに結果を返すテスト用の Executor
type stubExecutor struct {
	mu    sync.Mutex
	calls []ExecutionRequest
	fn    func(ctx context.Context, req ExecutionRequest) (ExecutionResult, error)
}

func (e *stubExecutor) Execute(ctx context.Context, req ExecutionRequest) (ExecutionResult, error) {
	e.mu.Lock()
	e.calls = append(e.calls, req)
	e.mu.Unlock()
	return e.fn(ctx, req)
}

func (e *stubExecutor) callCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.calls)
}

// echoExecutor は stdin に対応する出力を返す
func echoExecutor(outputs map[string]ExecutionResult) *stubExecutor {
	return &stubExecutor{fn: func(ctx context.Context, req ExecutionRequest) (ExecutionResult, error) {
		if res, ok := outputs[req.Stdin]; ok {
			return res, nil
		}
		return ExecutionResult{Success: false, Error: "no stub for stdin"}, nil
	}}
}
