package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go_roadmap_progress/internal/config"
	"go_roadmap_progress/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPistonServer(t *testing.T, handler func(t *testing.T, req pistonRequest) (int, string)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, pistonExecutePath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req pistonRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		status, body := handler(t, req)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestHTTPExecutor(url string) *HTTPExecutor {
	return NewHTTPExecutor(&config.ExecutorConfig{
		Type:          "http",
		URL:           url + "/",
		RunTimeout:    3 * time.Second,
		RatePerSecond: 100,
		Burst:         10,
	})
}

func TestHTTPExecutor_Execute(t *testing.T) {
	tests := []struct {
		name     string
		language model.Language
		status   int
		body     string
		want     ExecutionResult
		wantLang string
	}{
		{
			name:     "正常系: 実行成功",
			language: model.LanguagePython,
			status:   http.StatusOK,
			body:     `{"language":"python","version":"3.10.0","run":{"stdout":"3\n","stderr":"","output":"3\n","code":0,"signal":null}}`,
			want:     ExecutionResult{Success: true, Output: "3\n"},
			wantLang: "python",
		},
		{
			name:     "正常系: C++ は c++ として送る",
			language: model.LanguageCpp,
			status:   http.StatusOK,
			body:     `{"run":{"stdout":"ok","code":0,"signal":null},"compile":{"stdout":"","stderr":"","code":0,"signal":null}}`,
			want:     ExecutionResult{Success: true, Output: "ok"},
			wantLang: "c++",
		},
		{
			name:     "異常系: コンパイルエラー",
			language: model.LanguageJava,
			status:   http.StatusOK,
			body:     `{"run":{"stdout":"","code":null,"signal":null},"compile":{"stdout":"","stderr":"Main.java:1: error","code":1,"signal":null}}`,
			want:     ExecutionResult{Success: false, Error: "Main.java:1: error"},
			wantLang: "java",
		},
		{
			name:     "異常系: 実行時エラー",
			language: model.LanguageJavaScript,
			status:   http.StatusOK,
			body:     `{"run":{"stdout":"partial","stderr":"TypeError","code":1,"signal":null}}`,
			want:     ExecutionResult{Success: false, Output: "partial", Error: "TypeError"},
			wantLang: "javascript",
		},
		{
			name:     "異常系: 実行時間超過で強制終了",
			language: model.LanguageC,
			status:   http.StatusOK,
			body:     `{"run":{"stdout":"","stderr":"","code":null,"signal":"SIGKILL"}}`,
			want:     ExecutionResult{Success: false, Error: "timeout"},
			wantLang: "c",
		},
		{
			name:     "異常系: 実行サービスが拒否",
			language: model.LanguagePython,
			status:   http.StatusBadRequest,
			body:     `{"message":"python-9.9 runtime is unknown"}`,
			want:     ExecutionResult{Success: false, Error: "python-9.9 runtime is unknown"},
			wantLang: "python",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newPistonServer(t, func(t *testing.T, req pistonRequest) (int, string) {
				assert.Equal(t, tt.wantLang, req.Language)
				assert.Equal(t, "*", req.Version)
				require.Len(t, req.Files, 1)
				assert.Equal(t, "source", req.Files[0].Content)
				assert.Equal(t, "1 2", req.Stdin)
				assert.Equal(t, int64(3000), req.RunTimeout)
				return tt.status, tt.body
			})

			got, err := newTestHTTPExecutor(srv.URL).Execute(context.Background(), ExecutionRequest{
				Code:     "source",
				Language: tt.language,
				Stdin:    "1 2",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTTPExecutor_Execute_TransportErrors(t *testing.T) {
	t.Run("異常系: 壊れたレスポンス", func(t *testing.T) {
		srv := newPistonServer(t, func(t *testing.T, req pistonRequest) (int, string) {
			return http.StatusOK, `not json`
		})
		_, err := newTestHTTPExecutor(srv.URL).Execute(context.Background(), ExecutionRequest{Language: model.LanguagePython})
		assert.Error(t, err)
	})

	t.Run("異常系: 期限切れのコンテキスト", func(t *testing.T) {
		srv := newPistonServer(t, func(t *testing.T, req pistonRequest) (int, string) {
			return http.StatusOK, `{"run":{"code":0}}`
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newTestHTTPExecutor(srv.URL).Execute(ctx, ExecutionRequest{Language: model.LanguagePython})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestHTTPExecutor_Execute_Timeouts(t *testing.T) {
	t.Run("異常系: レート制限の待ちが期限を超えると timeout", func(t *testing.T) {
		var calls int
		srv := newPistonServer(t, func(t *testing.T, req pistonRequest) (int, string) {
			calls++
			return http.StatusOK, `{"run":{"stdout":"4\n","code":0}}`
		})
		exec := NewHTTPExecutor(&config.ExecutorConfig{
			URL:           srv.URL,
			RunTimeout:    time.Second,
			RatePerSecond: 1,
			Burst:         1,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
		defer cancel()

		first, err := exec.Execute(ctx, ExecutionRequest{Language: model.LanguagePython})
		require.NoError(t, err)
		assert.True(t, first.Success)

		got, err := exec.Execute(ctx, ExecutionRequest{Language: model.LanguagePython})
		require.NoError(t, err)
		assert.Equal(t, ExecutionResult{Success: false, Error: timeoutError}, got)
		assert.Equal(t, 1, calls)
	})

	t.Run("異常系: クライアントのタイムアウトは timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		t.Cleanup(srv.Close)

		exec := newTestHTTPExecutor(srv.URL)
		exec.client.Timeout = 50 * time.Millisecond

		got, err := exec.Execute(context.Background(), ExecutionRequest{Language: model.LanguagePython})
		require.NoError(t, err)
		assert.Equal(t, ExecutionResult{Success: false, Error: timeoutError}, got)
	})

	t.Run("異常系: 採点全体ではトランスポートの文言を出さない", func(t *testing.T) {
		srv := newPistonServer(t, func(t *testing.T, req pistonRequest) (int, string) {
			return http.StatusOK, `{"run":{"stdout":"4\n","code":0}}`
		})
		exec := NewHTTPExecutor(&config.ExecutorConfig{
			URL:           srv.URL,
			RunTimeout:    time.Second,
			RatePerSecond: 1,
			Burst:         1,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
		defer cancel()

		cases := []model.TestCase{
			{Stdin: "2", ExpectedOutput: "4"},
			{Stdin: "2", ExpectedOutput: "4"},
			{Stdin: "2", ExpectedOutput: "4"},
		}
		details, passed := GradeChallenge(ctx, exec, model.LanguagePython, "print(4)", cases)

		assert.False(t, passed)
		require.Len(t, details, 3)
		assert.True(t, details[0].Passed)
		for _, d := range details[1:] {
			assert.False(t, d.Passed)
			assert.Equal(t, timeoutError, d.Error)
		}
	})
}

func TestLogExecutor_AlwaysFails(t *testing.T) {
	got, err := (&LogExecutor{}).Execute(context.Background(), ExecutionRequest{Code: "print(1)", Language: model.LanguagePython})
	require.NoError(t, err)
	assert.False(t, got.Success)
	assert.NotEmpty(t, got.Error)
}

func TestNewExecutor(t *testing.T) {
	cfg := &config.Config{Executor: config.ExecutorConfig{Type: "http", URL: "http://localhost:2000", RunTimeout: time.Second, RatePerSecond: 1}}
	assert.IsType(t, &HTTPExecutor{}, NewExecutor(cfg))

	cfg.Executor.Type = "log"
	assert.IsType(t, &LogExecutor{}, NewExecutor(cfg))

	cfg.Executor.Type = "unknown"
	assert.IsType(t, &LogExecutor{}, NewExecutor(cfg))
}
