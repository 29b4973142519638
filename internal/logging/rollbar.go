// internal/logging/rollbar.go
package logging

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rollbar/rollbar-go"

	"go_roadmap_progress/internal/config"
)

// reportFunc は Rollbar への送信関数。テストで差し替える
var reportFunc = func(level slog.Level, args ...interface{}) {
	if level >= slog.LevelError+4 {
		rollbar.Critical(args...)
		return
	}
	rollbar.Error(args...)
}

// RollbarHandler は Error 以上のレコードを Rollbar に送りつつ、内側のハンドラにも流す slog.Handler
type RollbarHandler struct {
	next  slog.Handler
	attrs []slog.Attr
}

var _ slog.Handler = (*RollbarHandler)(nil)

func NewRollbarHandler(next slog.Handler, token, env string) *RollbarHandler {
	rollbar.SetToken(token)
	rollbar.SetEnvironment(env)
	rollbar.SetCodeVersion(config.AppVersion)
	rollbar.SetEnabled(true)
	return &RollbarHandler{next: next}
}

func (h *RollbarHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *RollbarHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		extras := make(map[string]interface{}, len(h.attrs)+r.NumAttrs())
		var cause error
		collect := func(a slog.Attr) bool {
			if err, ok := a.Value.Any().(error); ok && cause == nil {
				cause = err
			}
			extras[a.Key] = a.Value.String()
			return true
		}
		for _, a := range h.attrs {
			collect(a)
		}
		r.Attrs(collect)

		if cause == nil {
			cause = errors.New(r.Message)
		}
		reportFunc(r.Level, r.Message, cause, extras)
	}
	return h.next.Handle(ctx, r)
}

func (h *RollbarHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &RollbarHandler{next: h.next.WithAttrs(attrs), attrs: merged}
}

func (h *RollbarHandler) WithGroup(name string) slog.Handler {
	return &RollbarHandler{next: h.next.WithGroup(name), attrs: h.attrs}
}

// Flush は送信待ちのレポートを待ちます。終了時に呼ぶ
func Flush() {
	rollbar.Wait()
}
