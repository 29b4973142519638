// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"go_roadmap_progress/internal/handlers"
	"go_roadmap_progress/internal/middleware"
	"go_roadmap_progress/internal/model"
	"go_roadmap_progress/internal/service/mocks"
)

// testServices はルーターに差し込むサービスモック一式
type testServices struct {
	enrollment *mocks.EnrollmentService
	lesson     *mocks.LessonService
	quiz       *mocks.QuizService
	challenge  *mocks.ChallengeService
}

// newTestRouter は開発用認証ミドルウェアで /api/v1 を組み立てたルーターを返します
func newTestRouter(t *testing.T) (http.Handler, *testServices) {
	t.Helper()
	svc := &testServices{
		enrollment: mocks.NewEnrollmentService(t),
		lesson:     mocks.NewLessonService(t),
		quiz:       mocks.NewQuizService(t),
		challenge:  mocks.NewChallengeService(t),
	}
	router := chi.NewRouter()
	handlers.RegisterRoutes(router, &handlers.Handlers{
		Enrollment: handlers.NewEnrollmentHandler(svc.enrollment, nil),
		Lesson:     handlers.NewLessonHandler(svc.lesson, nil),
		Quiz:       handlers.NewQuizHandler(svc.quiz, nil),
		Challenge:  handlers.NewChallengeHandler(svc.challenge, nil),
	}, middleware.DevUserContextMiddleware)
	return router, svc
}

// doRequest はリクエストを送ってレコーダーを返します。userID が Nil のときは X-User-ID を付けない
func doRequest(t *testing.T, h http.Handler, method, path string, userID uuid.UUID, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != uuid.Nil {
		req.Header.Set("X-User-ID", userID.String())
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// decodeError はエラーレスポンスを読み取ります
func decodeError(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	require.NotEmpty(t, resp.Error.Message)
	return resp.Error
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(strings.NewReader(rr.Body.String())).Decode(dst), "body: %s", rr.Body.String())
}
