// internal/handlers/router.go
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers はルーティング対象のハンドラ一式
type Handlers struct {
	Enrollment *EnrollmentHandler
	Lesson     *LessonHandler
	Quiz       *QuizHandler
	Challenge  *ChallengeHandler
	Health     *HealthHandler
}

// RegisterRoutes は /health と認証付きの /api/v1 グループを登録します
func RegisterRoutes(r chi.Router, h *Handlers, auth func(http.Handler) http.Handler) {
	if h.Health != nil {
		r.Get("/health", h.Health.Health)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(auth)

		r.Route("/roadmaps/{roadmap_id}", func(r chi.Router) {
			r.Post("/enroll", h.Enrollment.PostEnroll)
			r.Get("/enrollment", h.Enrollment.GetEnrollment)
			r.Patch("/enrollment", h.Enrollment.PatchEnrollment)
		})

		r.Route("/lessons/{lesson_id}", func(r chi.Router) {
			r.Post("/open", h.Lesson.OpenLesson)
			r.Post("/complete", h.Lesson.CompleteLesson)
		})

		r.Route("/quizzes/{quiz_id}", func(r chi.Router) {
			r.Get("/", h.Quiz.GetQuiz)
			r.Post("/attempts", h.Quiz.PostAttempt)
		})
		r.Post("/quiz-attempts/{attempt_id}/submit", h.Quiz.SubmitAttempt)

		r.Route("/challenges/{challenge_id}", func(r chi.Router) {
			r.Get("/", h.Challenge.GetChallenge)
			r.Post("/attempts", h.Challenge.PostAttempt)
		})
		r.Post("/challenge-attempts/{attempt_id}/submit", h.Challenge.SubmitAttempt)
	})
}
