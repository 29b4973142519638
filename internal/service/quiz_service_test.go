package service

import (
	"context"
	"testing"

	"go_roadmap_progress/internal/model"
	"go_roadmap_progress/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quizWorld はレッスン(1) -> クイズ(2) のロードマップ
type quizWorld struct {
	env        *testEnv
	svc        QuizService
	roadmap    *model.Roadmap
	lesson     *model.Lesson
	quiz       *model.Quiz
	userID     uuid.UUID
	enrollment *model.Enrollment
}

func newQuizWorld(t *testing.T) *quizWorld {
	env := newTestEnv(t)
	w := &quizWorld{env: env, svc: env.quizService(), userID: uuid.New()}
	w.roadmap = env.fx.Roadmap(true)
	w.lesson = env.fx.Lesson(env.fx.Unit(w.roadmap.RoadmapID, 1, model.UnitTypeLesson))
	w.quiz = env.fx.Quiz(env.fx.Unit(w.roadmap.RoadmapID, 2, model.UnitTypeQuiz), 15, 20,
		testutil.Question(1, 10, "2", "1", "2", "3"),
		testutil.Question(2, 10, "Tokyo", "Tokyo", "Osaka"),
		testutil.Question(3, 5, "go", "go", "rust"),
	)
	return w
}

// unlock は参加してレッスンを完了させる
func (w *quizWorld) unlock(t *testing.T) {
	w.enrollment = w.env.fx.Enrollment(w.userID, w.roadmap.RoadmapID, 0)
	w.env.fx.CompletedLesson(w.userID, w.lesson.LessonID)
}

func (w *quizWorld) answers(values ...string) map[string]string {
	return answersFor(w.quiz, values...)
}

func (w *quizWorld) submit(t *testing.T, answers map[string]string) *model.QuizResult {
	t.Helper()
	attempt, err := w.svc.StartQuizAttempt(context.Background(), w.userID, w.quiz.QuizID)
	require.NoError(t, err)
	result, err := w.svc.SubmitQuizAttempt(context.Background(), w.userID, attempt.AttemptID, answers)
	require.NoError(t, err)
	return result
}

func (w *quizWorld) xp() int {
	return w.env.fx.ReloadEnrollment(w.enrollment.EnrollmentID).XPPoints
}

func TestQuizService_StartQuizAttempt(t *testing.T) {
	ctx := context.Background()

	t.Run("異常系: 未参加の学習者は開始できず受験記録も作られない", func(t *testing.T) {
		w := newQuizWorld(t)
		_, err := w.svc.StartQuizAttempt(ctx, w.userID, w.quiz.QuizID)

		assert.ErrorIs(t, err, model.ErrForbidden)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_ENROLLED", appErr.Code)
		assert.Equal(t, int64(0), w.env.countRows(t, "quiz_attempts"))
	})

	t.Run("異常系: 前のレッスンが未完了ならロック", func(t *testing.T) {
		w := newQuizWorld(t)
		w.env.fx.Enrollment(w.userID, w.roadmap.RoadmapID, 0)

		_, err := w.svc.StartQuizAttempt(ctx, w.userID, w.quiz.QuizID)
		assert.ErrorIs(t, err, model.ErrForbidden)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "UNIT_LOCKED", appErr.Code)
		assert.Equal(t, int64(0), w.env.countRows(t, "quiz_attempts"))
	})

	t.Run("正常系: 休止中の参加でもレッスン完了済みなら開始できる", func(t *testing.T) {
		w := newQuizWorld(t)
		w.unlock(t)
		require.NoError(t, w.env.db.Model(w.enrollment).Update("status", model.EnrollmentPaused).Error)

		attempt, err := w.svc.StartQuizAttempt(ctx, w.userID, w.quiz.QuizID)
		require.NoError(t, err)
		assert.Equal(t, w.quiz.QuizID, attempt.QuizID)
		assert.Equal(t, w.userID, attempt.UserID)
		assert.False(t, attempt.IsSubmitted())
		assert.Nil(t, attempt.Score)
	})

	t.Run("異常系: 非公開のクイズ", func(t *testing.T) {
		w := newQuizWorld(t)
		w.unlock(t)
		require.NoError(t, w.env.db.Model(w.quiz).Update("is_active", false).Error)

		_, err := w.svc.StartQuizAttempt(ctx, w.userID, w.quiz.QuizID)
		assert.ErrorIs(t, err, model.ErrForbidden)
	})

	t.Run("異常系: 存在しないクイズ", func(t *testing.T) {
		w := newQuizWorld(t)
		_, err := w.svc.StartQuizAttempt(ctx, w.userID, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestQuizService_GetQuiz_HidesAnswers(t *testing.T) {
	w := newQuizWorld(t)
	w.unlock(t)

	view, err := w.svc.GetQuiz(context.Background(), w.userID, w.quiz.QuizID)
	require.NoError(t, err)
	require.Len(t, view.Questions, 3)
	assert.Equal(t, []string{"1", "2", "3"}, view.Questions[0].Options)
	assert.Equal(t, 1, view.Questions[0].Order)
}

// 10/10/5 点、合格15、上限20。1回目20点で +20、2回目10点で +0
func TestQuizService_SubmitQuizAttempt_RetryCreditsBestOnly(t *testing.T) {
	w := newQuizWorld(t)
	w.unlock(t)

	first := w.submit(t, w.answers("2", "Tokyo", "rust"))
	assert.Equal(t, 20, first.Score)
	assert.True(t, first.Passed)
	assert.Equal(t, 20, first.EarnedPoints)
	assert.Equal(t, 20, first.XPAwarded)
	assert.Equal(t, 20, w.xp())

	second := w.submit(t, w.answers("2", "Osaka", "rust"))
	assert.Equal(t, 10, second.Score)
	assert.False(t, second.Passed)
	assert.Equal(t, 10, second.EarnedPoints)
	assert.Equal(t, 0, second.XPAwarded)
	assert.Equal(t, 20, w.xp())
}

func TestQuizService_SubmitQuizAttempt_SameAnswersCreditOnce(t *testing.T) {
	w := newQuizWorld(t)
	w.unlock(t)
	answers := w.answers("2", "Osaka", "go")

	first := w.submit(t, answers)
	second := w.submit(t, answers)

	assert.Equal(t, 15, first.XPAwarded)
	assert.Equal(t, 0, second.XPAwarded)
	assert.Equal(t, 15, w.xp())
}

func TestQuizService_SubmitQuizAttempt_ImprovementCreditsDifference(t *testing.T) {
	w := newQuizWorld(t)
	w.unlock(t)

	sequence := []struct {
		answers   []string
		wantAward int
		wantXP    int
	}{
		{answers: []string{"1", "Osaka", "go"}, wantAward: 5, wantXP: 5},
		{answers: []string{"2", "Osaka", "go"}, wantAward: 10, wantXP: 15},
		{answers: []string{"1", "Osaka", "rust"}, wantAward: 0, wantXP: 15},
		{answers: []string{"2", "Tokyo", "go"}, wantAward: 5, wantXP: 20},
		{answers: []string{"2", "Tokyo", "go"}, wantAward: 0, wantXP: 20},
	}

	prev := 0
	for i, step := range sequence {
		result := w.submit(t, w.answers(step.answers...))
		assert.Equal(t, step.wantAward, result.XPAwarded, "step %d", i+1)

		xp := w.xp()
		assert.Equal(t, step.wantXP, xp, "step %d", i+1)
		assert.GreaterOrEqual(t, xp, prev, "xp never decreases")
		assert.LessOrEqual(t, xp, w.quiz.MaxXP, "xp from one quiz never exceeds max_xp")
		prev = xp
	}
}

func TestQuizService_SubmitQuizAttempt_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("異常系: 提出済みの受験は再提出できず結果もXPも変わらない", func(t *testing.T) {
		w := newQuizWorld(t)
		w.unlock(t)
		attempt, err := w.svc.StartQuizAttempt(ctx, w.userID, w.quiz.QuizID)
		require.NoError(t, err)
		_, err = w.svc.SubmitQuizAttempt(ctx, w.userID, attempt.AttemptID, w.answers("2", "", ""))
		require.NoError(t, err)

		_, err = w.svc.SubmitQuizAttempt(ctx, w.userID, attempt.AttemptID, w.answers("2", "Tokyo", "go"))
		assert.ErrorIs(t, err, model.ErrAlreadySubmitted)

		stored, err := w.env.quizRepo.FindByID(ctx, w.env.db, attempt.AttemptID)
		require.NoError(t, err)
		assert.Equal(t, 10, *stored.Score)
		assert.False(t, *stored.Passed)
		assert.Equal(t, 10, w.xp())
	})

	t.Run("異常系: 他人の受験は提出できない", func(t *testing.T) {
		w := newQuizWorld(t)
		w.unlock(t)
		attempt, err := w.svc.StartQuizAttempt(ctx, w.userID, w.quiz.QuizID)
		require.NoError(t, err)

		_, err = w.svc.SubmitQuizAttempt(ctx, uuid.New(), attempt.AttemptID, w.answers("2"))
		assert.ErrorIs(t, err, model.ErrForbidden)

		stored, err := w.env.quizRepo.FindByID(ctx, w.env.db, attempt.AttemptID)
		require.NoError(t, err)
		assert.False(t, stored.IsSubmitted())
	})

	t.Run("異常系: クイズに無い設問IDは採点前に拒否", func(t *testing.T) {
		w := newQuizWorld(t)
		w.unlock(t)
		attempt, err := w.svc.StartQuizAttempt(ctx, w.userID, w.quiz.QuizID)
		require.NoError(t, err)

		answers := w.answers("2")
		answers[uuid.NewString()] = "2"
		_, err = w.svc.SubmitQuizAttempt(ctx, w.userID, attempt.AttemptID, answers)
		assert.ErrorIs(t, err, model.ErrInvalidInput)

		stored, err := w.env.quizRepo.FindByID(ctx, w.env.db, attempt.AttemptID)
		require.NoError(t, err)
		assert.False(t, stored.IsSubmitted())
		assert.Equal(t, 0, w.xp())
	})

	t.Run("異常系: 提出時にロックされていれば採点しない", func(t *testing.T) {
		w := newQuizWorld(t)
		w.unlock(t)
		attempt, err := w.svc.StartQuizAttempt(ctx, w.userID, w.quiz.QuizID)
		require.NoError(t, err)

		// 開始後に前方へ未完了のレッスンが追加された
		w.env.fx.Lesson(w.env.fx.Unit(w.roadmap.RoadmapID, 0, model.UnitTypeLesson))

		_, err = w.svc.SubmitQuizAttempt(ctx, w.userID, attempt.AttemptID, w.answers("2", "Tokyo", "go"))
		assert.ErrorIs(t, err, model.ErrForbidden)

		stored, err := w.env.quizRepo.FindByID(ctx, w.env.db, attempt.AttemptID)
		require.NoError(t, err)
		assert.False(t, stored.IsSubmitted())
	})

	t.Run("異常系: 存在しない受験", func(t *testing.T) {
		w := newQuizWorld(t)
		_, err := w.svc.SubmitQuizAttempt(ctx, w.userID, uuid.New(), map[string]string{})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestQuizService_SubmitQuizAttempt_MissingEnrollmentSkipsCredit(t *testing.T) {
	ctx := context.Background()
	w := newQuizWorld(t)
	w.unlock(t)

	attempt, err := w.svc.StartQuizAttempt(ctx, w.userID, w.quiz.QuizID)
	require.NoError(t, err)
	require.NoError(t, w.env.db.Delete(w.enrollment).Error)

	result, err := w.svc.SubmitQuizAttempt(ctx, w.userID, attempt.AttemptID, w.answers("2", "Tokyo", "go"))
	require.NoError(t, err)
	assert.Equal(t, 25, result.Score)
	assert.True(t, result.Passed)
	assert.Equal(t, 20, result.EarnedPoints)
	assert.Equal(t, 0, result.XPAwarded)

	stored, err := w.env.quizRepo.FindByID(ctx, w.env.db, attempt.AttemptID)
	require.NoError(t, err)
	assert.True(t, stored.IsSubmitted())
}

// 複数クイズにまたがる提出でも、XPは減らず、提出したクイズの max_xp 合計を超えない
func TestQuizService_LedgerBoundAcrossQuizzes(t *testing.T) {
	w := newQuizWorld(t)
	w.unlock(t)
	second := w.env.fx.Quiz(w.env.fx.Unit(w.roadmap.RoadmapID, 3, model.UnitTypeQuiz), 0, 8,
		testutil.Question(1, 6, "a", "a", "b"),
		testutil.Question(2, 6, "b", "a", "b"),
	)

	submitTo := func(quiz *model.Quiz, values ...string) {
		attempt, err := w.svc.StartQuizAttempt(context.Background(), w.userID, quiz.QuizID)
		require.NoError(t, err)
		_, err = w.svc.SubmitQuizAttempt(context.Background(), w.userID, attempt.AttemptID, answersFor(quiz, values...))
		require.NoError(t, err)
	}

	prev := 0
	check := func(bound int) {
		xp := w.xp()
		assert.GreaterOrEqual(t, xp, prev)
		assert.LessOrEqual(t, xp, bound)
		prev = xp
	}

	submitTo(w.quiz, "2", "", "")
	check(20)
	submitTo(second, "a", "b")
	check(28)
	submitTo(w.quiz, "2", "Tokyo", "go")
	check(28)
	submitTo(second, "b", "a")
	check(28)

	assert.Equal(t, 28, w.xp())
}
