package repository

import (
	"context"
	"testing"
	"time"

	"go_roadmap_progress/internal/model"
	"go_roadmap_progress/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestEnrollmentRepository(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	fx := testutil.NewFixture(t, db)
	repo := NewGormEnrollmentRepository()

	roadmap := fx.Roadmap(true)
	userID := uuid.New()

	enrollment := &model.Enrollment{
		EnrollmentID: uuid.New(),
		UserID:       userID,
		RoadmapID:    roadmap.RoadmapID,
		Status:       model.EnrollmentActive,
		StartedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(ctx, db, enrollment))

	t.Run("異常系: 同じ学習者とロードマップの組は重複登録できない", func(t *testing.T) {
		dup := *enrollment
		dup.EnrollmentID = uuid.New()
		err := repo.Create(ctx, db, &dup)
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("正常系: ロック付きで取得できる", func(t *testing.T) {
		err := db.Transaction(func(tx *gorm.DB) error {
			got, err := repo.FindByUserAndRoadmapForUpdate(ctx, tx, userID, roadmap.RoadmapID)
			require.NoError(t, err)
			assert.Equal(t, enrollment.EnrollmentID, got.EnrollmentID)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("異常系: 未参加は ErrNotFound", func(t *testing.T) {
		_, err := repo.FindByUserAndRoadmap(ctx, db, uuid.New(), roadmap.RoadmapID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("正常系: XPの加算は累積し、0以下は無視される", func(t *testing.T) {
		require.NoError(t, repo.AddXP(ctx, db, enrollment.EnrollmentID, 15))
		require.NoError(t, repo.AddXP(ctx, db, enrollment.EnrollmentID, 5))
		require.NoError(t, repo.AddXP(ctx, db, enrollment.EnrollmentID, 0))
		require.NoError(t, repo.AddXP(ctx, db, enrollment.EnrollmentID, -10))

		got := fx.ReloadEnrollment(enrollment.EnrollmentID)
		assert.Equal(t, 20, got.XPPoints)
	})

	t.Run("異常系: 存在しない参加記録へのXP加算", func(t *testing.T) {
		err := repo.AddXP(ctx, db, uuid.New(), 10)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("正常系: ステータス更新", func(t *testing.T) {
		now := time.Now()
		require.NoError(t, repo.UpdateStatus(ctx, db, enrollment.EnrollmentID, model.EnrollmentCompleted, &now))

		got := fx.ReloadEnrollment(enrollment.EnrollmentID)
		assert.Equal(t, model.EnrollmentCompleted, got.Status)
		require.NotNil(t, got.CompletedAt)
		assert.Equal(t, 20, got.XPPoints)
	})
}

func TestLessonTrackingRepository(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	fx := testutil.NewFixture(t, db)
	repo := NewGormLessonTrackingRepository()

	roadmap := fx.Roadmap(true)
	other := fx.Roadmap(true)
	userID := uuid.New()

	lesson1 := fx.Lesson(fx.Unit(roadmap.RoadmapID, 1, model.UnitTypeLesson))
	lesson2 := fx.Lesson(fx.Unit(roadmap.RoadmapID, 2, model.UnitTypeLesson))
	otherLesson := fx.Lesson(fx.Unit(other.RoadmapID, 1, model.UnitTypeLesson))

	tracking := &model.LessonTracking{TrackingID: uuid.New(), UserID: userID, LessonID: lesson1.LessonID, LastUpdatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, db, tracking))

	t.Run("異常系: 重複作成は ErrConflict", func(t *testing.T) {
		dup := &model.LessonTracking{TrackingID: uuid.New(), UserID: userID, LessonID: lesson1.LessonID, LastUpdatedAt: time.Now()}
		assert.ErrorIs(t, repo.Create(ctx, db, dup), model.ErrConflict)
	})

	t.Run("正常系: 未完了のレッスンは完了集合に含まれない", func(t *testing.T) {
		completed, err := repo.FindCompletedLessonUnitIDs(ctx, db, userID, roadmap.RoadmapID)
		require.NoError(t, err)
		assert.Empty(t, completed)
	})

	t.Run("正常系: 完了にするとロードマップ内の完了集合に入る", func(t *testing.T) {
		require.NoError(t, repo.MarkComplete(ctx, db, tracking.TrackingID, time.Now()))
		fx.CompletedLesson(userID, otherLesson.LessonID)
		// 他の学習者の完了は含まれない
		fx.CompletedLesson(uuid.New(), lesson2.LessonID)

		completed, err := repo.FindCompletedLessonUnitIDs(ctx, db, userID, roadmap.RoadmapID)
		require.NoError(t, err)
		assert.Equal(t, map[uuid.UUID]bool{lesson1.LearningUnitID: true}, completed)

		got, err := repo.FindByUserAndLesson(ctx, db, userID, lesson1.LessonID)
		require.NoError(t, err)
		assert.True(t, got.IsComplete)
	})

	t.Run("異常系: 存在しない記録の完了", func(t *testing.T) {
		assert.ErrorIs(t, repo.MarkComplete(ctx, db, uuid.New(), time.Now()), model.ErrNotFound)
	})
}

func TestQuizAttemptRepository(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	fx := testutil.NewFixture(t, db)
	repo := NewGormQuizAttemptRepository()

	roadmap := fx.Roadmap(true)
	quiz := fx.Quiz(fx.Unit(roadmap.RoadmapID, 1, model.UnitTypeQuiz), 5, 20,
		testutil.Question(1, 10, "4", "3", "4"),
	)
	userID := uuid.New()

	newAttempt := func() *model.QuizAttempt {
		a := &model.QuizAttempt{AttemptID: uuid.New(), QuizID: quiz.QuizID, UserID: userID, StartedAt: time.Now()}
		require.NoError(t, repo.Create(ctx, db, a))
		return a
	}

	first := newAttempt()
	second := newAttempt()
	_ = newAttempt() // 未提出のまま

	t.Run("正常系: 提出済みが無ければ最高点なし", func(t *testing.T) {
		_, ok, err := repo.FindBestScore(ctx, db, quiz.QuizID, userID, second.AttemptID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("正常系: 提出は一度だけ書き込まれる", func(t *testing.T) {
		answers := map[string]string{quiz.Questions[0].QuestionID.String(): "4"}
		require.NoError(t, repo.MarkSubmitted(ctx, db, first.AttemptID, answers, 10, true, time.Now()))

		err := repo.MarkSubmitted(ctx, db, first.AttemptID, map[string]string{}, 0, false, time.Now())
		assert.ErrorIs(t, err, model.ErrAlreadySubmitted)
		assert.ErrorIs(t, err, model.ErrConflict)

		got, err := repo.FindByID(ctx, db, first.AttemptID)
		require.NoError(t, err)
		require.NotNil(t, got.Score)
		assert.Equal(t, 10, *got.Score)
		assert.True(t, *got.Passed)
		assert.True(t, got.IsSubmitted())
		assert.Equal(t, answers, got.Answers.Data())
	})

	t.Run("正常系: 最高点は対象の受験と未提出を除いて集計する", func(t *testing.T) {
		best, ok, err := repo.FindBestScore(ctx, db, quiz.QuizID, userID, second.AttemptID)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 10, best)

		_, ok, err = repo.FindBestScore(ctx, db, quiz.QuizID, userID, first.AttemptID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("異常系: 存在しない受験", func(t *testing.T) {
		_, err := repo.FindByID(ctx, db, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestChallengeAttemptRepository(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	fx := testutil.NewFixture(t, db)
	repo := NewGormChallengeAttemptRepository()

	roadmap := fx.Roadmap(true)
	challenge := fx.Challenge(fx.Unit(roadmap.RoadmapID, 1, model.UnitTypeChallenge), model.LanguagePython,
		model.TestCase{Stdin: "1 2", ExpectedOutput: "3"},
	)
	attempt := &model.ChallengeAttempt{
		AttemptID:     uuid.New(),
		ChallengeID:   challenge.ChallengeID,
		UserID:        uuid.New(),
		SubmittedCode: challenge.StarterCode,
		StartedAt:     time.Now(),
	}
	require.NoError(t, repo.Create(ctx, db, attempt))

	details := []model.CaseResult{{Index: 1, Passed: true, Output: "3\n", ExpectedOutput: "3"}}
	require.NoError(t, repo.MarkSubmitted(ctx, db, attempt.AttemptID, "print(3)", details, true, time.Now()))

	err := repo.MarkSubmitted(ctx, db, attempt.AttemptID, "print(4)", nil, false, time.Now())
	assert.ErrorIs(t, err, model.ErrAlreadySubmitted)

	got, err := repo.FindByID(ctx, db, attempt.AttemptID)
	require.NoError(t, err)
	assert.Equal(t, "print(3)", got.SubmittedCode)
	assert.Equal(t, details, got.ExecutionOutput.Data())
	require.NotNil(t, got.Passed)
	assert.True(t, *got.Passed)
}

func TestContentRepository(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	fx := testutil.NewFixture(t, db)
	repo := NewGormContentRepository()

	roadmap := fx.Roadmap(true)
	u2 := fx.Unit(roadmap.RoadmapID, 2, model.UnitTypeQuiz)
	u1 := fx.Unit(roadmap.RoadmapID, 1, model.UnitTypeLesson)
	quiz := fx.Quiz(u2, 0, 10,
		testutil.Question(2, 5, "b", "a", "b"),
		testutil.Question(1, 5, "a", "a", "b"),
	)

	t.Run("正常系: ユニットは位置順", func(t *testing.T) {
		units, err := repo.FindUnitsByRoadmap(ctx, db, roadmap.RoadmapID)
		require.NoError(t, err)
		require.Len(t, units, 2)
		assert.Equal(t, u1.LearningUnitID, units[0].LearningUnitID)
		assert.Equal(t, u2.LearningUnitID, units[1].LearningUnitID)
	})

	t.Run("正常系: クイズは設問を表示順で読み込む", func(t *testing.T) {
		got, err := repo.FindQuizByID(ctx, db, quiz.QuizID)
		require.NoError(t, err)
		require.Len(t, got.Questions, 2)
		assert.Equal(t, 1, got.Questions[0].SortOrder)
		assert.Equal(t, 2, got.Questions[1].SortOrder)
		require.NotNil(t, got.Unit)
		assert.Equal(t, roadmap.RoadmapID, got.Unit.RoadmapID)
	})

	t.Run("異常系: 存在しないコンテンツ", func(t *testing.T) {
		_, err := repo.FindRoadmapByID(ctx, db, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)
		_, err = repo.FindChallengeByID(ctx, db, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("異常系: 正解が選択肢に無い設問は保存できない", func(t *testing.T) {
		q := testutil.Question(3, 5, "z", "a", "b")
		q.QuizID = quiz.QuizID
		err := db.Create(&q).Error
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("異常系: 未対応の言語のチャレンジは保存できない", func(t *testing.T) {
		c := &model.Challenge{
			ChallengeID:    uuid.New(),
			LearningUnitID: u1.LearningUnitID,
			Language:       "cobol",
			TestCases:      datatypes.NewJSONType([]model.TestCase{}),
		}
		assert.ErrorIs(t, db.Create(c).Error, model.ErrInvalidInput)
	})
}
