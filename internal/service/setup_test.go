package service

import (
	"testing"
	"time"

	"go_roadmap_progress/internal/repository"
	"go_roadmap_progress/internal/testutil"

	"gorm.io/gorm"
)

// testEnv は sqlite 上に実リポジトリで組み立てたサービス一式
type testEnv struct {
	db           *gorm.DB
	fx           *testutil.Fixture
	contentRepo  repository.ContentRepository
	enrollRepo   repository.EnrollmentRepository
	trackingRepo repository.LessonTrackingRepository
	quizRepo     repository.QuizAttemptRepository
	challRepo    repository.ChallengeAttemptRepository
}

func newTestEnv(t *testing.T) *testEnv {
	db := testutil.NewSQLiteDB(t)
	return &testEnv{
		db:           db,
		fx:           testutil.NewFixture(t, db),
		contentRepo:  repository.NewGormContentRepository(),
		enrollRepo:   repository.NewGormEnrollmentRepository(),
		trackingRepo: repository.NewGormLessonTrackingRepository(),
		quizRepo:     repository.NewGormQuizAttemptRepository(),
		challRepo:    repository.NewGormChallengeAttemptRepository(),
	}
}

func (e *testEnv) enrollmentService() EnrollmentService {
	return NewEnrollmentService(e.db, e.contentRepo, e.enrollRepo)
}

func (e *testEnv) lessonService() LessonService {
	return NewLessonService(e.db, e.contentRepo, e.enrollRepo, e.trackingRepo)
}

func (e *testEnv) quizService() QuizService {
	return NewQuizService(e.db, e.contentRepo, e.enrollRepo, e.trackingRepo, e.quizRepo)
}

func (e *testEnv) challengeService(exec Executor, timeout time.Duration) ChallengeService {
	return NewChallengeService(e.db, e.contentRepo, e.enrollRepo, e.trackingRepo, e.challRepo, exec, timeout)
}

func (e *testEnv) countRows(t *testing.T, table string) int64 {
	t.Helper()
	var n int64
	if err := e.db.Table(table).Count(&n).Error; err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
