//go:generate mockery --name QuizService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_roadmap_progress/internal/middleware"
	"go_roadmap_progress/internal/model"
	"go_roadmap_progress/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizService interface {
	GetQuiz(ctx context.Context, userID, quizID uuid.UUID) (*model.QuizView, error)
	StartQuizAttempt(ctx context.Context, userID, quizID uuid.UUID) (*model.QuizAttempt, error)
	SubmitQuizAttempt(ctx context.Context, userID, attemptID uuid.UUID, answers map[string]string) (*model.QuizResult, error)
}

type quizService struct {
	db          *gorm.DB
	contentRepo repository.ContentRepository
	enrollRepo  repository.EnrollmentRepository
	attemptRepo repository.QuizAttemptRepository
	gate        *unitGate
	now         func() time.Time
}

func NewQuizService(
	db *gorm.DB,
	contentRepo repository.ContentRepository,
	enrollRepo repository.EnrollmentRepository,
	trackingRepo repository.LessonTrackingRepository,
	attemptRepo repository.QuizAttemptRepository,
) QuizService {
	return &quizService{
		db:          db,
		contentRepo: contentRepo,
		enrollRepo:  enrollRepo,
		attemptRepo: attemptRepo,
		gate:        &unitGate{contentRepo: contentRepo, enrollRepo: enrollRepo, trackingRepo: trackingRepo},
		now:         time.Now,
	}
}

// loadAuthorizedQuiz はクイズを取得し、学習者に開放されているかを確認します
func (s *quizService) loadAuthorizedQuiz(ctx context.Context, userID, quizID uuid.UUID) (*model.Quiz, error) {
	quiz, err := s.contentRepo.FindQuizByID(ctx, s.db, quizID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, notFoundError("クイズ")
		}
		return nil, err
	}
	if !quiz.IsActive {
		return nil, errContentInactive
	}
	if quiz.Unit == nil {
		return nil, notFoundError("クイズのユニット")
	}
	if err := s.gate.authorize(ctx, s.db, userID, quiz.Unit); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *quizService) GetQuiz(ctx context.Context, userID, quizID uuid.UUID) (*model.QuizView, error) {
	quiz, err := s.loadAuthorizedQuiz(ctx, userID, quizID)
	if err != nil {
		return nil, err
	}
	return model.NewQuizView(quiz), nil
}

func (s *quizService) StartQuizAttempt(ctx context.Context, userID, quizID uuid.UUID) (*model.QuizAttempt, error) {
	quiz, err := s.loadAuthorizedQuiz(ctx, userID, quizID)
	if err != nil {
		return nil, err
	}

	attempt := &model.QuizAttempt{
		AttemptID: uuid.New(),
		QuizID:    quiz.QuizID,
		UserID:    userID,
		StartedAt: s.now(),
	}
	if err := s.attemptRepo.Create(ctx, s.db, attempt); err != nil {
		return nil, err
	}

	middleware.GetLogger(ctx).Info("Quiz attempt started", "quiz_id", quizID.String(), "attempt_id", attempt.AttemptID.String())
	return attempt, nil
}

// SubmitQuizAttempt は採点・受験記録の確定・XP加算を1つのトランザクションで行います
// 参加記録の行ロックを取ってから過去の最高点を読むため、同じ学習者の同時提出は直列化される
func (s *quizService) SubmitQuizAttempt(ctx context.Context, userID, attemptID uuid.UUID, answers map[string]string) (*model.QuizResult, error) {
	logger := middleware.GetLogger(ctx)
	var result *model.QuizResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 受験記録の所有者と状態を確認
		attempt, err := s.attemptRepo.FindByID(ctx, tx, attemptID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return notFoundError("受験記録")
			}
			return err
		}
		if attempt.UserID != userID {
			return errNotAttemptOwner
		}
		if attempt.IsSubmitted() {
			return errAttemptAlreadySubmitted
		}

		// 2. クイズを読み込み、回答のキーを検証
		quiz, err := s.contentRepo.FindQuizByID(ctx, tx, attempt.QuizID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return notFoundError("クイズ")
			}
			return err
		}
		if err := ValidateAnswerKeys(quiz, answers); err != nil {
			return err
		}

		// 3. 参加記録をロックし、アンロック条件を再確認
		enrollment, err := s.lockEnrollment(ctx, tx, userID, quiz)
		if err != nil {
			return err
		}

		// 4. 採点して受験記録を確定 (未提出の場合のみ更新される)
		grade, err := GradeQuiz(quiz, answers)
		if err != nil {
			return err
		}
		if err := s.attemptRepo.MarkSubmitted(ctx, tx, attemptID, answers, grade.Score, grade.Passed, s.now()); err != nil {
			if errors.Is(err, model.ErrAlreadySubmitted) {
				return errAttemptAlreadySubmitted
			}
			return err
		}

		// 5. 最高点の更新分だけXPを加算
		awarded := 0
		if enrollment != nil {
			best, hasPrev, err := s.attemptRepo.FindBestScore(ctx, tx, quiz.QuizID, userID, attemptID)
			if err != nil {
				return err
			}
			awarded = CreditDelta(grade.EarnedPoints, best, hasPrev, quiz.MaxXP)
			if err := s.enrollRepo.AddXP(ctx, tx, enrollment.EnrollmentID, awarded); err != nil {
				return err
			}
		}

		result = &model.QuizResult{
			AttemptID:    attemptID,
			Score:        grade.Score,
			Passed:       grade.Passed,
			EarnedPoints: grade.EarnedPoints,
			XPAwarded:    awarded,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Quiz attempt submitted",
		"attempt_id", attemptID.String(),
		"score", result.Score,
		"passed", result.Passed,
		"xp_awarded", result.XPAwarded,
	)
	return result, nil
}

// lockEnrollment は XP 加算先の参加記録を FOR UPDATE で取得します
// ユニットや参加記録が見つからない場合は nil を返し、加算だけをスキップする
func (s *quizService) lockEnrollment(ctx context.Context, tx *gorm.DB, userID uuid.UUID, quiz *model.Quiz) (*model.Enrollment, error) {
	logger := middleware.GetLogger(ctx)

	if quiz.Unit == nil {
		logger.Warn("Quiz unit missing, skipping xp crediting", "quiz_id", quiz.QuizID.String())
		return nil, nil
	}

	enrollment, err := s.enrollRepo.FindByUserAndRoadmapForUpdate(ctx, tx, userID, quiz.Unit.RoadmapID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Enrollment missing, skipping xp crediting",
				"quiz_id", quiz.QuizID.String(),
				"roadmap_id", quiz.Unit.RoadmapID.String(),
			)
			return nil, nil
		}
		return nil, err
	}

	progress := LearnerProgress{Enrolled: true}
	if err := s.gate.fillLessonProgress(ctx, tx, userID, quiz.Unit, &progress); err != nil {
		return nil, fmt.Errorf("quizService.lockEnrollment: %w", err)
	}
	if !IsUnlocked(progress, *quiz.Unit) {
		if lesson, ok := FirstLockingLesson(progress, *quiz.Unit); ok {
			return nil, unitLockedError(lesson)
		}
		return nil, model.NewAppError("UNIT_LOCKED", "このユニットはまだ開放されていません。", "", model.ErrForbidden)
	}
	return enrollment, nil
}
