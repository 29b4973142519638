//go:generate mockery --name ChallengeService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go_roadmap_progress/internal/config"
	"go_roadmap_progress/internal/middleware"
	"go_roadmap_progress/internal/model"
	"go_roadmap_progress/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChallengeService interface {
	GetChallenge(ctx context.Context, userID, challengeID uuid.UUID) (*model.ChallengeView, error)
	StartChallengeAttempt(ctx context.Context, userID, challengeID uuid.UUID) (*model.ChallengeAttempt, error)
	SubmitChallengeAttempt(ctx context.Context, userID, attemptID uuid.UUID, code string) (*model.ChallengeResult, error)
}

type challengeService struct {
	db                *gorm.DB
	contentRepo       repository.ContentRepository
	attemptRepo       repository.ChallengeAttemptRepository
	gate              *unitGate
	executor          Executor
	submissionTimeout time.Duration
	now               func() time.Time
}

func NewChallengeService(
	db *gorm.DB,
	contentRepo repository.ContentRepository,
	enrollRepo repository.EnrollmentRepository,
	trackingRepo repository.LessonTrackingRepository,
	attemptRepo repository.ChallengeAttemptRepository,
	executor Executor,
	submissionTimeout time.Duration,
) ChallengeService {
	if submissionTimeout <= 0 {
		submissionTimeout = config.DefaultSubmissionTimeout
	}
	return &challengeService{
		db:                db,
		contentRepo:       contentRepo,
		attemptRepo:       attemptRepo,
		gate:              &unitGate{contentRepo: contentRepo, enrollRepo: enrollRepo, trackingRepo: trackingRepo},
		executor:          executor,
		submissionTimeout: submissionTimeout,
		now:               time.Now,
	}
}

func (s *challengeService) loadAuthorizedChallenge(ctx context.Context, userID, challengeID uuid.UUID) (*model.Challenge, error) {
	challenge, err := s.contentRepo.FindChallengeByID(ctx, s.db, challengeID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, notFoundError("チャレンジ")
		}
		return nil, err
	}
	if !challenge.IsActive {
		return nil, errContentInactive
	}
	if challenge.Unit == nil {
		return nil, notFoundError("チャレンジのユニット")
	}
	if err := s.gate.authorize(ctx, s.db, userID, challenge.Unit); err != nil {
		return nil, err
	}
	return challenge, nil
}

func (s *challengeService) GetChallenge(ctx context.Context, userID, challengeID uuid.UUID) (*model.ChallengeView, error) {
	challenge, err := s.loadAuthorizedChallenge(ctx, userID, challengeID)
	if err != nil {
		return nil, err
	}
	return model.NewChallengeView(challenge), nil
}

func (s *challengeService) StartChallengeAttempt(ctx context.Context, userID, challengeID uuid.UUID) (*model.ChallengeAttempt, error) {
	challenge, err := s.loadAuthorizedChallenge(ctx, userID, challengeID)
	if err != nil {
		return nil, err
	}

	attempt := &model.ChallengeAttempt{
		AttemptID:     uuid.New(),
		ChallengeID:   challenge.ChallengeID,
		UserID:        userID,
		SubmittedCode: challenge.StarterCode,
		StartedAt:     s.now(),
	}
	if err := s.attemptRepo.Create(ctx, s.db, attempt); err != nil {
		return nil, err
	}

	middleware.GetLogger(ctx).Info("Challenge attempt started", "challenge_id", challengeID.String(), "attempt_id", attempt.AttemptID.String())
	return attempt, nil
}

// SubmitChallengeAttempt はテストケースを実行して受験記録を確定します
// 実行サービスの呼び出しはトランザクションの外で行い、結果は条件付き更新で一度だけ書き込む
func (s *challengeService) SubmitChallengeAttempt(ctx context.Context, userID, attemptID uuid.UUID, code string) (*model.ChallengeResult, error) {
	logger := middleware.GetLogger(ctx)

	if strings.TrimSpace(code) == "" {
		return nil, model.NewAppError("EMPTY_CODE", "ソースコードを入力してください。", "code", model.ErrInvalidInput)
	}

	attempt, err := s.attemptRepo.FindByID(ctx, s.db, attemptID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, notFoundError("受験記録")
		}
		return nil, err
	}
	if attempt.UserID != userID {
		return nil, errNotAttemptOwner
	}
	if attempt.IsSubmitted() {
		return nil, errAttemptAlreadySubmitted
	}

	challenge, err := s.contentRepo.FindChallengeByID(ctx, s.db, attempt.ChallengeID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, notFoundError("チャレンジ")
		}
		return nil, err
	}
	cases := challenge.TestCases.Data()
	if len(cases) == 0 {
		return nil, model.NewAppError("NO_TEST_CASES", "このチャレンジにはテストケースが登録されていません。", "", model.ErrInvalidInput)
	}

	// クライアントが切断しても採点と記録の確定は最後まで行う
	detached := context.WithoutCancel(ctx)
	gradeCtx, cancel := context.WithTimeout(detached, s.submissionTimeout)
	defer cancel()

	start := time.Now()
	details, passed := GradeChallenge(gradeCtx, s.executor, challenge.Language, code, cases)
	logger.Info("Challenge graded",
		"attempt_id", attemptID.String(),
		"cases", len(details),
		"passed", passed,
		"duration", time.Since(start),
	)

	if err := s.attemptRepo.MarkSubmitted(detached, s.db, attemptID, code, details, passed, s.now()); err != nil {
		if errors.Is(err, model.ErrAlreadySubmitted) {
			logger.Warn("Challenge attempt finalized concurrently", "attempt_id", attemptID.String())
			return nil, errAttemptAlreadySubmitted
		}
		return nil, err
	}

	return &model.ChallengeResult{
		AttemptID: attemptID,
		Passed:    passed,
		Details:   details,
	}, nil
}
