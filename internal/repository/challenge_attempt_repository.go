//go:generate mockery --name ChallengeAttemptRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_roadmap_progress/internal/middleware"
	"go_roadmap_progress/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ChallengeAttemptRepository interface {
	Create(ctx context.Context, db *gorm.DB, attempt *model.ChallengeAttempt) error
	FindByID(ctx context.Context, db *gorm.DB, attemptID uuid.UUID) (*model.ChallengeAttempt, error)
	// MarkSubmitted は未提出の場合に限り判定結果を書き込む。提出済みなら model.ErrAlreadySubmitted
	MarkSubmitted(ctx context.Context, db *gorm.DB, attemptID uuid.UUID, code string, details []model.CaseResult, passed bool, at time.Time) error
}

type gormChallengeAttemptRepository struct{}

func NewGormChallengeAttemptRepository() ChallengeAttemptRepository {
	return &gormChallengeAttemptRepository{}
}

func (r *gormChallengeAttemptRepository) Create(ctx context.Context, db *gorm.DB, attempt *model.ChallengeAttempt) error {
	if err := db.WithContext(ctx).Create(attempt).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error creating challenge attempt in DB", "error", err, "challenge_id", attempt.ChallengeID.String())
		return fmt.Errorf("gormChallengeAttemptRepository.Create: %w", err)
	}
	return nil
}

func (r *gormChallengeAttemptRepository) FindByID(ctx context.Context, db *gorm.DB, attemptID uuid.UUID) (*model.ChallengeAttempt, error) {
	var attempt model.ChallengeAttempt
	err := db.WithContext(ctx).Where("attempt_id = ?", attemptID).First(&attempt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding challenge attempt in DB", "error", err, "attempt_id", attemptID.String())
		return nil, fmt.Errorf("gormChallengeAttemptRepository.FindByID: %w", err)
	}
	return &attempt, nil
}

func (r *gormChallengeAttemptRepository) MarkSubmitted(ctx context.Context, db *gorm.DB, attemptID uuid.UUID, code string, details []model.CaseResult, passed bool, at time.Time) error {
	result := db.WithContext(ctx).Model(&model.ChallengeAttempt{}).
		Where("attempt_id = ? AND submitted_at IS NULL", attemptID).
		Updates(map[string]interface{}{
			"submitted_code":   code,
			"execution_output": datatypes.NewJSONType(details),
			"passed":           passed,
			"submitted_at":     at,
		})
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error submitting challenge attempt", "error", result.Error, "attempt_id", attemptID.String())
		return fmt.Errorf("gormChallengeAttemptRepository.MarkSubmitted: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrAlreadySubmitted
	}
	return nil
}
