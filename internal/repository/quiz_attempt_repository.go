//go:generate mockery --name QuizAttemptRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go_roadmap_progress/internal/middleware"
	"go_roadmap_progress/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuizAttemptRepository interface {
	Create(ctx context.Context, db *gorm.DB, attempt *model.QuizAttempt) error
	FindByID(ctx context.Context, db *gorm.DB, attemptID uuid.UUID) (*model.QuizAttempt, error)
	// MarkSubmitted は未提出の場合に限り採点結果を書き込む。提出済みなら model.ErrAlreadySubmitted
	MarkSubmitted(ctx context.Context, tx *gorm.DB, attemptID uuid.UUID, answers map[string]string, score int, passed bool, at time.Time) error
	// FindBestScore は指定した受験を除く、学習者の提出済み受験の最高点を返す。無ければ ok=false
	FindBestScore(ctx context.Context, db *gorm.DB, quizID, userID, excludeAttemptID uuid.UUID) (best int, ok bool, err error)
}

type gormQuizAttemptRepository struct{}

func NewGormQuizAttemptRepository() QuizAttemptRepository {
	return &gormQuizAttemptRepository{}
}

func (r *gormQuizAttemptRepository) Create(ctx context.Context, db *gorm.DB, attempt *model.QuizAttempt) error {
	if err := db.WithContext(ctx).Create(attempt).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error creating quiz attempt in DB", "error", err, "quiz_id", attempt.QuizID.String())
		return fmt.Errorf("gormQuizAttemptRepository.Create: %w", err)
	}
	return nil
}

func (r *gormQuizAttemptRepository) FindByID(ctx context.Context, db *gorm.DB, attemptID uuid.UUID) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := db.WithContext(ctx).Where("attempt_id = ?", attemptID).First(&attempt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding quiz attempt in DB", "error", err, "attempt_id", attemptID.String())
		return nil, fmt.Errorf("gormQuizAttemptRepository.FindByID: %w", err)
	}
	return &attempt, nil
}

func (r *gormQuizAttemptRepository) MarkSubmitted(ctx context.Context, tx *gorm.DB, attemptID uuid.UUID, answers map[string]string, score int, passed bool, at time.Time) error {
	result := tx.WithContext(ctx).Model(&model.QuizAttempt{}).
		Where("attempt_id = ? AND submitted_at IS NULL", attemptID).
		Updates(map[string]interface{}{
			"answers":      datatypes.NewJSONType(answers),
			"score":        score,
			"passed":       passed,
			"submitted_at": at,
		})
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error submitting quiz attempt", "error", result.Error, "attempt_id", attemptID.String())
		return fmt.Errorf("gormQuizAttemptRepository.MarkSubmitted: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrAlreadySubmitted
	}
	return nil
}

func (r *gormQuizAttemptRepository) FindBestScore(ctx context.Context, db *gorm.DB, quizID, userID, excludeAttemptID uuid.UUID) (int, bool, error) {
	var best sql.NullInt64
	err := db.WithContext(ctx).Model(&model.QuizAttempt{}).
		Select("MAX(score)").
		Where("quiz_id = ? AND user_id = ? AND attempt_id <> ? AND submitted_at IS NOT NULL", quizID, userID, excludeAttemptID).
		Scan(&best).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error finding best quiz score", "error", err, "quiz_id", quizID.String())
		return 0, false, fmt.Errorf("gormQuizAttemptRepository.FindBestScore: %w", err)
	}
	if !best.Valid {
		return 0, false, nil
	}
	return int(best.Int64), true, nil
}
