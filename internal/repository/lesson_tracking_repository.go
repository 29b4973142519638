//go:generate mockery --name LessonTrackingRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_roadmap_progress/internal/middleware"
	"go_roadmap_progress/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LessonTrackingRepository interface {
	Create(ctx context.Context, db *gorm.DB, tracking *model.LessonTracking) error // 一意制約違反は model.ErrConflict
	FindByUserAndLesson(ctx context.Context, db *gorm.DB, userID, lessonID uuid.UUID) (*model.LessonTracking, error)
	MarkComplete(ctx context.Context, db *gorm.DB, trackingID uuid.UUID, at time.Time) error
	// FindCompletedLessonUnitIDs はロードマップ内で学習者が完了済みの lesson ユニットIDを返す
	FindCompletedLessonUnitIDs(ctx context.Context, db *gorm.DB, userID, roadmapID uuid.UUID) (map[uuid.UUID]bool, error)
}

type gormLessonTrackingRepository struct{}

func NewGormLessonTrackingRepository() LessonTrackingRepository {
	return &gormLessonTrackingRepository{}
}

func (r *gormLessonTrackingRepository) Create(ctx context.Context, db *gorm.DB, tracking *model.LessonTracking) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Create(tracking).Error; err != nil {
		if isUniqueViolation(err) {
			logger.Warn("Duplicate lesson tracking on create", "lesson_id", tracking.LessonID.String())
			return model.ErrConflict
		}
		logger.Error("Error creating lesson tracking in DB", "error", err, "lesson_id", tracking.LessonID.String())
		return fmt.Errorf("gormLessonTrackingRepository.Create: %w", err)
	}
	return nil
}

func (r *gormLessonTrackingRepository) FindByUserAndLesson(ctx context.Context, db *gorm.DB, userID, lessonID uuid.UUID) (*model.LessonTracking, error) {
	var tracking model.LessonTracking
	err := db.WithContext(ctx).Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&tracking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding lesson tracking in DB", "error", err, "lesson_id", lessonID.String())
		return nil, fmt.Errorf("gormLessonTrackingRepository.FindByUserAndLesson: %w", err)
	}
	return &tracking, nil
}

func (r *gormLessonTrackingRepository) MarkComplete(ctx context.Context, db *gorm.DB, trackingID uuid.UUID, at time.Time) error {
	result := db.WithContext(ctx).Model(&model.LessonTracking{}).
		Where("tracking_id = ?", trackingID).
		Updates(map[string]interface{}{
			"is_complete":     true,
			"last_updated_at": at,
		})
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error completing lesson tracking", "error", result.Error, "tracking_id", trackingID.String())
		return fmt.Errorf("gormLessonTrackingRepository.MarkComplete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormLessonTrackingRepository) FindCompletedLessonUnitIDs(ctx context.Context, db *gorm.DB, userID, roadmapID uuid.UUID) (map[uuid.UUID]bool, error) {
	var unitIDs []uuid.UUID
	err := db.WithContext(ctx).
		Table("lesson_trackings").
		Joins("JOIN lessons ON lessons.lesson_id = lesson_trackings.lesson_id").
		Joins("JOIN learning_units ON learning_units.learning_unit_id = lessons.learning_unit_id").
		Where("lesson_trackings.user_id = ? AND lesson_trackings.is_complete = ? AND learning_units.roadmap_id = ?", userID, true, roadmapID).
		Pluck("lessons.learning_unit_id", &unitIDs).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error finding completed lessons", "error", err, "roadmap_id", roadmapID.String())
		return nil, fmt.Errorf("gormLessonTrackingRepository.FindCompletedLessonUnitIDs: %w", err)
	}

	completed := make(map[uuid.UUID]bool, len(unitIDs))
	for _, id := range unitIDs {
		completed[id] = true
	}
	return completed, nil
}
