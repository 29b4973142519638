//go:generate mockery --name EnrollmentRepository --output ./mocks --outpkg mocks --case=underscore
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
	"gorm.io/gorm/clause"
)

type EnrollmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, enrollment *model.Enrollment) error // 一意制約違反は model.ErrConflict
	FindByUserAndRoadmap(ctx context.Context, db *gorm.DB, userID, roadmapID uuid.UUID) (*model.Enrollment, error)
	// FindByUserAndRoadmapForUpdate は行ロック (SELECT ... FOR UPDATE) つきで取得する。トランザクション内で呼ぶこと
	FindByUserAndRoadmapForUpdate(ctx context.Context, tx *gorm.DB, userID, roadmapID uuid.UUID) (*model.Enrollment, error)
	AddXP(ctx context.Context, tx *gorm.DB, enrollmentID uuid.UUID, delta int) error
	UpdateStatus(ctx context.Context, tx *gorm.DB, enrollmentID uuid.UUID, status model.EnrollmentStatus, completedAt *time.Time) error
}

type gormEnrollmentRepository struct{}

func NewGormEnrollmentRepository() EnrollmentRepository {
	return &gormEnrollmentRepository{}
}

func (r *gormEnrollmentRepository) Create(ctx context.Context, db *gorm.DB, enrollment *model.Enrollment) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Create(enrollment).Error; err != nil {
		if isUniqueViolation(err) {
			logger.Warn("Duplicate enrollment on create",
				"user_id", enrollment.UserID.String(),
				"roadmap_id", enrollment.RoadmapID.String(),
			)
			return model.ErrConflict
		}
		logger.Error("Error creating enrollment in DB", "error", err, "roadmap_id", enrollment.RoadmapID.String())
		return fmt.Errorf("gormEnrollmentRepository.Create: %w", err)
	}
	return nil
}

func (r *gormEnrollmentRepository) FindByUserAndRoadmap(ctx context.Context, db *gorm.DB, userID, roadmapID uuid.UUID) (*model.Enrollment, error) {
	return r.find(ctx, db.WithContext(ctx), "FindByUserAndRoadmap", userID, roadmapID)
}

func (r *gormEnrollmentRepository) FindByUserAndRoadmapForUpdate(ctx context.Context, tx *gorm.DB, userID, roadmapID uuid.UUID) (*model.Enrollment, error) {
	locked := tx.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})
	return r.find(ctx, locked, "FindByUserAndRoadmapForUpdate", userID, roadmapID)
}

func (r *gormEnrollmentRepository) find(ctx context.Context, db *gorm.DB, op string, userID, roadmapID uuid.UUID) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := db.Where("user_id = ? AND roadmap_id = ?", userID, roadmapID).First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding enrollment in DB",
			"op", op,
			"error", err,
			"roadmap_id", roadmapID.String(),
		)
		return nil, fmt.Errorf("gormEnrollmentRepository.%s: %w", op, err)
	}
	return &enrollment, nil
}

func (r *gormEnrollmentRepository) AddXP(ctx context.Context, tx *gorm.DB, enrollmentID uuid.UUID, delta int) error {
	if delta <= 0 {
		// 台帳は減らさない
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Enrollment{}).
		Where("enrollment_id = ?", enrollmentID).
		Update("xp_points", gorm.Expr("xp_points + ?", delta))
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error adding xp to enrollment", "error", result.Error, "enrollment_id", enrollmentID.String())
		return fmt.Errorf("gormEnrollmentRepository.AddXP: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormEnrollmentRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, enrollmentID uuid.UUID, status model.EnrollmentStatus, completedAt *time.Time) error {
	result := tx.WithContext(ctx).Model(&model.Enrollment{}).
		Where("enrollment_id = ?", enrollmentID).
		Updates(map[string]interface{}{
			"status":       status,
			"completed_at": completedAt,
		})
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error updating enrollment status", "error", result.Error, "enrollment_id", enrollmentID.String())
		return fmt.Errorf("gormEnrollmentRepository.UpdateStatus: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
