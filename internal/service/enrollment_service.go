//go:generate mockery --name EnrollmentService --output ./mocks --outpkg mocks --case=underscore
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

type EnrollmentService interface {
	// Enroll は参加記録を作成します。既に参加済みなら既存の記録をそのまま返し created=false
	Enroll(ctx context.Context, userID, roadmapID uuid.UUID) (enrollment *model.Enrollment, created bool, err error)
	GetEnrollment(ctx context.Context, userID, roadmapID uuid.UUID) (*model.Enrollment, error)
	UpdateStatus(ctx context.Context, userID, roadmapID uuid.UUID, status model.EnrollmentStatus) (*model.Enrollment, error)
}

type enrollmentService struct {
	db          *gorm.DB
	contentRepo repository.ContentRepository
	enrollRepo  repository.EnrollmentRepository
	now         func() time.Time
}

func NewEnrollmentService(db *gorm.DB, contentRepo repository.ContentRepository, enrollRepo repository.EnrollmentRepository) EnrollmentService {
	return &enrollmentService{
		db:          db,
		contentRepo: contentRepo,
		enrollRepo:  enrollRepo,
		now:         time.Now,
	}
}

func (s *enrollmentService) Enroll(ctx context.Context, userID, roadmapID uuid.UUID) (*model.Enrollment, bool, error) {
	logger := middleware.GetLogger(ctx)

	roadmap, err := s.contentRepo.FindRoadmapByID(ctx, s.db, roadmapID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, false, notFoundError("ロードマップ")
		}
		return nil, false, err
	}

	existing, err := s.enrollRepo.FindByUserAndRoadmap(ctx, s.db, userID, roadmapID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, false, err
	}

	if !roadmap.IsActive {
		return nil, false, errContentInactive
	}

	enrollment := &model.Enrollment{
		EnrollmentID: uuid.New(),
		UserID:       userID,
		RoadmapID:    roadmapID,
		Status:       model.EnrollmentActive,
		XPPoints:     0,
		StartedAt:    s.now(),
	}
	if err := s.enrollRepo.Create(ctx, s.db, enrollment); err != nil {
		if !errors.Is(err, model.ErrConflict) {
			return nil, false, err
		}
		// 同時リクエストに先を越された場合は相手の記録を返す
		logger.Info("Enrollment created concurrently, returning existing one", "roadmap_id", roadmapID.String())
		existing, err := s.enrollRepo.FindByUserAndRoadmap(ctx, s.db, userID, roadmapID)
		if err != nil {
			return nil, false, fmt.Errorf("enrollmentService.Enroll: re-reading after conflict: %w", err)
		}
		return existing, false, nil
	}

	logger.Info("Learner enrolled", "roadmap_id", roadmapID.String(), "enrollment_id", enrollment.EnrollmentID.String())
	return enrollment, true, nil
}

func (s *enrollmentService) GetEnrollment(ctx context.Context, userID, roadmapID uuid.UUID) (*model.Enrollment, error) {
	enrollment, err := s.enrollRepo.FindByUserAndRoadmap(ctx, s.db, userID, roadmapID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, notFoundError("参加記録")
		}
		return nil, err
	}
	return enrollment, nil
}

func (s *enrollmentService) UpdateStatus(ctx context.Context, userID, roadmapID uuid.UUID, status model.EnrollmentStatus) (*model.Enrollment, error) {
	var updated *model.Enrollment

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		enrollment, err := s.enrollRepo.FindByUserAndRoadmapForUpdate(ctx, tx, userID, roadmapID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return notFoundError("参加記録")
			}
			return err
		}

		if enrollment.Status == status {
			updated = enrollment
			return nil
		}
		if !enrollment.Status.CanTransitionTo(status) {
			return model.NewAppError("INVALID_STATUS_TRANSITION",
				fmt.Sprintf("ステータスを %s から %s に変更することはできません。", enrollment.Status, status),
				"status", model.ErrConflict)
		}

		var completedAt *time.Time
		if status == model.EnrollmentCompleted {
			now := s.now()
			completedAt = &now
		}
		if err := s.enrollRepo.UpdateStatus(ctx, tx, enrollment.EnrollmentID, status, completedAt); err != nil {
			return err
		}

		enrollment.Status = status
		enrollment.CompletedAt = completedAt
		updated = enrollment
		return nil
	})
	if err != nil {
		return nil, err
	}

	middleware.GetLogger(ctx).Info("Enrollment status updated", "roadmap_id", roadmapID.String(), "status", status)
	return updated, nil
}
