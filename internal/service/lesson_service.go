//go:generate mockery --name LessonService --output ./mocks --outpkg mocks --case=underscore
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

type LessonService interface {
	// OpenLesson はレッスンを開き、初回なら進捗記録を作成します
	OpenLesson(ctx context.Context, userID, lessonID uuid.UUID) (*model.LessonView, error)
	// CompleteLesson はレッスンを完了済みにします。完了済みなら何もしない
	CompleteLesson(ctx context.Context, userID, lessonID uuid.UUID) (*model.LessonView, error)
}

type lessonService struct {
	db           *gorm.DB
	contentRepo  repository.ContentRepository
	trackingRepo repository.LessonTrackingRepository
	gate         *unitGate
	now          func() time.Time
}

func NewLessonService(
	db *gorm.DB,
	contentRepo repository.ContentRepository,
	enrollRepo repository.EnrollmentRepository,
	trackingRepo repository.LessonTrackingRepository,
) LessonService {
	return &lessonService{
		db:           db,
		contentRepo:  contentRepo,
		trackingRepo: trackingRepo,
		gate:         &unitGate{contentRepo: contentRepo, enrollRepo: enrollRepo, trackingRepo: trackingRepo},
		now:          time.Now,
	}
}

func (s *lessonService) loadAuthorizedLesson(ctx context.Context, userID, lessonID uuid.UUID) (*model.Lesson, error) {
	lesson, err := s.contentRepo.FindLessonByID(ctx, s.db, lessonID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, notFoundError("レッスン")
		}
		return nil, err
	}
	if lesson.Unit == nil {
		return nil, notFoundError("レッスンのユニット")
	}
	if err := s.gate.authorize(ctx, s.db, userID, lesson.Unit); err != nil {
		return nil, err
	}
	return lesson, nil
}

// ensureTracking は進捗記録を取得し、無ければ作成します
func (s *lessonService) ensureTracking(ctx context.Context, userID, lessonID uuid.UUID) (*model.LessonTracking, error) {
	tracking, err := s.trackingRepo.FindByUserAndLesson(ctx, s.db, userID, lessonID)
	if err == nil {
		return tracking, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	tracking = &model.LessonTracking{
		TrackingID:    uuid.New(),
		UserID:        userID,
		LessonID:      lessonID,
		IsComplete:    false,
		LastUpdatedAt: s.now(),
	}
	if err := s.trackingRepo.Create(ctx, s.db, tracking); err != nil {
		if !errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		tracking, err = s.trackingRepo.FindByUserAndLesson(ctx, s.db, userID, lessonID)
		if err != nil {
			return nil, fmt.Errorf("lessonService.ensureTracking: re-reading after conflict: %w", err)
		}
	}
	return tracking, nil
}

func (s *lessonService) OpenLesson(ctx context.Context, userID, lessonID uuid.UUID) (*model.LessonView, error) {
	lesson, err := s.loadAuthorizedLesson(ctx, userID, lessonID)
	if err != nil {
		return nil, err
	}
	tracking, err := s.ensureTracking(ctx, userID, lessonID)
	if err != nil {
		return nil, err
	}
	return model.NewLessonView(lesson, tracking), nil
}

func (s *lessonService) CompleteLesson(ctx context.Context, userID, lessonID uuid.UUID) (*model.LessonView, error) {
	lesson, err := s.loadAuthorizedLesson(ctx, userID, lessonID)
	if err != nil {
		return nil, err
	}
	tracking, err := s.ensureTracking(ctx, userID, lessonID)
	if err != nil {
		return nil, err
	}

	if !tracking.IsComplete {
		now := s.now()
		if err := s.trackingRepo.MarkComplete(ctx, s.db, tracking.TrackingID, now); err != nil {
			return nil, err
		}
		tracking.IsComplete = true
		tracking.LastUpdatedAt = now
		middleware.GetLogger(ctx).Info("Lesson completed", "lesson_id", lessonID.String())
	}
	return model.NewLessonView(lesson, tracking), nil
}
