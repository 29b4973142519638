package service

import (
	"context"
	"errors"
	"fmt"

	"go_roadmap_progress/internal/model"
	"go_roadmap_progress/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	errAttemptAlreadySubmitted = model.NewAppError("ALREADY_SUBMITTED", "この受験はすでに提出されています。", "", model.ErrAlreadySubmitted)
	errNotAttemptOwner         = model.NewAppError("NOT_ATTEMPT_OWNER", "他の学習者の受験記録は操作できません。", "", model.ErrForbidden)
	errNotEnrolled             = model.NewAppError("NOT_ENROLLED", "このロードマップに参加していません。", "", model.ErrForbidden)
	errContentInactive         = model.NewAppError("CONTENT_INACTIVE", "このコンテンツは現在公開されていません。", "", model.ErrForbidden)
)

func notFoundError(resource string) error {
	return model.NewAppError("NOT_FOUND", fmt.Sprintf("%sが見つかりません。", resource), "", model.ErrNotFound)
}

func unitLockedError(lesson model.LearningUnit) error {
	return model.NewAppError("UNIT_LOCKED",
		fmt.Sprintf("先にレッスン「%s」を完了してください。", lesson.Title),
		"", model.ErrForbidden)
}

// unitGate はユニットへのアクセス可否を判定します
// 進捗を読み出して IsUnlocked に渡すだけで、判定ロジックは持たない
type unitGate struct {
	contentRepo  repository.ContentRepository
	enrollRepo   repository.EnrollmentRepository
	trackingRepo repository.LessonTrackingRepository
}

// loadProgress は target の判定に必要な進捗を読み出します
// 参加記録が無い場合は Enrolled=false で返し、エラーにはしない
func (g *unitGate) loadProgress(ctx context.Context, db *gorm.DB, userID uuid.UUID, target *model.LearningUnit) (LearnerProgress, error) {
	progress := LearnerProgress{}

	_, err := g.enrollRepo.FindByUserAndRoadmap(ctx, db, userID, target.RoadmapID)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return progress, nil
	case err != nil:
		return progress, err
	}
	progress.Enrolled = true

	if err := g.fillLessonProgress(ctx, db, userID, target, &progress); err != nil {
		return progress, err
	}
	return progress, nil
}

// fillLessonProgress は quiz の判定に必要なユニット一覧と完了済みレッスンを読み込みます
func (g *unitGate) fillLessonProgress(ctx context.Context, db *gorm.DB, userID uuid.UUID, target *model.LearningUnit, progress *LearnerProgress) error {
	if target.UnitType != model.UnitTypeQuiz {
		return nil
	}

	units, err := g.contentRepo.FindUnitsByRoadmap(ctx, db, target.RoadmapID)
	if err != nil {
		return err
	}
	completed, err := g.trackingRepo.FindCompletedLessonUnitIDs(ctx, db, userID, target.RoadmapID)
	if err != nil {
		return err
	}
	progress.Units = units
	progress.CompletedLessonUnits = completed
	return nil
}

// authorize は target が開放されていなければ ErrForbidden を包んだ AppError を返します
func (g *unitGate) authorize(ctx context.Context, db *gorm.DB, userID uuid.UUID, target *model.LearningUnit) error {
	if !target.IsActive {
		return errContentInactive
	}

	progress, err := g.loadProgress(ctx, db, userID, target)
	if err != nil {
		return fmt.Errorf("unitGate.authorize: %w", err)
	}
	if IsUnlocked(progress, *target) {
		return nil
	}
	if !progress.Enrolled {
		return errNotEnrolled
	}
	if lesson, ok := FirstLockingLesson(progress, *target); ok {
		return unitLockedError(lesson)
	}
	return model.NewAppError("UNIT_LOCKED", "このユニットはまだ開放されていません。", "", model.ErrForbidden)
}
