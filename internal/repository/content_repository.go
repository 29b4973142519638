//go:generate mockery --name ContentRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_roadmap_progress/internal/middleware"
	"go_roadmap_progress/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentRepository はロードマップ・ユニット・クイズ・チャレンジの読み取り専用ストア
// コンテンツの作成・編集はこのサービスの責務外
type ContentRepository interface {
	FindRoadmapByID(ctx context.Context, db *gorm.DB, roadmapID uuid.UUID) (*model.Roadmap, error)
	FindUnitByID(ctx context.Context, db *gorm.DB, unitID uuid.UUID) (*model.LearningUnit, error)
	FindUnitsByRoadmap(ctx context.Context, db *gorm.DB, roadmapID uuid.UUID) ([]model.LearningUnit, error) // Position 昇順
	FindLessonByID(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) (*model.Lesson, error)            // Unit を Preload
	FindQuizByID(ctx context.Context, db *gorm.DB, quizID uuid.UUID) (*model.Quiz, error)                  // Questions (表示順) と Unit を Preload
	FindChallengeByID(ctx context.Context, db *gorm.DB, challengeID uuid.UUID) (*model.Challenge, error)   // Unit を Preload
}

type gormContentRepository struct{}

func NewGormContentRepository() ContentRepository {
	return &gormContentRepository{}
}

func (r *gormContentRepository) FindRoadmapByID(ctx context.Context, db *gorm.DB, roadmapID uuid.UUID) (*model.Roadmap, error) {
	var roadmap model.Roadmap
	if err := db.WithContext(ctx).Where("roadmap_id = ?", roadmapID).First(&roadmap).Error; err != nil {
		return nil, r.wrap(ctx, "FindRoadmapByID", err, "roadmap_id", roadmapID)
	}
	return &roadmap, nil
}

func (r *gormContentRepository) FindUnitByID(ctx context.Context, db *gorm.DB, unitID uuid.UUID) (*model.LearningUnit, error) {
	var unit model.LearningUnit
	if err := db.WithContext(ctx).Where("learning_unit_id = ?", unitID).First(&unit).Error; err != nil {
		return nil, r.wrap(ctx, "FindUnitByID", err, "learning_unit_id", unitID)
	}
	return &unit, nil
}

func (r *gormContentRepository) FindUnitsByRoadmap(ctx context.Context, db *gorm.DB, roadmapID uuid.UUID) ([]model.LearningUnit, error) {
	var units []model.LearningUnit
	result := db.WithContext(ctx).Where("roadmap_id = ?", roadmapID).Order("position ASC").Find(&units)
	if result.Error != nil {
		return nil, r.wrap(ctx, "FindUnitsByRoadmap", result.Error, "roadmap_id", roadmapID)
	}
	return units, nil
}

func (r *gormContentRepository) FindLessonByID(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) (*model.Lesson, error) {
	var lesson model.Lesson
	err := db.WithContext(ctx).Preload("Unit").Where("lesson_id = ?", lessonID).First(&lesson).Error
	if err != nil {
		return nil, r.wrap(ctx, "FindLessonByID", err, "lesson_id", lessonID)
	}
	return &lesson, nil
}

func (r *gormContentRepository) FindQuizByID(ctx context.Context, db *gorm.DB, quizID uuid.UUID) (*model.Quiz, error) {
	var quiz model.Quiz
	err := db.WithContext(ctx).
		Preload("Questions", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("sort_order ASC")
		}).
		Preload("Unit").
		Where("quiz_id = ?", quizID).
		First(&quiz).Error
	if err != nil {
		return nil, r.wrap(ctx, "FindQuizByID", err, "quiz_id", quizID)
	}
	return &quiz, nil
}

func (r *gormContentRepository) FindChallengeByID(ctx context.Context, db *gorm.DB, challengeID uuid.UUID) (*model.Challenge, error) {
	var challenge model.Challenge
	err := db.WithContext(ctx).Preload("Unit").Where("challenge_id = ?", challengeID).First(&challenge).Error
	if err != nil {
		return nil, r.wrap(ctx, "FindChallengeByID", err, "challenge_id", challengeID)
	}
	return &challenge, nil
}

// wrap は RecordNotFound を model.ErrNotFound に変換し、それ以外はログを出してラップします
func (r *gormContentRepository) wrap(ctx context.Context, op string, err error, key string, id uuid.UUID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ErrNotFound
	}
	middleware.GetLogger(ctx).Error("Error reading content from DB", "op", op, "error", err, key, id.String())
	return fmt.Errorf("gormContentRepository.%s: %w", op, err)
}
