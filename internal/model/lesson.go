// internal/model/lesson.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Lesson は lesson ユニットの本体です
type Lesson struct {
	LessonID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"lesson_id"`
	LearningUnitID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"learning_unit_id"`
	Title          string    `gorm:"not null" json:"title"`
	Content        string    `gorm:"type:text" json:"content"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Unit *LearningUnit `gorm:"foreignKey:LearningUnitID;references:LearningUnitID" json:"-"`
}

func (Lesson) TableName() string {
	return "lessons"
}

// LessonTracking は学習者ごとのレッスン進捗です。初回オープン時に作成されます
type LessonTracking struct {
	TrackingID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"tracking_id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_tracking_user_lesson,priority:1" json:"user_id"`
	LessonID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_tracking_user_lesson,priority:2" json:"lesson_id"`
	IsComplete    bool      `gorm:"not null" json:"is_complete"`
	LastUpdatedAt time.Time `gorm:"not null" json:"last_updated_at"`
	CreatedAt     time.Time `json:"created_at"`
}

func (LessonTracking) TableName() string {
	return "lesson_trackings"
}

// LessonView はレッスン本文と学習者の進捗をまとめたレスポンスDTO
type LessonView struct {
	LessonID      uuid.UUID `json:"lesson_id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	IsComplete    bool      `json:"is_complete"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

func NewLessonView(l *Lesson, t *LessonTracking) *LessonView {
	return &LessonView{
		LessonID:      l.LessonID,
		Title:         l.Title,
		Content:       l.Content,
		IsComplete:    t.IsComplete,
		LastUpdatedAt: t.LastUpdatedAt,
	}
}
