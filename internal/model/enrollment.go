// internal/model/enrollment.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentPaused    EnrollmentStatus = "paused"
	EnrollmentCompleted EnrollmentStatus = "completed"
)

// CanTransitionTo は学習者による状態遷移が許可されているかを返します
// active <-> paused, active/paused -> completed。completed は終端
func (s EnrollmentStatus) CanTransitionTo(next EnrollmentStatus) bool {
	switch s {
	case EnrollmentActive:
		return next == EnrollmentPaused || next == EnrollmentCompleted
	case EnrollmentPaused:
		return next == EnrollmentActive || next == EnrollmentCompleted
	default:
		return false
	}
}

// Enrollment は学習者のロードマップ参加状態とXP台帳です
// XPPoints はXP加算ルール以外から変更しないこと (減少しない)
type Enrollment struct {
	EnrollmentID uuid.UUID        `gorm:"type:uuid;primaryKey" json:"enrollment_id"`
	UserID       uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_enrollment_user_roadmap,priority:1" json:"user_id"`
	RoadmapID    uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_enrollment_user_roadmap,priority:2" json:"roadmap_id"`
	Status       EnrollmentStatus `gorm:"type:varchar(16);not null" json:"status"`
	XPPoints     int              `gorm:"column:xp_points;not null" json:"xp_points"`
	StartedAt    time.Time        `gorm:"not null" json:"started_at"`
	CompletedAt  *time.Time       `json:"completed_at,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

// UpdateEnrollmentStatusRequest は参加状態変更リクエストのDTO
type UpdateEnrollmentStatusRequest struct {
	Status EnrollmentStatus `json:"status" validate:"required,oneof=active paused completed"`
}
