// internal/model/roadmap.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type UnitType string

const (
	UnitTypeLesson    UnitType = "lesson"
	UnitTypeQuiz      UnitType = "quiz"
	UnitTypeChallenge UnitType = "challenge"
)

// Roadmap は学習ユニットを順序付きで束ねたカリキュラムです
type Roadmap struct {
	RoadmapID uuid.UUID `gorm:"type:uuid;primaryKey" json:"roadmap_id"`
	Title     string    `gorm:"not null" json:"title"`
	Level     string    `gorm:"type:varchar(32);not null" json:"level"`
	IsActive  bool      `gorm:"not null" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// ロードマップ削除時はユニットも削除
	Units []LearningUnit `gorm:"foreignKey:RoadmapID;references:RoadmapID;constraint:OnDelete:CASCADE" json:"units,omitempty"`
}

func (Roadmap) TableName() string {
	return "roadmaps"
}

// LearningUnit はロードマップ内の1枠 (lesson / quiz / challenge) を表します
// Position はロードマップ内で一意で、アンロック判定の順序になります
type LearningUnit struct {
	LearningUnitID uuid.UUID `gorm:"type:uuid;primaryKey" json:"learning_unit_id"`
	RoadmapID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_unit_roadmap_position,priority:1" json:"roadmap_id"`
	Title          string    `gorm:"not null" json:"title"`
	Position       int       `gorm:"not null;uniqueIndex:uq_unit_roadmap_position,priority:2" json:"position"`
	UnitType       UnitType  `gorm:"type:varchar(16);not null" json:"unit_type"`
	IsActive       bool      `gorm:"not null" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (LearningUnit) TableName() string {
	return "learning_units"
}
