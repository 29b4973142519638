// internal/model/quiz.go
package model

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Quiz は quiz ユニットの本体です
// MinXP は合格ライン、MaxXP はこのクイズから台帳に加算できるXPの上限
type Quiz struct {
	QuizID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"quiz_id"`
	LearningUnitID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"learning_unit_id"`
	Title          string    `gorm:"not null" json:"title"`
	MinXP          int       `gorm:"column:min_xp;not null" json:"min_xp"`
	MaxXP          int       `gorm:"column:max_xp;not null" json:"max_xp"`
	IsActive       bool      `gorm:"not null" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Questions []QuizQuestion `gorm:"foreignKey:QuizID;references:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	Unit      *LearningUnit  `gorm:"foreignKey:LearningUnitID;references:LearningUnitID" json:"-"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

func (q *Quiz) BeforeSave(tx *gorm.DB) error {
	if q.MinXP < 0 || q.MaxXP < 0 {
		return fmt.Errorf("quiz xp bounds must not be negative (min=%d, max=%d): %w", q.MinXP, q.MaxXP, ErrInvalidInput)
	}
	return nil
}

// QuizQuestion はクイズの設問。CorrectAnswer は Options のいずれかと一致すること
type QuizQuestion struct {
	QuestionID    uuid.UUID                    `gorm:"type:uuid;primaryKey" json:"question_id"`
	QuizID        uuid.UUID                    `gorm:"type:uuid;not null;index" json:"quiz_id"`
	QuestionText  string                       `gorm:"type:text;not null" json:"question_text"`
	Options       datatypes.JSONType[[]string] `gorm:"not null" json:"options"`
	CorrectAnswer string                       `gorm:"not null" json:"-"`
	QuestionXP    int                          `gorm:"column:question_xp;not null" json:"question_xp"`
	SortOrder     int                          `gorm:"column:sort_order;not null" json:"order"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// Validate は書き込み時の整合性チェック
func (q *QuizQuestion) Validate() error {
	if q.QuestionXP < 0 {
		return fmt.Errorf("question_xp must not be negative: %w", ErrInvalidInput)
	}
	if !slices.Contains(q.Options.Data(), q.CorrectAnswer) {
		return fmt.Errorf("correct answer %q is not one of the options: %w", q.CorrectAnswer, ErrInvalidInput)
	}
	return nil
}

func (q *QuizQuestion) BeforeSave(tx *gorm.DB) error {
	return q.Validate()
}

// QuizAttempt はクイズの受験記録。Answers / Score / Passed は提出時に一度だけ書き込まれる
type QuizAttempt struct {
	AttemptID   uuid.UUID                             `gorm:"type:uuid;primaryKey" json:"attempt_id"`
	QuizID      uuid.UUID                             `gorm:"type:uuid;not null;index:idx_quiz_attempt_quiz_user,priority:1" json:"quiz_id"`
	UserID      uuid.UUID                             `gorm:"type:uuid;not null;index:idx_quiz_attempt_quiz_user,priority:2" json:"user_id"`
	Answers     datatypes.JSONType[map[string]string] `json:"answers"`
	Score       *int                                  `json:"score"`
	Passed      *bool                                 `json:"passed"`
	StartedAt   time.Time                             `gorm:"not null" json:"started_at"`
	SubmittedAt *time.Time                            `json:"submitted_at"`
	CreatedAt   time.Time                             `json:"created_at"`
	UpdatedAt   time.Time                             `json:"updated_at"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

func (a *QuizAttempt) IsSubmitted() bool {
	return a.SubmittedAt != nil
}

// SubmitQuizRequest はクイズ提出リクエストのDTO
// キーは設問ID (UUID文字列)、値は選択肢のテキスト
type SubmitQuizRequest struct {
	Answers map[string]string `json:"answers" validate:"required,dive,keys,uuid,endkeys"`
}

// QuizResult は採点結果のレスポンスDTO
type QuizResult struct {
	AttemptID    uuid.UUID `json:"attempt_id"`
	Score        int       `json:"score"`
	Passed       bool      `json:"passed"`
	EarnedPoints int       `json:"earned_points"`
	XPAwarded    int       `json:"xp_awarded"`
}

// QuizView は正解を含まないクイズ表示用DTO
type QuizView struct {
	QuizID    uuid.UUID          `json:"quiz_id"`
	Title     string             `json:"title"`
	MinXP     int                `json:"min_xp"`
	MaxXP     int                `json:"max_xp"`
	Questions []QuizQuestionView `json:"questions"`
}

type QuizQuestionView struct {
	QuestionID   uuid.UUID `json:"question_id"`
	QuestionText string    `json:"question_text"`
	Options      []string  `json:"options"`
	QuestionXP   int       `json:"question_xp"`
	Order        int       `json:"order"`
}

func NewQuizView(q *Quiz) *QuizView {
	view := &QuizView{
		QuizID:    q.QuizID,
		Title:     q.Title,
		MinXP:     q.MinXP,
		MaxXP:     q.MaxXP,
		Questions: make([]QuizQuestionView, 0, len(q.Questions)),
	}
	for _, qq := range q.Questions {
		view.Questions = append(view.Questions, QuizQuestionView{
			QuestionID:   qq.QuestionID,
			QuestionText: qq.QuestionText,
			Options:      qq.Options.Data(),
			QuestionXP:   qq.QuestionXP,
			Order:        qq.SortOrder,
		})
	}
	return view
}
