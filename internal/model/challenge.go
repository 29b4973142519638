// internal/model/challenge.go
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Language string

const (
	LanguageJavaScript Language = "javascript"
	LanguagePython     Language = "python"
	LanguageJava       Language = "java"
	LanguageC          Language = "c"
	LanguageCpp        Language = "cpp"
)

func (l Language) Valid() bool {
	switch l {
	case LanguageJavaScript, LanguagePython, LanguageJava, LanguageC, LanguageCpp:
		return true
	}
	return false
}

// TestCase はチャレンジのテストケース (標準入力と期待出力)
type TestCase struct {
	Stdin          string `json:"stdin"`
	ExpectedOutput string `json:"expected_output"`
}

// Challenge は challenge ユニットの本体です。TestCases は保存順に実行される
type Challenge struct {
	ChallengeID    uuid.UUID                      `gorm:"type:uuid;primaryKey" json:"challenge_id"`
	LearningUnitID uuid.UUID                      `gorm:"type:uuid;not null;uniqueIndex" json:"learning_unit_id"`
	Title          string                         `gorm:"not null" json:"title"`
	Description    string                         `gorm:"type:text" json:"description"`
	MinXP          int                            `gorm:"column:min_xp;not null" json:"min_xp"`
	Language       Language                       `gorm:"type:varchar(16);not null" json:"language"`
	StarterCode    string                         `gorm:"type:text" json:"starter_code"`
	TestCases      datatypes.JSONType[[]TestCase] `gorm:"not null" json:"-"`
	IsActive       bool                           `gorm:"not null" json:"is_active"`
	CreatedAt      time.Time                      `json:"created_at"`
	UpdatedAt      time.Time                      `json:"updated_at"`

	Unit *LearningUnit `gorm:"foreignKey:LearningUnitID;references:LearningUnitID" json:"-"`
}

func (Challenge) TableName() string {
	return "challenges"
}

func (c *Challenge) BeforeSave(tx *gorm.DB) error {
	if !c.Language.Valid() {
		return fmt.Errorf("unsupported language %q: %w", c.Language, ErrInvalidInput)
	}
	if c.MinXP < 0 {
		return fmt.Errorf("min_xp must not be negative: %w", ErrInvalidInput)
	}
	return nil
}

// CaseResult はテストケース1件分の判定結果。Index は表示用に1始まり
type CaseResult struct {
	Index          int    `json:"index"`
	Passed         bool   `json:"passed"`
	Output         string `json:"output"`
	ExpectedOutput string `json:"expected_output"`
	Error          string `json:"error,omitempty"`
	Diff           string `json:"diff,omitempty"`
}

// ChallengeAttempt はチャレンジの受験記録。開始時は SubmittedCode にスターターコードが入る
type ChallengeAttempt struct {
	AttemptID       uuid.UUID                        `gorm:"type:uuid;primaryKey" json:"attempt_id"`
	ChallengeID     uuid.UUID                        `gorm:"type:uuid;not null;index:idx_challenge_attempt_challenge_user,priority:1" json:"challenge_id"`
	UserID          uuid.UUID                        `gorm:"type:uuid;not null;index:idx_challenge_attempt_challenge_user,priority:2" json:"user_id"`
	SubmittedCode   string                           `gorm:"type:text" json:"submitted_code"`
	ExecutionOutput datatypes.JSONType[[]CaseResult] `json:"execution_output"`
	Passed          *bool                            `json:"passed"`
	StartedAt       time.Time                        `gorm:"not null" json:"started_at"`
	SubmittedAt     *time.Time                       `json:"submitted_at"`
	CreatedAt       time.Time                        `json:"created_at"`
	UpdatedAt       time.Time                        `json:"updated_at"`
}

func (ChallengeAttempt) TableName() string {
	return "challenge_attempts"
}

func (a *ChallengeAttempt) IsSubmitted() bool {
	return a.SubmittedAt != nil
}

// SubmitChallengeRequest はチャレンジ提出リクエストのDTO
type SubmitChallengeRequest struct {
	Code string `json:"code" validate:"notblank,max=65536"`
}

// ChallengeResult は採点結果のレスポンスDTO
type ChallengeResult struct {
	AttemptID uuid.UUID    `json:"attempt_id"`
	Passed    bool         `json:"passed"`
	Details   []CaseResult `json:"details"`
}

// ChallengeView はテストケースの期待出力を含まない表示用DTO
type ChallengeView struct {
	ChallengeID   uuid.UUID `json:"challenge_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Language      Language  `json:"language"`
	StarterCode   string    `json:"starter_code"`
	MinXP         int       `json:"min_xp"`
	TestCaseCount int       `json:"test_case_count"`
}

func NewChallengeView(c *Challenge) *ChallengeView {
	return &ChallengeView{
		ChallengeID:   c.ChallengeID,
		Title:         c.Title,
		Description:   c.Description,
		Language:      c.Language,
		StarterCode:   c.StarterCode,
		MinXP:         c.MinXP,
		TestCaseCount: len(c.TestCases.Data()),
	}
}
