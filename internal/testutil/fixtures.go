package testutil

import (
	"testing"
	"time"

	"go_roadmap_progress/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Fixture はテストデータを投入するヘルパー
type Fixture struct {
	t  *testing.T
	DB *gorm.DB
}

func NewFixture(t *testing.T, db *gorm.DB) *Fixture {
	return &Fixture{t: t, DB: db}
}

func (f *Fixture) create(v interface{}) {
	f.t.Helper()
	require.NoError(f.t, f.DB.Create(v).Error)
}

func (f *Fixture) Roadmap(active bool) *model.Roadmap {
	r := &model.Roadmap{RoadmapID: uuid.New(), Title: "Go入門", Level: "beginner", IsActive: active}
	f.create(r)
	return r
}

func (f *Fixture) Unit(roadmapID uuid.UUID, position int, unitType model.UnitType) *model.LearningUnit {
	u := &model.LearningUnit{
		LearningUnitID: uuid.New(),
		RoadmapID:      roadmapID,
		Title:          string(unitType) + " unit",
		Position:       position,
		UnitType:       unitType,
		IsActive:       true,
	}
	f.create(u)
	return u
}

func (f *Fixture) Lesson(unit *model.LearningUnit) *model.Lesson {
	l := &model.Lesson{LessonID: uuid.New(), LearningUnitID: unit.LearningUnitID, Title: unit.Title, Content: "本文"}
	f.create(l)
	return l
}

// Question は正解 correct と選択肢 options を持つ設問を組み立てます (未保存)
func Question(order, xp int, correct string, options ...string) model.QuizQuestion {
	return model.QuizQuestion{
		QuestionID:    uuid.New(),
		QuestionText:  "question",
		Options:       datatypes.NewJSONType(options),
		CorrectAnswer: correct,
		QuestionXP:    xp,
		SortOrder:     order,
	}
}

func (f *Fixture) Quiz(unit *model.LearningUnit, minXP, maxXP int, questions ...model.QuizQuestion) *model.Quiz {
	q := &model.Quiz{
		QuizID:         uuid.New(),
		LearningUnitID: unit.LearningUnitID,
		Title:          unit.Title,
		MinXP:          minXP,
		MaxXP:          maxXP,
		IsActive:       true,
		Questions:      questions,
	}
	f.create(q)
	return q
}

func (f *Fixture) Challenge(unit *model.LearningUnit, language model.Language, cases ...model.TestCase) *model.Challenge {
	c := &model.Challenge{
		ChallengeID:    uuid.New(),
		LearningUnitID: unit.LearningUnitID,
		Title:          unit.Title,
		MinXP:          0,
		Language:       language,
		StarterCode:    "# write your code",
		TestCases:      datatypes.NewJSONType(cases),
		IsActive:       true,
	}
	f.create(c)
	return c
}

func (f *Fixture) Enrollment(userID, roadmapID uuid.UUID, xp int) *model.Enrollment {
	e := &model.Enrollment{
		EnrollmentID: uuid.New(),
		UserID:       userID,
		RoadmapID:    roadmapID,
		Status:       model.EnrollmentActive,
		XPPoints:     xp,
		StartedAt:    time.Now(),
	}
	f.create(e)
	return e
}

func (f *Fixture) CompletedLesson(userID, lessonID uuid.UUID) *model.LessonTracking {
	tr := &model.LessonTracking{
		TrackingID:    uuid.New(),
		UserID:        userID,
		LessonID:      lessonID,
		IsComplete:    true,
		LastUpdatedAt: time.Now(),
	}
	f.create(tr)
	return tr
}

// ReloadEnrollment は参加記録をDBから読み直します
func (f *Fixture) ReloadEnrollment(enrollmentID uuid.UUID) *model.Enrollment {
	f.t.Helper()
	var e model.Enrollment
	require.NoError(f.t, f.DB.Where("enrollment_id = ?", enrollmentID).First(&e).Error)
	return &e
}
