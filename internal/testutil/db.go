// Package testutil はテスト用のインメモリDBとデータ投入ヘルパーです
package testutil

import (
	"fmt"
	"testing"

	"go_roadmap_progress/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// AllModels は AutoMigrate 対象のモデル (マイグレーションSQLと同じ並び)
var AllModels = []interface{}{
	&model.Roadmap{},
	&model.LearningUnit{},
	&model.Lesson{},
	&model.Quiz{},
	&model.QuizQuestion{},
	&model.Challenge{},
	&model.Enrollment{},
	&model.LessonTracking{},
	&model.QuizAttempt{},
	&model.ChallengeAttempt{},
}

// NewSQLiteDB はテストごとに独立したインメモリDBを作成します
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	// DSN をテストごとに変えて cache=shared 同士が干渉しないようにする
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to connect database for testing")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(AllModels...), "failed to migrate database for testing")
	return db
}
