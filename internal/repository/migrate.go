package repository

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

var (
	gooseRunFunc = goose.RunContext // mockable
	gooseExit    = os.Exit
)

// gooseLogger は goose の出力を slog に流すアダプタ
type gooseLogger struct {
	logger *slog.Logger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...), "component", "goose")
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...), "component", "goose")
	gooseExit(1)
}

// Migrate は埋め込みSQLマイグレーションに対して goose コマンド (up, down, status ...) を実行します
func Migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger, command string, args ...string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("repository.Migrate: get sql.DB: %w", err)
	}

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(gooseLogger{logger: logger})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("repository.Migrate: set dialect: %w", err)
	}

	logger.Info("Running migrations", "command", command, "args", args)
	if err := gooseRunFunc(ctx, command, sqlDB, migrationsDir, args...); err != nil {
		return fmt.Errorf("repository.Migrate: goose %s: %w", command, err)
	}
	return nil
}
