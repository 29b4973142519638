// cmd/migrate/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"go_roadmap_progress/internal/config"
	"go_roadmap_progress/internal/logging"
	"go_roadmap_progress/internal/repository"
)

const usage = `Usage: migrate [-config dir] <command> [args]

Commands:
  up           最新まで適用
  up-to V      バージョン V まで適用
  down         1つ戻す
  redo         直近を再適用
  status       適用状況を表示
  version      現在のバージョンを表示
`

func main() {
	configPath := flag.String("config", "configs", "config.yaml のあるディレクトリ")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	command := flag.Arg(0)
	switch command {
	case "up", "up-to", "down", "redo", "status", "version":
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		flag.Usage()
		os.Exit(2)
	}

	if err := config.LoadConfig(*configPath); err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	logger := logging.NewLogger(os.Stderr, &config.Cfg)
	slog.SetDefault(logger)
	defer logging.Flush()

	db, err := repository.NewDB(config.Cfg.Database.URL, config.Cfg.Env, logger)
	if err != nil {
		logger.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := repository.Migrate(context.Background(), db, logger, command, flag.Args()[1:]...); err != nil {
		logger.Error("Migration failed", slog.String("command", command), slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Migration finished", slog.String("command", command))
}
