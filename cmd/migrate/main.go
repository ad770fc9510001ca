package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gestor/config"
	logs "gestor/internal/infra/log"
	"gestor/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - up:   apply every pending migration
// - down: roll back the given number of migrations

func main() {
	upCmd := flag.NewFlagSet("up", flag.ExitOnError)
	upURL := upCmd.String("database-url", "", "Database URL, overrides migration.databaseUrl")

	downCmd := flag.NewFlagSet("down", flag.ExitOnError)
	downURL := downCmd.String("database-url", "", "Database URL, overrides migration.databaseUrl")
	downSteps := downCmd.Int("steps", 1, "Number of migrations to roll back")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "up":
		_ = upCmd.Parse(os.Args[2:])
		err = runUp(cfg, *upURL, logger)
	case "down":
		_ = downCmd.Parse(os.Args[2:])
		err = runDown(cfg, *downURL, *downSteps, logger)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func databaseURL(cfg *config.Config, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if cfg.Migration == nil || cfg.Migration.DatabaseURL == "" {
		return "", errors.New("migration.databaseUrl is not configured")
	}

	return cfg.Migration.DatabaseURL, nil
}

func runUp(cfg *config.Config, override string, logger *slog.Logger) error {
	url, err := databaseURL(cfg, override)
	if err != nil {
		return err
	}

	return migrations.Up(url, logger)
}

func runDown(cfg *config.Config, override string, steps int, logger *slog.Logger) error {
	if steps < 1 {
		return errors.Errorf("steps must be positive, got %d", steps)
	}
	url, err := databaseURL(cfg, override)
	if err != nil {
		return err
	}

	return migrations.Down(url, steps, logger)
}

func printUsage() {
	fmt.Println(`Usage: migrate <command> [options]

Commands:
  up      Apply all pending migrations
  down    Roll back migrations (-steps N, default 1)

Options:
  -database-url  Overrides migration.databaseUrl from config`)
}
