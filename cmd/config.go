package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ModeSimulate = "simulate"
	ModeServe    = "serve"
)

type Config struct {
	AppMode             string
	HTTPPort            string
	ScenarioFile        string
	LogLevel            slog.Level
	ProgressionSchedule string
	PurgeSchedule       string
	JournalDSN          string
	JournalCapacity     int
}

// LoadConfig reads the environment, after loading envFile when it exists. Variables
// already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := Config{
		AppMode:             envOr("APP_MODE", ModeSimulate),
		HTTPPort:            envOr("HTTP_PORT", "8080"),
		ScenarioFile:        os.Getenv("SCENARIO_FILE"),
		ProgressionSchedule: os.Getenv("PROGRESSION_SCHEDULE"),
		PurgeSchedule:       os.Getenv("PURGE_SCHEDULE"),
		JournalDSN:          os.Getenv("JOURNAL_DSN"),
	}

	var problems []error
	if cfg.AppMode != ModeSimulate && cfg.AppMode != ModeServe {
		problems = append(problems, fmt.Errorf("APP_MODE must be %q or %q, got %q", ModeSimulate, ModeServe, cfg.AppMode))
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(envOr("LOG_LEVEL", "INFO"))); err != nil {
		problems = append(problems, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	capacity, err := strconv.Atoi(envOr("JOURNAL_CAPACITY", "500"))
	if err != nil || capacity <= 0 {
		problems = append(problems, errors.New("JOURNAL_CAPACITY must be a positive integer"))
	}
	cfg.JournalCapacity = capacity

	if err = errors.Join(problems...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
