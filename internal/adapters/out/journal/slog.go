package journal

import (
	"context"
	"log/slog"
)

// Slog turns every line into a log record carrying the line as an attribute.
type Slog struct {
	logger *slog.Logger
	level  slog.Level
}

func NewSlog(logger *slog.Logger, level slog.Level) *Slog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Slog{
		logger: logger.With("component", "journal"),
		level:  level,
	}
}

func (j *Slog) Record(line string) error {
	j.logger.Log(context.Background(), j.level, "journal line", "line", line)
	return nil
}
