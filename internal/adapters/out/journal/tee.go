package journal

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
)

// Tee records every line on each sink in order. All sinks are attempted; their
// failures are joined.
type Tee struct {
	sinks []kernel.Journal
}

// NewTee skips nil sinks.
func NewTee(sinks ...kernel.Journal) *Tee {
	kept := make([]kernel.Journal, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			kept = append(kept, s)
		}
	}
	return &Tee{sinks: kept}
}

func (t *Tee) Record(line string) error {
	var failures []error
	for _, s := range t.sinks {
		if err := s.Record(line); err != nil {
			failures = append(failures, err)
		}
	}
	return errors.Join(failures...)
}
