package journal

import (
	"context"
	"sync"

	"orderflow/internal/pkg/errs"
)

// DefaultRecentCapacity is the window used by the HTTP driver when none is configured.
const DefaultRecentCapacity = 500

// Recent keeps the last capacity lines in a ring buffer.
type Recent struct {
	mu    sync.Mutex
	lines []string
	next  int
	full  bool
}

func NewRecent(capacity int) (*Recent, error) {
	if capacity <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("capacity", capacity, 1, "unbounded")
	}
	return &Recent{lines: make([]string, capacity)}, nil
}

func (j *Recent) Record(line string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.lines[j.next] = line
	j.next = (j.next + 1) % len(j.lines)
	if j.next == 0 {
		j.full = true
	}
	return nil
}

func (j *Recent) Recent(_ context.Context, limit int) ([]string, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	var ordered []string
	if j.full {
		ordered = append(ordered, j.lines[j.next:]...)
		ordered = append(ordered, j.lines[:j.next]...)
	} else {
		ordered = append(ordered, j.lines[:j.next]...)
	}

	if limit > 0 && limit < len(ordered) {
		ordered = ordered[len(ordered)-limit:]
	}
	if ordered == nil {
		ordered = []string{}
	}
	return ordered, nil
}
