package kernel

import "sync"

// Journal is the line-based output channel delivery strategies and order observers
// report to. Implementations decide where a line ends up (console, structured log,
// database); a returned error means the line could not be recorded.
type Journal interface {
	Record(line string) error
}

// JournalFunc adapts a plain function to the Journal interface.
type JournalFunc func(line string) error

func (f JournalFunc) Record(line string) error {
	return f(line)
}

// DiscardJournal drops every line.
var DiscardJournal Journal = JournalFunc(func(string) error { return nil })

// MemoryJournal keeps recorded lines in memory. It is safe for concurrent use and is
// what tests and request-scoped captures use.
type MemoryJournal struct {
	mu    sync.Mutex
	lines []string
}

func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{}
}

func (j *MemoryJournal) Record(line string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.lines = append(j.lines, line)
	return nil
}

// Lines returns a copy of the recorded lines in recording order.
func (j *MemoryJournal) Lines() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]string, len(j.lines))
	copy(out, j.lines)
	return out
}

// Reset forgets every recorded line.
func (j *MemoryJournal) Reset() {
	j.mu.Lock()
	j.lines = nil
	j.mu.Unlock()
}
