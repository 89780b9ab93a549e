package journal

import (
	"io"
	"sync"
)

// Writer prints each line followed by a newline. Writes are serialised so lines
// from concurrent notification cycles never interleave mid-line.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (j *Writer) Record(line string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	_, err := io.WriteString(j.w, line+"\n")
	return err
}
