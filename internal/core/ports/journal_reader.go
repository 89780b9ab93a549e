package ports

import "context"

// JournalReader exposes the most recent journal lines to drivers.
type JournalReader interface {
	// Recent returns at most limit lines, oldest first. A non-positive limit
	// returns every line the reader still holds.
	Recent(ctx context.Context, limit int) ([]string, error)
}
