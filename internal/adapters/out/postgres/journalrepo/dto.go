// Package journalrepo stores journal lines in PostgreSQL through GORM. It is an
// output sink: orders themselves are never persisted.
package journalrepo

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntryDTO is one recorded line. Seq gives a total order even when several
// lines share a timestamp.
type JournalEntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int64     `gorm:"autoIncrement;uniqueIndex;not null"`
	Line       string    `gorm:"type:text;not null"`
	RecordedAt time.Time `gorm:"index;not null"`
}

// TableName overrides GORM's default naming.
func (JournalEntryDTO) TableName() string {
	return "journal_entries"
}

func newEntry(line string, now time.Time) JournalEntryDTO {
	return JournalEntryDTO{
		ID:         uuid.New(),
		Line:       line,
		RecordedAt: now.UTC(),
	}
}
