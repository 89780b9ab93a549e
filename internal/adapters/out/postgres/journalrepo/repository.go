package journalrepo

import (
	"context"
	"time"

	"orderflow/internal/pkg/errs"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultWriteTimeout bounds a single Record call.
const DefaultWriteTimeout = 3 * time.Second

// GormJournal implements kernel.Journal and ports.JournalReader on top of a
// journal_entries table.
type GormJournal struct {
	db           *gorm.DB
	writeTimeout time.Duration
	now          func() time.Time
}

// Open connects to dsn and migrates the journal table.
func Open(ctx context.Context, dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errs.NewValueIsRequiredError("journal dsn")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err = db.WithContext(ctx).AutoMigrate(&JournalEntryDTO{}); err != nil {
		return nil, err
	}
	return db, nil
}

func NewGormJournal(db *gorm.DB) (*GormJournal, error) {
	if db == nil {
		return nil, errs.NewValueIsRequiredError("db")
	}
	return &GormJournal{
		db:           db,
		writeTimeout: DefaultWriteTimeout,
		now:          time.Now,
	}, nil
}

// Record inserts the line as a new row.
func (j *GormJournal) Record(line string) error {
	ctx, cancel := context.WithTimeout(context.Background(), j.writeTimeout)
	defer cancel()

	entry := newEntry(line, j.now())
	return j.db.WithContext(ctx).Create(&entry).Error
}

// Recent returns the newest lines, oldest first.
func (j *GormJournal) Recent(ctx context.Context, limit int) ([]string, error) {
	var entries []JournalEntryDTO

	tx := j.db.WithContext(ctx).Order("seq DESC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if err := tx.Find(&entries).Error; err != nil {
		return nil, err
	}

	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[len(entries)-1-i] = e.Line
	}
	return lines, nil
}

// Count returns the number of stored lines.
func (j *GormJournal) Count(ctx context.Context) (int64, error) {
	var n int64
	err := j.db.WithContext(ctx).Model(&JournalEntryDTO{}).Count(&n).Error
	return n, err
}
