package journal_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"orderflow/internal/adapters/out/journal"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ kernel.Journal      = (*journal.Writer)(nil)
	_ kernel.Journal      = (*journal.Slog)(nil)
	_ kernel.Journal      = (*journal.Tee)(nil)
	_ kernel.Journal      = (*journal.Recent)(nil)
	_ ports.JournalReader = (*journal.Recent)(nil)
)

func TestWriter_Record(t *testing.T) {
	t.Run("should write one line per record", func(t *testing.T) {
		var buf bytes.Buffer
		j := journal.NewWriter(&buf)

		require.NoError(t, j.Record("[Bike] delivering order ORD-002"))
		require.NoError(t, j.Record("second"))

		assert.Equal(t, "[Bike] delivering order ORD-002\nsecond\n", buf.String())
	})
}

func TestSlog_Record(t *testing.T) {
	t.Run("should log the line at the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		j := journal.NewSlog(logger, slog.LevelInfo)

		require.NoError(t, j.Record("[AdminDashboard] order status updated on panel: Order ORD-1: CREATED"))

		out := buf.String()
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, "component=journal")
		assert.Contains(t, out, "ORD-1: CREATED")
	})
}

func TestTee_Record(t *testing.T) {
	t.Run("should record on every sink", func(t *testing.T) {
		a, b := kernel.NewMemoryJournal(), kernel.NewMemoryJournal()

		require.NoError(t, journal.NewTee(a, nil, b).Record("line"))

		assert.Equal(t, []string{"line"}, a.Lines())
		assert.Equal(t, []string{"line"}, b.Lines())
	})

	t.Run("should keep going after a failing sink and join the failures", func(t *testing.T) {
		boom := errors.New("disk full")
		failing := kernel.JournalFunc(func(string) error { return boom })
		after := kernel.NewMemoryJournal()

		err := journal.NewTee(failing, after).Record("line")

		require.ErrorIs(t, err, boom)
		assert.Equal(t, []string{"line"}, after.Lines())
	})
}

func TestRecent(t *testing.T) {
	t.Run("should reject a non-positive capacity", func(t *testing.T) {
		_, err := journal.NewRecent(0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should return lines oldest first", func(t *testing.T) {
		j, _ := journal.NewRecent(5)
		for _, l := range []string{"a", "b", "c"} {
			require.NoError(t, j.Record(l))
		}

		lines, err := j.Recent(t.Context(), 0)

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, lines)
	})

	t.Run("should drop the oldest lines once full", func(t *testing.T) {
		j, _ := journal.NewRecent(3)
		for _, l := range strings.Split("abcde", "") {
			require.NoError(t, j.Record(l))
		}

		all, _ := j.Recent(t.Context(), 0)
		last2, _ := j.Recent(t.Context(), 2)

		assert.Equal(t, []string{"c", "d", "e"}, all)
		assert.Equal(t, []string{"d", "e"}, last2)
	})

	t.Run("should return an empty slice when nothing was recorded", func(t *testing.T) {
		j, _ := journal.NewRecent(3)

		lines, err := j.Recent(t.Context(), 10)

		require.NoError(t, err)
		assert.NotNil(t, lines)
		assert.Empty(t, lines)
	})
}
