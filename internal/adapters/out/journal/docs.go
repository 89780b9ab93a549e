// Package journal provides the sinks kernel.Journal lines end up in:
//   - Writer: plain lines on an io.Writer, used for the console
//   - Slog: one structured log record per line
//   - Recent: a bounded in-memory window readable through ports.JournalReader
//   - Tee: fans a line out to several sinks
//
// The postgres sink lives in internal/adapters/out/postgres/journalrepo.
package journal
