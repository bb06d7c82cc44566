// Package history keeps the in-session record of completed analyses. Entries
// live for the lifetime of the process only; there is no durable storage.
package history

import (
	"encoding/csv"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry is one completed analysis.
type Entry struct {
	ID        string
	Timestamp time.Time
	Type      string
	Query     string
	Result    string
}

// Store is an ordered, process-scoped history list. Safe for concurrent use;
// the HTTP layer may serve overlapping requests.
type Store struct {
	mu      sync.Mutex
	entries []Entry
}

func NewStore() *Store {
	return &Store{}
}

// Append records one successful analysis and returns the stored entry.
func (s *Store) Append(kind, query, result string) Entry {
	entry := Entry{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Type:      kind,
		Query:     query,
		Result:    result,
	}

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()

	return entry
}

// Entries returns a copy of the history in insertion order.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), s.entries...)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// WriteCSV flattens the history into CSV rows for export.
func (s *Store) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"timestamp", "type", "query", "result"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, e := range s.Entries() {
		row := []string{e.Timestamp.Format("2006-01-02 15:04:05"), e.Type, e.Query, e.Result}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
