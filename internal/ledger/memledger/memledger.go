package memledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/ekuzmichev/sheetbet/internal/ledger"
)

type table struct {
	header []string
	rows   [][]string
}

// Store is an in-memory ledger.Store. It exists for tests and local runs and
// mirrors the sheet semantics: positional cells, header on row 1, no types.
type Store struct {
	mu     sync.Mutex
	tables map[string]*table
}

func New() *Store {
	return &Store{tables: make(map[string]*table)}
}

// Seed replaces a table wholesale with the given header and data rows.
func (s *Store) Seed(name string, header []string, rows ...[]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &table{header: append([]string(nil), header...)}
	for _, r := range rows {
		t.rows = append(t.rows, append([]string(nil), r...))
	}
	s.tables[name] = t
}

func (s *Store) FetchHeader(_ context.Context, name string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.tables[name]
	if t == nil {
		return nil, nil
	}
	return append([]string(nil), t.header...), nil
}

func (s *Store) FetchAllRows(_ context.Context, name string) ([]ledger.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.tables[name]
	if t == nil {
		return nil, nil
	}
	records := make([]ledger.Record, 0, len(t.rows))
	for _, row := range t.rows {
		rec := make(ledger.Record, len(t.header))
		for i, col := range t.header {
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = ""
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *Store) AppendRow(_ context.Context, name string, values []any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.tables[name]
	if t == nil {
		t = &table{}
		s.tables[name] = t
	}
	row := make([]string, len(values))
	for i, v := range values {
		row[i] = fmt.Sprint(v)
	}
	if len(t.header) == 0 {
		// First append into an empty table becomes the header, the way a
		// blank worksheet behaves.
		t.header = row
		return nil
	}
	t.rows = append(t.rows, row)
	return nil
}

func (s *Store) WriteCell(_ context.Context, name string, row int, column string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.tables[name]
	if t == nil {
		return fmt.Errorf("table %q not found", name)
	}
	colIdx := -1
	for i, h := range t.header {
		if h == column {
			colIdx = i
			break
		}
	}
	if colIdx < 0 {
		colIdx = len(t.header)
		t.header = append(t.header, column)
	}
	if row == 1 {
		return nil // header write already applied above
	}
	dataIdx := row - 2
	if dataIdx < 0 || dataIdx >= len(t.rows) {
		return fmt.Errorf("row %d out of range for table %q", row, name)
	}
	for len(t.rows[dataIdx]) <= colIdx {
		t.rows[dataIdx] = append(t.rows[dataIdx], "")
	}
	t.rows[dataIdx][colIdx] = fmt.Sprint(value)
	return nil
}

func (s *Store) DeleteRow(_ context.Context, name string, row int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.tables[name]
	if t == nil {
		return fmt.Errorf("table %q not found", name)
	}
	dataIdx := row - 2
	if dataIdx < 0 || dataIdx >= len(t.rows) {
		return fmt.Errorf("row %d out of range for table %q", row, name)
	}
	t.rows = append(t.rows[:dataIdx], t.rows[dataIdx+1:]...)
	return nil
}

func (s *Store) ClearTable(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[name] = &table{}
	return nil
}
