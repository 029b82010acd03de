package ledger

import (
	"fmt"

	"luhi_tools/internal/month"
)

// Store holds the ordered records behind a Ledger. Indexes are zero based
// and always dense.
type Store interface {
	List() ([]month.Record, error)
	Len() (int, error)
	Append(r month.Record) error
	Set(i int, r month.Record) error
	Remove(i int) error
	ReplaceAll(records []month.Record) error
}

// MemoryStore is a Store backed by a plain slice.
type MemoryStore struct {
	records []month.Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) List() ([]month.Record, error) {
	return append([]month.Record(nil), s.records...), nil
}

func (s *MemoryStore) Len() (int, error) {
	return len(s.records), nil
}

func (s *MemoryStore) Append(r month.Record) error {
	s.records = append(s.records, r)
	return nil
}

func (s *MemoryStore) Set(i int, r month.Record) error {
	if i < 0 || i >= len(s.records) {
		return fmt.Errorf("no month at position %d", i)
	}
	s.records[i] = r
	return nil
}

func (s *MemoryStore) Remove(i int) error {
	if i < 0 || i >= len(s.records) {
		return fmt.Errorf("no month at position %d", i)
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	return nil
}

func (s *MemoryStore) ReplaceAll(records []month.Record) error {
	s.records = append([]month.Record(nil), records...)
	return nil
}
