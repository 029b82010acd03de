// Package ledger holds the ordered list of month records and the rules
// derived from it: totals and the JSON import/export document.
package ledger

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"luhi_tools/internal/month"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrMalformedImport = errors.New("malformed import")
)

// HoursPerWorkDay is used for the approximate work day count.
const HoursPerWorkDay = 8

type Ledger struct {
	store Store
}

func New(store Store) *Ledger {
	return &Ledger{store: store}
}

func (l *Ledger) Records() ([]month.Record, error) {
	return l.store.List()
}

func (l *Ledger) Len() (int, error) {
	return l.store.Len()
}

func (l *Ledger) Add(e month.Entry) (month.Record, error) {
	if err := e.Validate(); err != nil {
		return month.Record{}, err
	}
	r := e.Record()
	if err := l.store.Append(r); err != nil {
		return month.Record{}, fmt.Errorf("failed to add %q: %w", r.Name, err)
	}
	return r, nil
}

func (l *Ledger) Edit(index int, e month.Entry) (month.Record, error) {
	records, err := l.store.List()
	if err != nil {
		return month.Record{}, err
	}
	if index < 0 || index >= len(records) {
		return month.Record{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(records))
	}
	if err := e.Validate(); err != nil {
		return month.Record{}, err
	}
	r := e.RecordOver(records[index])
	if err := l.store.Set(index, r); err != nil {
		return month.Record{}, fmt.Errorf("failed to edit month %d: %w", index, err)
	}
	return r, nil
}

// Delete removes the record at index; later records move down by one.
// Asking the user for confirmation is the caller's job.
func (l *Ledger) Delete(index int) (month.Record, error) {
	records, err := l.store.List()
	if err != nil {
		return month.Record{}, err
	}
	if index < 0 || index >= len(records) {
		return month.Record{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(records))
	}
	if err := l.store.Remove(index); err != nil {
		return month.Record{}, fmt.Errorf("failed to delete month %d: %w", index, err)
	}
	return records[index], nil
}

// Totals sums the stored records. Months is the record count.
type Totals struct {
	Expected float64
	Actual   float64
	Diff     float64
	Months   int
}

// WorkDays approximates the expected hours as 8 hour days.
func (t Totals) WorkDays() int {
	return int(math.Round(t.Expected / HoursPerWorkDay))
}

// Totals adds up every record's fields. Diff is the sum of the stored
// per-record diffs, which every write path keeps equal to Actual - Expected.
func (l *Ledger) Totals() (Totals, error) {
	records, err := l.store.List()
	if err != nil {
		return Totals{}, err
	}
	var expected, actual, diff decimal.Decimal
	for _, r := range records {
		expected = expected.Add(decimal.NewFromFloat(r.Expected))
		actual = actual.Add(decimal.NewFromFloat(r.Actual))
		diff = diff.Add(decimal.NewFromFloat(r.Diff))
	}
	return Totals{
		Expected: expected.InexactFloat64(),
		Actual:   actual.InexactFloat64(),
		Diff:     diff.InexactFloat64(),
		Months:   len(records),
	}, nil
}

// Document is the import/export file layout.
type Document struct {
	Months []month.Record `json:"months"`
}

// Export renders the ledger as an indented JSON document.
func (l *Ledger) Export() ([]byte, error) {
	records, err := l.store.List()
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []month.Record{}
	}
	return json.MarshalIndent(Document{Months: records}, "", "  ")
}

// Import replaces the whole ledger with the months of a JSON document.
// Each record's diff is re-derived rather than trusted. On any error the
// ledger is left as it was.
func (l *Ledger) Import(data []byte) (int, error) {
	records, err := Decode(data)
	if err != nil {
		return 0, err
	}
	if err := l.store.ReplaceAll(records); err != nil {
		return 0, fmt.Errorf("failed to replace months: %w", err)
	}
	return len(records), nil
}

// Decode parses an import document without touching any ledger.
func Decode(data []byte) ([]month.Record, error) {
	// a map keeps the key lookup exact; struct tags would also match "Months"
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}
	months := bytes.TrimSpace(raw["months"])
	if len(months) == 0 || months[0] != '[' {
		return nil, fmt.Errorf("%w: expected a JSON object with a months array", ErrMalformedImport)
	}

	var records []month.Record
	if err := json.Unmarshal(months, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}
	for i := range records {
		records[i].Recompute()
	}
	if records == nil {
		records = []month.Record{}
	}
	return records, nil
}

// Seed appends the sample months the application starts with.
func (l *Ledger) Seed() error {
	samples := []month.Record{
		month.NewRecord("January", 168, 160),
		month.NewRecord("February", 174, 184),
		month.NewRecord("March", 176, 175),
		month.NewRecord("April", 168, 172),
	}
	for _, r := range samples {
		if err := l.store.Append(r); err != nil {
			return err
		}
	}
	return nil
}
