package month

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput is returned when form input fails parsing or validation.
var ErrInvalidInput = errors.New("invalid input")

// Record is one labeled period of expected versus actual hours. Diff is
// derived and must always equal Actual - Expected.
type Record struct {
	Name     string  `json:"name"`
	Expected float64 `json:"expected"`
	Actual   float64 `json:"actual"`
	Diff     float64 `json:"diff"`
}

func NewRecord(name string, expected, actual float64) Record {
	r := Record{
		Name:     name,
		Expected: expected,
		Actual:   actual,
	}
	r.Recompute()
	return r
}

// Recompute re-derives Diff from Expected and Actual.
func (r *Record) Recompute() {
	r.Diff = round2(decimal.NewFromFloat(r.Actual).Sub(decimal.NewFromFloat(r.Expected)))
}

// Entry is already-parsed form input for adding or editing a record.
// ExpectedHours is whole hours when typed in, but keeps the fraction of an
// imported record so an edit does not rewrite it.
type Entry struct {
	Name          string
	ExpectedHours float64
	ActualHours   int
	ActualMinutes int
}

func (e Entry) Validate() error {
	switch {
	case strings.TrimSpace(e.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	case e.ExpectedHours < 0:
		return fmt.Errorf("%w: expected hours must not be negative", ErrInvalidInput)
	case e.ActualHours < 0:
		return fmt.Errorf("%w: actual hours must not be negative", ErrInvalidInput)
	case e.ActualMinutes < 0 || e.ActualMinutes > 59:
		return fmt.Errorf("%w: minutes must be between 0 and 59", ErrInvalidInput)
	}
	return nil
}

// Actual returns the worked time in decimal hours, minutes folded in as a
// fraction rounded to two places.
func (e Entry) Actual() float64 {
	minutes := decimal.NewFromInt(int64(e.ActualMinutes)).Div(decimal.NewFromInt(60))
	return round2(decimal.NewFromInt(int64(e.ActualHours)).Add(minutes))
}

func (e Entry) Record() Record {
	return NewRecord(strings.TrimSpace(e.Name), e.ExpectedHours, e.Actual())
}

// RecordOver builds the replacement for prev. When the hours and minutes
// fields still show prev's actual time, prev's exact value is kept instead
// of the minute-rounded one.
func (e Entry) RecordOver(prev Record) Record {
	r := e.Record()
	if hours, minutes := Split(prev.Actual); hours == e.ActualHours && minutes == e.ActualMinutes {
		r.Actual = prev.Actual
		r.Recompute()
	}
	return r
}

// EntryFromRecord splits a record back into form fields.
func EntryFromRecord(r Record) Entry {
	hours, minutes := Split(r.Actual)
	return Entry{
		Name:          r.Name,
		ExpectedHours: r.Expected,
		ActualHours:   hours,
		ActualMinutes: minutes,
	}
}

// ParseEntry parses raw text fields. Blank numeric fields count as zero.
func ParseEntry(name, expected, actualHours, actualMinutes string) (Entry, error) {
	e := Entry{Name: strings.TrimSpace(name)}

	var err error
	if e.ExpectedHours, err = parseHours("expected hours", expected); err != nil {
		return Entry{}, err
	}
	if e.ActualHours, err = parseField("actual hours", actualHours); err != nil {
		return Entry{}, err
	}
	if e.ActualMinutes, err = parseField("actual minutes", actualMinutes); err != nil {
		return Entry{}, err
	}

	if err := e.Validate(); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func parseHours(label, input string) (float64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(input)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrInvalidInput, label, input)
	}
	return d.InexactFloat64(), nil
}

func parseField(label, input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a whole number", ErrInvalidInput, label, input)
	}
	return v, nil
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
