// Package importer turns bank CSV exports into balanced journal entries:
// a field-mapping driven row parser, an ordered-rule account matcher, and
// a session that books the matched rows.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	date "github.com/joyt/godate"
	"github.com/shopspring/decimal"

	"github.com/uzbekdev1/SimpleAccounting/internal/model"
)

// FormatError reports a stream that cannot be interpreted per the field
// mapping: a missing header, a required column absent from it, or a row
// whose required field does not parse. It aborts the whole import.
type FormatError struct {
	Line  int // 1-based line in the stream, 1 = header
	Field string
	Err   error
}

func (e FormatError) Error() string {
	return fmt.Sprintf("line %d, field %q: %v", e.Line, e.Field, e.Err)
}

func (e FormatError) Unwrap() error { return e.Err }

// ParseRows reads delimited rows from r per the field mapping, keeps the
// rows dated within [minDate, maxDate] (inclusive) and numbers them from
// baseNumber upward. Single pass: the reader is consumed once and cannot
// be rewound. Rows outside the window are skipped silently; any other
// irregularity fails the whole parse.
func ParseRows(r io.Reader, mapping model.FieldMapping, minDate, maxDate time.Time, baseNumber uint64) ([]model.ImportRow, error) {
	if err := mapping.Validate(); err != nil {
		return nil, fmt.Errorf("invalid field mapping: %w", err)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, FormatError{Line: 1, Field: "header", Err: fmt.Errorf("missing header row: %w", err)}
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	dateCol, _ := mapping.Column(model.RoleDate)
	valueCol, _ := mapping.Column(model.RoleValue)

	dateIdx, ok := cols[dateCol.Source]
	if !ok {
		return nil, FormatError{Line: 1, Field: dateCol.Source, Err: errors.New("date column not in header")}
	}
	valueIdx, ok := cols[valueCol.Source]
	if !ok {
		return nil, FormatError{Line: 1, Field: valueCol.Source, Err: errors.New("value column not in header")}
	}

	// Name and text are optional; unmapped or absent columns read as empty.
	nameIdx, textIdx := -1, -1
	if c, ok := mapping.Column(model.RoleName); ok {
		if i, ok := cols[c.Source]; ok {
			nameIdx = i
		}
	}
	var cleanup *regexp.Regexp
	if c, ok := mapping.Column(model.RoleText); ok {
		if i, ok := cols[c.Source]; ok {
			textIdx = i
		}
		if c.Cleanup != "" {
			cleanup, err = regexp.Compile(c.Cleanup)
			if err != nil {
				return nil, fmt.Errorf("compiling cleanup pattern %q: %w", c.Cleanup, err)
			}
		}
	}

	dates := dateParser{layout: dateCol.Layout, explicit: dateCol.Layout != ""}

	var rows []model.ImportRow
	number := baseNumber
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, FormatError{Line: line, Field: "record", Err: err}
		}

		rowDate, err := dates.parse(field(record, dateIdx))
		if err != nil {
			return nil, FormatError{Line: line, Field: dateCol.Source, Err: err}
		}
		if rowDate.Before(minDate) || rowDate.After(maxDate) {
			// Outside the import window: expected filtering, not an error.
			continue
		}

		value, err := parseValue(field(record, valueIdx))
		if err != nil {
			return nil, FormatError{Line: line, Field: valueCol.Source, Err: err}
		}

		text := field(record, textIdx)
		if cleanup != nil {
			text = cleanup.ReplaceAllString(text, "")
		}

		rows = append(rows, model.ImportRow{
			Number: number,
			Date:   rowDate,
			Name:   field(record, nameIdx),
			Text:   text,
			Value:  value,
		})
		number++
	}
	return rows, nil
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// dateParser caches the last layout that worked so a homogeneous file is
// detected once, not per row.
type dateParser struct {
	layout   string
	explicit bool // layout came from the mapping, no detection fallback
}

func (p *dateParser) parse(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}
	if p.layout != "" {
		if t, err := time.Parse(p.layout, s); err == nil {
			return t, nil
		} else if p.explicit {
			return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
		}
	}
	t, layout, err := date.ParseAndGetLayout(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	p.layout = layout
	return t, nil
}

// parseValue reads a signed decimal, accepting both "1234.56" and the
// European "1.234,56" form produced by some bank exports.
func parseValue(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, errors.New("empty value")
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing value: %w", err)
	}
	return d, nil
}
