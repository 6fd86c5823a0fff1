package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/uzbekdev1/SimpleAccounting/internal/model"
)

// Header is the CSV header for journal.csv. One row per split; rows of the
// same entry share a booking number and must be adjacent.
const Header = "number,date,side,account,text,amount"

const (
	numFields  = 6
	dateFormat = "2006-01-02"
	colNumber  = 0
	colDate    = 1
	colSide    = 2
	colAccount = 3
	colText    = 4
	colAmount  = 5

	sideCredit = "credit"
	sideDebit  = "debit"
)

// ReadEntries reads a journal.csv stream into entries.
func ReadEntries(r io.Reader) ([]model.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var entries []model.Entry
	var current *model.Entry
	for i, rec := range records[1:] {
		number, date, side, split, err := unmarshalSplit(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		if current == nil || current.Number != number {
			entries = append(entries, model.Entry{Number: number, Date: date})
			current = &entries[len(entries)-1]
		} else if !current.Date.Equal(date) {
			return nil, fmt.Errorf("row %d: entry %d has conflicting dates", i+2, number)
		}

		switch side {
		case sideCredit:
			current.Credits = append(current.Credits, split)
		case sideDebit:
			current.Debits = append(current.Debits, split)
		}
	}
	return entries, nil
}

// WriteEntries writes entries to a journal.csv writer, header included.
func WriteEntries(w io.Writer, entries []model.Entry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, e := range entries {
		for _, s := range e.Credits {
			if err := cw.Write(marshalSplit(e, sideCredit, s)); err != nil {
				return fmt.Errorf("writing entry %d: %w", e.Number, err)
			}
		}
		for _, s := range e.Debits {
			if err := cw.Write(marshalSplit(e, sideDebit, s)); err != nil {
				return fmt.Errorf("writing entry %d: %w", e.Number, err)
			}
		}
	}
	return cw.Error()
}

func marshalSplit(e model.Entry, side string, s model.Split) []string {
	row := make([]string, numFields)
	row[colNumber] = strconv.FormatUint(e.Number, 10)
	row[colDate] = e.Date.Format(dateFormat)
	row[colSide] = side
	row[colAccount] = strconv.FormatUint(uint64(s.Account), 10)
	row[colText] = s.Text
	row[colAmount] = s.Amount.String()
	return row
}

func unmarshalSplit(rec []string) (uint64, time.Time, string, model.Split, error) {
	number, err := strconv.ParseUint(rec[colNumber], 10, 64)
	if err != nil {
		return 0, time.Time{}, "", model.Split{}, fmt.Errorf("parsing number %q: %w", rec[colNumber], err)
	}

	date, err := time.Parse(dateFormat, rec[colDate])
	if err != nil {
		return 0, time.Time{}, "", model.Split{}, fmt.Errorf("parsing date %q: %w", rec[colDate], err)
	}

	side := rec[colSide]
	if side != sideCredit && side != sideDebit {
		return 0, time.Time{}, "", model.Split{}, fmt.Errorf("unknown side %q", side)
	}

	account, err := strconv.ParseUint(rec[colAccount], 10, 64)
	if err != nil {
		return 0, time.Time{}, "", model.Split{}, fmt.Errorf("parsing account %q: %w", rec[colAccount], err)
	}

	amount, err := decimal.NewFromString(rec[colAmount])
	if err != nil {
		return 0, time.Time{}, "", model.Split{}, fmt.Errorf("parsing amount %q: %w", rec[colAmount], err)
	}

	split := model.Split{
		Account: model.AccountID(account),
		Amount:  model.AmountFromDecimal(amount),
		Text:    rec[colText],
	}
	return number, date, side, split, nil
}

// LoadFile reads a journal file into a ledger for the given year. A
// missing file is an empty ledger, not an error.
func LoadFile(path string, year int) (*Ledger, error) {
	l := New(year)

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", path, err)
	}
	defer f.Close()

	entries, err := ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", path, err)
	}
	if err := l.AppendAll(entries); err != nil {
		return nil, fmt.Errorf("journal %s: %w", path, err)
	}
	return l, nil
}

// SaveFile writes the ledger's journal to path.
func SaveFile(path string, l *Ledger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating journal %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteEntries(f, l.Entries()); err != nil {
		return fmt.Errorf("writing journal %s: %w", path, err)
	}
	return nil
}
