// Package ledger holds the in-memory journal for one accounting year and
// its flat CSV persistence. It is the single writer for journal entries;
// the booking and import packages only propose them.
package ledger

import (
	"fmt"
	"time"

	"github.com/uzbekdev1/SimpleAccounting/internal/model"
)

// Ledger is the journal of one accounting year plus the booking-number
// cursor for the next entry.
type Ledger struct {
	year     int
	entries  []model.Entry
	byNumber map[uint64]bool
	next     uint64
}

// New creates an empty ledger for the given accounting year. Booking
// numbers start at 1.
func New(year int) *Ledger {
	return &Ledger{year: year, byNumber: make(map[uint64]bool), next: 1}
}

// Year returns the accounting year.
func (l *Ledger) Year() int { return l.year }

// NextNumber returns the booking number the next entry will get.
func (l *Ledger) NextNumber() uint64 { return l.next }

// Entries returns a copy of the journal in append order.
func (l *Ledger) Entries() []model.Entry {
	return append([]model.Entry(nil), l.entries...)
}

// Append adds one entry after checking the journal invariants: balanced
// positive totals, date within the accounting year, and a unique non-zero
// booking number. A rejected entry leaves the ledger untouched.
func (l *Ledger) Append(entry model.Entry) error {
	if !entry.Balanced() {
		return fmt.Errorf("entry %d: credits (%s) and debits (%s) must balance and be positive",
			entry.Number, entry.CreditTotal(), entry.DebitTotal())
	}
	if entry.Date.Year() != l.year {
		return fmt.Errorf("entry %d: date %s outside accounting year %d",
			entry.Number, entry.Date.Format(dateFormat), l.year)
	}
	if entry.Number == 0 {
		return fmt.Errorf("entry has no booking number")
	}
	if l.byNumber[entry.Number] {
		return fmt.Errorf("duplicate booking number %d", entry.Number)
	}

	l.entries = append(l.entries, entry)
	l.byNumber[entry.Number] = true
	if entry.Number >= l.next {
		l.next = entry.Number + 1
	}
	return nil
}

// AppendAll adds entries in order, stopping at the first invalid one.
func (l *Ledger) AppendAll(entries []model.Entry) error {
	for _, e := range entries {
		if err := l.Append(e); err != nil {
			return err
		}
	}
	return nil
}

// MinImportDate returns the lower bound of the import window for an
// account: one day after the latest entry touching it, or fallback when
// the account has no entries yet.
func (l *Ledger) MinImportDate(account model.AccountID, fallback time.Time) time.Time {
	var latest time.Time
	found := false
	for _, e := range l.entries {
		if !e.Touches(account) {
			continue
		}
		if !found || e.Date.After(latest) {
			latest = e.Date
			found = true
		}
	}
	if !found {
		return fallback
	}
	return latest.AddDate(0, 0, 1)
}
