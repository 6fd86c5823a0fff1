package importer

import (
	"fmt"
	"io"
	"time"

	"github.com/uzbekdev1/SimpleAccounting/internal/booking"
	"github.com/uzbekdev1/SimpleAccounting/internal/model"
)

// Ledger is the external collaborator owning the journal. The session only
// reads the starting booking number from it and proposes entries back; it
// never mutates the ledger itself.
type Ledger interface {
	NextNumber() uint64
}

// UnresolvedRowsError reports a commit attempted while rows still lack a
// remote account. Nothing is committed; Numbers lists the affected rows.
type UnresolvedRowsError struct {
	Numbers []uint64
}

func (e UnresolvedRowsError) Error() string {
	return fmt.Sprintf("%d import rows have no remote account: %v", len(e.Numbers), e.Numbers)
}

// Session drives one CSV import for one bank account: load and match rows,
// let the caller resolve the leftovers, then commit balanced entries.
type Session struct {
	ledger        Ledger
	importAccount model.AccountID
	rows          []model.ImportRow
}

// NewSession creates a session importing into importAccount.
func NewSession(ledger Ledger, importAccount model.AccountID) *Session {
	return &Session{ledger: ledger, importAccount: importAccount}
}

// LoadAndMatch replaces any previously loaded rows with the rows parsed
// from rc and matched against rules. Booking numbers restart from the
// ledger's current next number. The stream is closed on every path,
// including parse failure.
func (s *Session) LoadAndMatch(rc io.ReadCloser, mapping model.FieldMapping, rules Rules, minDate, maxDate time.Time) ([]model.ImportRow, error) {
	defer rc.Close()

	s.rows = nil
	rows, err := ParseRows(rc, mapping, minDate, maxDate, s.ledger.NextNumber())
	if err != nil {
		return nil, err
	}

	for i := range rows {
		if account, ok := rules.Match(rows[i]); ok {
			rows[i].RemoteAccount = account
		}
	}

	s.rows = rows
	return s.Rows(), nil
}

// Rows returns a copy of the loaded rows in ascending number order.
func (s *Session) Rows() []model.ImportRow {
	return append([]model.ImportRow(nil), s.rows...)
}

// SetRemoteAccount resolves one row by hand, overriding whatever the rule
// matcher decided.
func (s *Session) SetRemoteAccount(number uint64, account model.AccountID) error {
	if account == 0 {
		return fmt.Errorf("invalid remote account 0 for row %d", number)
	}
	for i := range s.rows {
		if s.rows[i].Number == number {
			s.rows[i].RemoteAccount = account
			return nil
		}
	}
	return fmt.Errorf("no loaded row with number %d", number)
}

// Unresolved returns the numbers of rows still lacking a remote account.
func (s *Session) Unresolved() []uint64 {
	var numbers []uint64
	for _, row := range s.rows {
		if !row.Matched() {
			numbers = append(numbers, row.Number)
		}
	}
	return numbers
}

// CommitAll converts every loaded row into a journal entry. If any row is
// still unresolved the commit aborts with UnresolvedRowsError and no entry
// is produced.
func (s *Session) CommitAll() ([]model.Entry, error) {
	if unresolved := s.Unresolved(); len(unresolved) > 0 {
		return nil, UnresolvedRowsError{Numbers: unresolved}
	}

	entries, err := s.build(s.rows)
	if err != nil {
		return nil, err
	}
	s.rows = nil
	return entries, nil
}

// CommitMatched converts only the rows already matched, in ascending
// number order, and keeps the unresolved rows loaded for manual follow-up.
func (s *Session) CommitMatched() ([]model.Entry, error) {
	var matched, rest []model.ImportRow
	for _, row := range s.rows {
		if row.Matched() {
			matched = append(matched, row)
		} else {
			rest = append(rest, row)
		}
	}

	entries, err := s.build(matched)
	if err != nil {
		return nil, err
	}
	s.rows = rest
	return entries, nil
}

// build converts rows into entries, all or nothing.
func (s *Session) build(rows []model.ImportRow) ([]model.Entry, error) {
	entries := make([]model.Entry, 0, len(rows))
	for _, row := range rows {
		entry, err := booking.BuildFromImport(row.Number, row.Date, row.RemoteAccount, s.importAccount, row.Value, entryText(row))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row.Number, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// entryText builds the booking text from the row's name and text columns.
func entryText(row model.ImportRow) string {
	if row.Name == "" {
		return row.Text
	}
	if row.Text == "" {
		return row.Name
	}
	return row.Name + " - " + row.Text
}
