package model

import "time"

// Split is one leg (credit or debit side) of a journal entry. Split is a
// value type: copying one and mutating the copy never affects the
// original, so two legs created from the same input share no storage.
type Split struct {
	Account AccountID
	Amount  Amount // non-negative
	Text    string
}

// Entry is one balanced double-entry journal record. Entries are immutable
// once appended to the ledger.
type Entry struct {
	Number  uint64 // unique, monotonically assigned
	Date    time.Time
	Credits []Split
	Debits  []Split
}

// CreditTotal sums the credit legs.
func (e Entry) CreditTotal() Amount {
	var total Amount
	for _, s := range e.Credits {
		total += s.Amount
	}
	return total
}

// DebitTotal sums the debit legs.
func (e Entry) DebitTotal() Amount {
	var total Amount
	for _, s := range e.Debits {
		total += s.Amount
	}
	return total
}

// Balanced reports whether credit and debit totals agree and are positive.
func (e Entry) Balanced() bool {
	c := e.CreditTotal()
	return c == e.DebitTotal() && c > 0
}

// Touches reports whether any leg of the entry references the account.
func (e Entry) Touches(id AccountID) bool {
	for _, s := range e.Credits {
		if s.Account == id {
			return true
		}
	}
	for _, s := range e.Debits {
		if s.Account == id {
			return true
		}
	}
	return false
}
