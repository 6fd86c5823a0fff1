package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ImportRow is one bank CSV row that passed the date filter and waits to
// be booked. The parser creates it, the matcher sets RemoteAccount at most
// once, and the import session consumes it.
type ImportRow struct {
	Number        uint64 // booking number reserved for this row
	Date          time.Time
	Name          string
	Text          string
	Value         decimal.Decimal // signed; positive = money into the import account
	RemoteAccount AccountID       // 0 until matched
}

// Matched reports whether a remote account has been resolved.
func (r ImportRow) Matched() bool { return r.RemoteAccount != 0 }

// Magnitude returns the absolute row value in minor units.
func (r ImportRow) Magnitude() Amount {
	return AmountFromDecimal(r.Value.Abs())
}
