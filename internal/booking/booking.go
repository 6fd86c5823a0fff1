// Package booking builds balanced double-entry journal entries from manual
// input or from imported bank rows.
package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/uzbekdev1/SimpleAccounting/internal/model"
)

// InvalidBookingError reports a proposed entry that violates a structural
// invariant. It is always returned before any ledger mutation.
type InvalidBookingError struct {
	Reason string
}

func (e InvalidBookingError) Error() string {
	return "invalid booking: " + e.Reason
}

const dateFormat = "2006-01-02"

// BuildManual constructs a balanced entry from manual input: one credit leg
// on creditAccount and one debit leg on debitAccount, both carrying the same
// amount and text as independent copies.
func BuildManual(number uint64, year int, date time.Time, creditAccount, debitAccount model.AccountID, amount model.Amount, text string) (model.Entry, error) {
	switch {
	case amount <= 0:
		return model.Entry{}, InvalidBookingError{Reason: fmt.Sprintf("amount %s is not positive", amount)}
	case creditAccount == debitAccount:
		return model.Entry{}, InvalidBookingError{Reason: fmt.Sprintf("credit and debit account are both %d", creditAccount)}
	case date.Year() != year:
		return model.Entry{}, InvalidBookingError{Reason: fmt.Sprintf("date %s outside accounting year %d", date.Format(dateFormat), year)}
	case strings.TrimSpace(text) == "":
		return model.Entry{}, InvalidBookingError{Reason: "booking text is empty"}
	}

	credit := model.Split{Account: creditAccount, Amount: amount, Text: text}
	debit := credit
	debit.Account = debitAccount

	return model.Entry{
		Number:  number,
		Date:    date,
		Credits: []model.Split{credit},
		Debits:  []model.Split{debit},
	}, nil
}

// CanBook reports whether BuildManual would accept the input. Callers use
// it as the enablement guard before offering the booking action.
func CanBook(year int, date time.Time, creditAccount, debitAccount model.AccountID, amount model.Amount, text string) bool {
	return amount > 0 &&
		creditAccount != debitAccount &&
		date.Year() == year &&
		strings.TrimSpace(text) != ""
}

// BuildFromImport constructs a balanced entry from an imported bank row.
// The sign of value decides leg assignment: a positive value credits the
// remote account and debits the import account, a negative value the
// reverse. The value's magnitude becomes the entry amount.
func BuildFromImport(number uint64, date time.Time, remoteAccount, importAccount model.AccountID, value decimal.Decimal, text string) (model.Entry, error) {
	amount := model.AmountFromDecimal(value.Abs())
	if amount == 0 {
		return model.Entry{}, InvalidBookingError{Reason: "import value is zero"}
	}

	credit := model.Split{Amount: amount, Text: text}
	debit := credit
	if value.IsPositive() {
		credit.Account = remoteAccount
		debit.Account = importAccount
	} else {
		credit.Account = importAccount
		debit.Account = remoteAccount
	}

	return model.Entry{
		Number:  number,
		Date:    date,
		Credits: []model.Split{credit},
		Debits:  []model.Split{debit},
	}, nil
}
