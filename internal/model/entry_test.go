package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func entry(number uint64, credit, debit AccountID, amount Amount) Entry {
	return Entry{
		Number:  number,
		Date:    time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Credits: []Split{{Account: credit, Amount: amount, Text: "text"}},
		Debits:  []Split{{Account: debit, Amount: amount, Text: "text"}},
	}
}

func TestEntry_Balanced(t *testing.T) {
	assert.True(t, entry(1, 600, 100, 12000).Balanced())

	unbalanced := entry(1, 600, 100, 12000)
	unbalanced.Debits[0].Amount = 11999
	assert.False(t, unbalanced.Balanced())

	zero := entry(1, 600, 100, 0)
	assert.False(t, zero.Balanced())
}

func TestEntry_Touches(t *testing.T) {
	e := entry(1, 600, 100, 12000)
	assert.True(t, e.Touches(600))
	assert.True(t, e.Touches(100))
	assert.False(t, e.Touches(400))
}

func TestSplit_ValueCopySemantics(t *testing.T) {
	original := Split{Account: 600, Amount: 12000, Text: "Rent Jan"}
	clone := original
	clone.Account = 100
	clone.Text = "changed"

	assert.Equal(t, AccountID(600), original.Account)
	assert.Equal(t, "Rent Jan", original.Text)
}
