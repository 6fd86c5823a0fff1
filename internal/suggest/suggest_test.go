package suggest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzbekdev1/SimpleAccounting/internal/model"
)

func trainingEntry(number uint64, remote model.AccountID, text string) model.Entry {
	return model.Entry{
		Number:  number,
		Date:    time.Date(2024, 1, int(number%27)+1, 0, 0, 0, 0, time.UTC),
		Credits: []model.Split{{Account: remote, Amount: 100, Text: text}},
		Debits:  []model.Split{{Account: 100, Amount: 100, Text: text}},
	}
}

func trainingJournal() []model.Entry {
	var entries []model.Entry
	n := uint64(1)
	for i := 0; i < 5; i++ {
		entries = append(entries, trainingEntry(n, 600, "rent monthly apartment"))
		n++
		entries = append(entries, trainingEntry(n, 400, "salary acme payroll"))
		n++
	}
	return entries
}

func TestSuggest_DistinctiveText(t *testing.T) {
	s := Train(trainingJournal(), 100)

	account, ok := s.Suggest("rent monthly apartment rent monthly apartment rent monthly apartment")
	require.True(t, ok)
	assert.Equal(t, model.AccountID(600), account)

	account, ok = s.Suggest("salary acme payroll salary acme payroll salary acme payroll")
	require.True(t, ok)
	assert.Equal(t, model.AccountID(400), account)
}

func TestSuggest_SilentWithoutConfidence(t *testing.T) {
	s := Train(trainingJournal(), 100)

	// One ambiguous word is not enough of a lead.
	_, ok := s.Suggest("transfer")
	assert.False(t, ok)

	_, ok = s.Suggest("")
	assert.False(t, ok)
}

func TestTrain_TooFewCounterparts(t *testing.T) {
	entries := []model.Entry{trainingEntry(1, 600, "rent monthly apartment")}
	s := Train(entries, 100)

	_, ok := s.Suggest("rent monthly apartment")
	assert.False(t, ok)
}

func TestTrain_IgnoresUnrelatedAccounts(t *testing.T) {
	entries := trainingJournal()
	// Entries not touching the import account must not contribute classes.
	entries = append(entries, trainingEntry(90, 777, "unrelated"))
	entries[len(entries)-1].Debits[0].Account = 778

	s := Train(entries, 100)
	account, ok := s.Suggest("rent monthly apartment rent monthly apartment rent monthly apartment")
	require.True(t, ok)
	assert.Equal(t, model.AccountID(600), account)
}
