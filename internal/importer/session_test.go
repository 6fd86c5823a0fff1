package importer

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzbekdev1/SimpleAccounting/internal/model"
)

type stubLedger struct{ next uint64 }

func (s stubLedger) NextNumber() uint64 { return s.next }

type trackedReader struct {
	io.Reader
	closed bool
}

func (r *trackedReader) Close() error {
	r.closed = true
	return nil
}

var scenarioMapping = model.FieldMapping{
	{Source: "D", Role: model.RoleDate},
	{Source: "T", Role: model.RoleText},
	{Source: "V", Role: model.RoleValue},
}

const scenarioCSV = "D,T,V\n" +
	"2024-01-05,Rent Jan,120.00\n" +
	"2024-01-10,Rent Jan,-45.00\n"

func scenarioRules(t *testing.T) Rules {
	t.Helper()
	rules, err := CompileRules([]model.MatchRule{
		{Pattern: "Rent", Account: 600},
	})
	require.NoError(t, err)
	return rules
}

func loadScenario(t *testing.T, s *Session, rules Rules) []model.ImportRow {
	t.Helper()
	rows, err := s.LoadAndMatch(io.NopCloser(strings.NewReader(scenarioCSV)),
		scenarioMapping, rules, day(2024, 1, 1), day(2024, 1, 31))
	require.NoError(t, err)
	return rows
}

func TestSession_ScenarioRentJan(t *testing.T) {
	s := NewSession(stubLedger{next: 1}, 100)
	rows := loadScenario(t, s, scenarioRules(t))

	require.Len(t, rows, 2)
	assert.Equal(t, model.AccountID(600), rows[0].RemoteAccount)
	assert.Equal(t, model.AccountID(600), rows[1].RemoteAccount)
	assert.Empty(t, s.Unresolved())

	entries, err := s.CommitAll()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// 120.00 into the account: remote credited, import account debited.
	assert.Equal(t, uint64(1), entries[0].Number)
	assert.Equal(t, model.Split{Account: 600, Amount: 12000, Text: "Rent Jan"}, entries[0].Credits[0])
	assert.Equal(t, model.Split{Account: 100, Amount: 12000, Text: "Rent Jan"}, entries[0].Debits[0])

	// -45.00: the reverse.
	assert.Equal(t, uint64(2), entries[1].Number)
	assert.Equal(t, model.Split{Account: 100, Amount: 4500, Text: "Rent Jan"}, entries[1].Credits[0])
	assert.Equal(t, model.Split{Account: 600, Amount: 4500, Text: "Rent Jan"}, entries[1].Debits[0])

	// Rows are consumed by the commit.
	assert.Empty(t, s.Rows())
}

func TestSession_NumbersStartAtLedgerCursor(t *testing.T) {
	s := NewSession(stubLedger{next: 41}, 100)
	rows := loadScenario(t, s, scenarioRules(t))

	assert.Equal(t, uint64(41), rows[0].Number)
	assert.Equal(t, uint64(42), rows[1].Number)
}

func TestSession_CommitAllAbortsOnUnresolved(t *testing.T) {
	s := NewSession(stubLedger{next: 1}, 100)
	noRules, err := CompileRules(nil)
	require.NoError(t, err)
	loadScenario(t, s, noRules)

	entries, err := s.CommitAll()
	assert.Nil(t, entries)

	var unresolved UnresolvedRowsError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, []uint64{1, 2}, unresolved.Numbers)

	// Nothing was consumed; the rows stay loaded for manual resolution.
	assert.Len(t, s.Rows(), 2)
}

func TestSession_CommitMatchedSkipsUnresolved(t *testing.T) {
	rules, err := CompileRules([]model.MatchRule{
		// Only the -45.00 row matches, via the exact-amount constraint.
		{Pattern: "Rent", Amount: amount(4500), Account: 600},
	})
	require.NoError(t, err)

	s := NewSession(stubLedger{next: 1}, 100)
	loadScenario(t, s, rules)

	entries, err := s.CommitMatched()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, uint64(2), entries[0].Number)

	// The unmatched row stays loaded.
	rest := s.Rows()
	require.Len(t, rest, 1)
	assert.Equal(t, uint64(1), rest[0].Number)
	assert.Equal(t, []uint64{1}, s.Unresolved())
}

func TestSession_ManualResolutionThenCommitAll(t *testing.T) {
	s := NewSession(stubLedger{next: 1}, 100)
	noRules, err := CompileRules(nil)
	require.NoError(t, err)
	loadScenario(t, s, noRules)

	require.NoError(t, s.SetRemoteAccount(1, 600))
	require.NoError(t, s.SetRemoteAccount(2, 601))

	entries, err := s.CommitAll()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, model.AccountID(600), entries[0].Credits[0].Account)
	assert.Equal(t, model.AccountID(601), entries[1].Debits[0].Account)
}

func TestSession_SetRemoteAccount_UnknownRow(t *testing.T) {
	s := NewSession(stubLedger{next: 1}, 100)
	loadScenario(t, s, scenarioRules(t))

	assert.Error(t, s.SetRemoteAccount(99, 600))
	assert.Error(t, s.SetRemoteAccount(1, 0))
}

func TestSession_ClosesStream(t *testing.T) {
	s := NewSession(stubLedger{next: 1}, 100)
	r := &trackedReader{Reader: strings.NewReader(scenarioCSV)}

	_, err := s.LoadAndMatch(r, scenarioMapping, scenarioRules(t), day(2024, 1, 1), day(2024, 1, 31))
	require.NoError(t, err)
	assert.True(t, r.closed)
}

func TestSession_ClosesStreamOnParseError(t *testing.T) {
	s := NewSession(stubLedger{next: 1}, 100)
	r := &trackedReader{Reader: strings.NewReader("D,T,V\nNOTADATE,x,1.00\n")}

	_, err := s.LoadAndMatch(r, scenarioMapping, scenarioRules(t), day(2024, 1, 1), day(2024, 1, 31))
	require.Error(t, err)
	assert.True(t, r.closed)
	assert.Empty(t, s.Rows())
}

func TestSession_ReloadReplacesRows(t *testing.T) {
	s := NewSession(stubLedger{next: 1}, 100)
	loadScenario(t, s, scenarioRules(t))
	require.NoError(t, s.SetRemoteAccount(1, 601))

	// A fresh load discards earlier rows and manual resolutions.
	rows := loadScenario(t, s, scenarioRules(t))
	require.Len(t, rows, 2)
	assert.Equal(t, uint64(1), rows[0].Number)
	assert.Equal(t, model.AccountID(600), rows[0].RemoteAccount)
}
