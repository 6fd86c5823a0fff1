package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/uzbekdev1/SimpleAccounting/internal/importer"
	"github.com/uzbekdev1/SimpleAccounting/internal/model"
	"github.com/uzbekdev1/SimpleAccounting/internal/suggest"
)

func newImportCommand() *cobra.Command {
	var configPath string
	var accountID uint64
	var file string
	var minStr, maxStr string
	var matchedOnly bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import bank CSV rows and book the matched ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(configPath, accountID, file, minStr, maxStr, matchedOnly, dryRun)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "accounting.yaml", "project file")
	cmd.Flags().Uint64Var(&accountID, "account", 0, "import account ID (required)")
	cmd.Flags().StringVar(&file, "file", "", "bank CSV export (required)")
	cmd.Flags().StringVar(&minStr, "min-date", "", "window lower bound (default: day after last booking on the account)")
	cmd.Flags().StringVar(&maxStr, "max-date", "", "window upper bound (default: end of the accounting year)")
	cmd.Flags().BoolVar(&matchedOnly, "matched", false, "book only matched rows, keep the rest for manual follow-up")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show matched rows without booking anything")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// readCloser pairs the decoded stream with the file that owns it.
type readCloser struct {
	io.Reader
	io.Closer
}

func runImport(configPath string, accountID uint64, file, minStr, maxStr string, matchedOnly, dryRun bool) error {
	p, err := loadProject(configPath)
	if err != nil {
		return err
	}

	account, ok := p.chart.Get(model.AccountID(accountID))
	if !ok {
		return fmt.Errorf("unknown account %d", accountID)
	}
	if len(account.Mapping) == 0 {
		return fmt.Errorf("account %d (%s) has no import mapping", account.ID, account.Name)
	}

	rules, err := importer.CompileRules(account.Rules)
	if err != nil {
		return fmt.Errorf("account %d (%s): %w", account.ID, account.Name, err)
	}

	minDate, maxDate, err := importWindow(p, account.ID, minStr, maxStr)
	if err != nil {
		return err
	}

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("opening import file: %w", err)
	}
	decoded, err := importer.DecodeReader(f, p.cfg.Charset)
	if err != nil {
		f.Close()
		return err
	}

	session := importer.NewSession(p.ledger, account.ID)
	rows, err := session.LoadAndMatch(readCloser{Reader: decoded, Closer: f}, account.Mapping, rules, minDate, maxDate)
	if err != nil {
		return fmt.Errorf("loading %s: %w", file, err)
	}

	fmt.Printf("Loaded %d rows dated %s..%s\n", len(rows), minDate.Format("2006-01-02"), maxDate.Format("2006-01-02"))
	suggester := suggest.Train(p.ledger.Entries(), account.ID)
	printRows(p, rows, suggester)

	if dryRun {
		return nil
	}

	var entries []model.Entry
	if matchedOnly {
		entries, err = session.CommitMatched()
	} else {
		entries, err = session.CommitAll()
	}
	if err != nil {
		var unresolved importer.UnresolvedRowsError
		if errors.As(err, &unresolved) {
			return fmt.Errorf("%w; add match rules or rerun with --matched", err)
		}
		return err
	}

	if err := p.ledger.AppendAll(entries); err != nil {
		return err
	}
	if err := p.saveJournal(); err != nil {
		return err
	}

	fmt.Printf("Booked %d entries into account %d (%s)\n", len(entries), account.ID, account.Name)
	if rest := session.Unresolved(); len(rest) > 0 {
		fmt.Printf("%d rows left for manual follow-up: %v\n", len(rest), rest)
	}
	return nil
}

// importWindow resolves the date window: explicit flags win, otherwise the
// lower bound is the day after the account's latest booking and the upper
// bound is the end of the accounting year.
func importWindow(p *project, account model.AccountID, minStr, maxStr string) (time.Time, time.Time, error) {
	minDate := p.ledger.MinImportDate(account, time.Date(p.cfg.Year, 1, 1, 0, 0, 0, 0, time.UTC))
	maxDate := time.Date(p.cfg.Year, 12, 31, 0, 0, 0, 0, time.UTC)

	var err error
	if minStr != "" {
		if minDate, err = time.Parse("2006-01-02", minStr); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parsing min-date %q: %w", minStr, err)
		}
	}
	if maxStr != "" {
		if maxDate, err = time.Parse("2006-01-02", maxStr); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parsing max-date %q: %w", maxStr, err)
		}
	}
	return minDate, maxDate, nil
}

func printRows(p *project, rows []model.ImportRow, suggester *suggest.Suggester) {
	for _, row := range rows {
		target := "UNRESOLVED"
		if row.Matched() {
			target = accountLabel(p, row.RemoteAccount)
		} else if id, ok := suggester.Suggest(row.Text); ok {
			target = fmt.Sprintf("UNRESOLVED (suggestion: %s)", accountLabel(p, id))
		}
		fmt.Printf("%5d  %s  %10s  %s -> %s\n",
			row.Number, row.Date.Format("2006-01-02"), row.Value.StringFixed(2), entryLabel(row), target)
	}
}

func entryLabel(row model.ImportRow) string {
	if row.Name == "" {
		return row.Text
	}
	if row.Text == "" {
		return row.Name
	}
	return row.Name + " - " + row.Text
}

func accountLabel(p *project, id model.AccountID) string {
	if a, ok := p.chart.Get(id); ok {
		return fmt.Sprintf("%d (%s)", a.ID, a.Name)
	}
	return fmt.Sprintf("%d", id)
}
