package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/uzbekdev1/SimpleAccounting/internal/booking"
	"github.com/uzbekdev1/SimpleAccounting/internal/model"
)

func newBookCommand() *cobra.Command {
	var configPath string
	var dateStr string
	var creditID, debitID uint64
	var amountStr string
	var text string

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Add a manual booking entry to the journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBook(configPath, dateStr, creditID, debitID, amountStr, text)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "accounting.yaml", "project file")
	cmd.Flags().StringVar(&dateStr, "date", time.Now().Format("2006-01-02"), "booking date (YYYY-MM-DD)")
	cmd.Flags().Uint64Var(&creditID, "credit", 0, "credit account ID (required)")
	cmd.Flags().Uint64Var(&debitID, "debit", 0, "debit account ID (required)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount, e.g. 120.00 (required)")
	cmd.Flags().StringVar(&text, "text", "", "booking text (required)")
	_ = cmd.MarkFlagRequired("credit")
	_ = cmd.MarkFlagRequired("debit")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func runBook(configPath, dateStr string, creditID, debitID uint64, amountStr, text string) error {
	p, err := loadProject(configPath)
	if err != nil {
		return err
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("parsing date %q: %w", dateStr, err)
	}

	value, err := decimal.NewFromString(amountStr)
	if err != nil {
		return fmt.Errorf("parsing amount %q: %w", amountStr, err)
	}

	credit := model.AccountID(creditID)
	debit := model.AccountID(debitID)
	for _, id := range []model.AccountID{credit, debit} {
		if !p.chart.Exists(id) {
			return fmt.Errorf("unknown account %d", id)
		}
	}

	entry, err := booking.BuildManual(p.ledger.NextNumber(), p.cfg.Year, date, credit, debit, model.AmountFromDecimal(value), text)
	if err != nil {
		return err
	}
	if err := p.ledger.Append(entry); err != nil {
		return err
	}
	if err := p.saveJournal(); err != nil {
		return err
	}

	fmt.Printf("Booked entry %d: credit %d / debit %d, %s, %q\n",
		entry.Number, credit, debit, entry.CreditTotal(), text)
	return nil
}
