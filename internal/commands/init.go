package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/uzbekdev1/SimpleAccounting/internal/config"
	"github.com/uzbekdev1/SimpleAccounting/internal/ledger"
)

func newInitCommand() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new accounting project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, year)
		},
	}

	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "accounting year")

	return cmd
}

func runInit(dir string, year int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	configPath := filepath.Join(dir, "accounting.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists", configPath)
	}

	cfg := config.Default(year)
	if err := config.Save(configPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	journalPath := filepath.Join(dir, cfg.Journal)
	if err := ledger.SaveFile(journalPath, ledger.New(year)); err != nil {
		return fmt.Errorf("writing journal: %w", err)
	}

	fmt.Printf("Initialized accounting project for %d at %s\n", year, dir)
	return nil
}
