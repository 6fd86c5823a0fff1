package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAccountsCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the chart of accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccounts(configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "accounting.yaml", "project file")

	return cmd
}

func runAccounts(configPath string) error {
	p, err := loadProject(configPath)
	if err != nil {
		return err
	}

	for _, a := range p.chart.All() {
		importable := ""
		if len(a.Mapping) > 0 {
			importable = fmt.Sprintf("  [import: %d rules]", len(a.Rules))
		}
		fmt.Printf("%6d  %-10s  %s%s\n", a.ID, a.Type, a.Name, importable)
	}
	return nil
}
