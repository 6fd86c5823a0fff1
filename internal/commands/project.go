package commands

import (
	"fmt"
	"path/filepath"

	"github.com/uzbekdev1/SimpleAccounting/internal/accounts"
	"github.com/uzbekdev1/SimpleAccounting/internal/config"
	"github.com/uzbekdev1/SimpleAccounting/internal/ledger"
)

// project bundles the loaded state every data command needs: the config,
// the chart of accounts, and the year's journal.
type project struct {
	dir    string
	cfg    *config.Config
	chart  *accounts.Service
	ledger *ledger.Ledger
}

func loadProject(configPath string) (*project, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(configPath)
	led, err := ledger.LoadFile(filepath.Join(dir, cfg.Journal), cfg.Year)
	if err != nil {
		return nil, err
	}

	return &project{
		dir:    dir,
		cfg:    cfg,
		chart:  accounts.NewService(cfg.ChartOfAccounts()),
		ledger: led,
	}, nil
}

func (p *project) saveJournal() error {
	if err := ledger.SaveFile(filepath.Join(p.dir, p.cfg.Journal), p.ledger); err != nil {
		return fmt.Errorf("saving journal: %w", err)
	}
	return nil
}
