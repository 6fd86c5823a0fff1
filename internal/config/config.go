// Package config reads and writes the accounting.yaml project file: the
// accounting year, the journal location, and the chart of accounts with
// per-account import mappings and match rules.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/uzbekdev1/SimpleAccounting/internal/importer"
	"github.com/uzbekdev1/SimpleAccounting/internal/model"
)

// Config represents the top-level accounting.yaml file.
type Config struct {
	Year     int             `yaml:"year"`
	Journal  string          `yaml:"journal"`
	Charset  string          `yaml:"charset,omitempty"` // charset of bank exports, empty = UTF-8
	Accounts []AccountConfig `yaml:"accounts"`
}

// AccountConfig is one chart-of-accounts entry. Mapping and Rules are only
// present on accounts backed by a bank feed.
type AccountConfig struct {
	ID      uint64         `yaml:"id"`
	Name    string         `yaml:"name"`
	Type    string         `yaml:"type"`
	Mapping []ColumnConfig `yaml:"mapping,omitempty"`
	Rules   []RuleConfig   `yaml:"rules,omitempty"`
}

// ColumnConfig maps one CSV column of the account's bank export to a role.
type ColumnConfig struct {
	Source  string `yaml:"source"`
	Role    string `yaml:"role"`
	Cleanup string `yaml:"cleanup,omitempty"`
	Layout  string `yaml:"layout,omitempty"`
}

// RuleConfig assigns a remote account to rows matching a text pattern,
// optionally constrained to an exact amount (display value, e.g. "45.00").
type RuleConfig struct {
	Pattern string `yaml:"pattern"`
	Amount  string `yaml:"amount,omitempty"`
	Account uint64 `yaml:"account"`
}

// Load reads and validates an accounting.yaml file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks structural consistency: unique account IDs, complete
// field mappings, compilable rule patterns, and rule targets that exist in
// the chart.
func (c *Config) Validate() error {
	if c.Year <= 0 {
		return fmt.Errorf("accounting year %d is not valid", c.Year)
	}
	if c.Journal == "" {
		return fmt.Errorf("journal path is empty")
	}

	ids := make(map[uint64]bool, len(c.Accounts))
	for _, a := range c.Accounts {
		if a.ID == 0 {
			return fmt.Errorf("account %q has no ID", a.Name)
		}
		if ids[a.ID] {
			return fmt.Errorf("duplicate account ID %d", a.ID)
		}
		ids[a.ID] = true
	}

	for _, a := range c.Accounts {
		account, err := a.toModel()
		if err != nil {
			return fmt.Errorf("account %d (%s): %w", a.ID, a.Name, err)
		}
		if len(account.Mapping) > 0 {
			if err := account.Mapping.Validate(); err != nil {
				return fmt.Errorf("account %d (%s): %w", a.ID, a.Name, err)
			}
		}
		if _, err := importer.CompileRules(account.Rules); err != nil {
			return fmt.Errorf("account %d (%s): %w", a.ID, a.Name, err)
		}
		for _, r := range account.Rules {
			if !ids[uint64(r.Account)] {
				return fmt.Errorf("account %d (%s): rule %q targets unknown account %d",
					a.ID, a.Name, r.Pattern, r.Account)
			}
		}
	}
	return nil
}

// ChartOfAccounts converts the configured accounts to model accounts.
// Call only after Validate.
func (c *Config) ChartOfAccounts() []model.Account {
	chart := make([]model.Account, 0, len(c.Accounts))
	for _, a := range c.Accounts {
		account, err := a.toModel()
		if err != nil {
			continue // rejected by Validate already
		}
		chart = append(chart, account)
	}
	return chart
}

func (a AccountConfig) toModel() (model.Account, error) {
	account := model.Account{
		ID:   model.AccountID(a.ID),
		Name: a.Name,
		Type: model.AccountType(a.Type),
	}
	for _, col := range a.Mapping {
		account.Mapping = append(account.Mapping, model.FieldColumn{
			Source:  col.Source,
			Role:    model.FieldRole(col.Role),
			Cleanup: col.Cleanup,
			Layout:  col.Layout,
		})
	}
	for _, r := range a.Rules {
		rule := model.MatchRule{
			Pattern: r.Pattern,
			Account: model.AccountID(r.Account),
		}
		if r.Amount != "" {
			d, err := decimal.NewFromString(r.Amount)
			if err != nil {
				return model.Account{}, fmt.Errorf("rule %q amount %q: %w", r.Pattern, r.Amount, err)
			}
			amount := model.AmountFromDecimal(d)
			rule.Amount = &amount
		}
		account.Rules = append(account.Rules, rule)
	}
	return account, nil
}

// Default returns a Config with a minimal starter chart for a new project.
func Default(year int) *Config {
	return &Config{
		Year:    year,
		Journal: "journal.csv",
		Accounts: []AccountConfig{
			{ID: 100, Name: "Bank account", Type: string(model.AccountTypeAsset), Mapping: []ColumnConfig{
				{Source: "Date", Role: string(model.RoleDate)},
				{Source: "Name", Role: string(model.RoleName)},
				{Source: "Text", Role: string(model.RoleText)},
				{Source: "Value", Role: string(model.RoleValue)},
			}},
			{ID: 400, Name: "Salary", Type: string(model.AccountTypeIncome)},
			{ID: 600, Name: "Rent", Type: string(model.AccountTypeExpense)},
		},
	}
}
