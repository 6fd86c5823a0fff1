// Package accounts provides lookup over the chart of accounts.
package accounts

import (
	"github.com/uzbekdev1/SimpleAccounting/internal/model"
)

// Service provides in-memory lookup over the chart of accounts. The chart
// arrives fully resolved from the project configuration; no lookup beyond
// reference equality happens here.
type Service struct {
	accounts []model.Account
	byID     map[model.AccountID]model.Account
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	byID := make(map[model.AccountID]model.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}
	return &Service{accounts: accounts, byID: byID}
}

// All returns all accounts in chart order.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by ID.
func (s *Service) Get(id model.AccountID) (model.Account, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// Exists reports whether an account ID exists.
func (s *Service) Exists(id model.AccountID) bool {
	_, ok := s.byID[id]
	return ok
}

// ByType returns all accounts of the given type.
func (s *Service) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Type == accountType {
			result = append(result, a)
		}
	}
	return result
}

// Importable returns the accounts that carry a field mapping and can
// therefore receive CSV imports.
func (s *Service) Importable() []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if len(a.Mapping) > 0 {
			result = append(result, a)
		}
	}
	return result
}
