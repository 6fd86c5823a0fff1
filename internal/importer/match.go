package importer

import (
	"fmt"
	"regexp"

	"github.com/uzbekdev1/SimpleAccounting/internal/model"
)

// Rules is an ordered, compiled list of match rules. Order is significant:
// the first satisfying rule wins, which is the only tie-break when several
// rules could apply to the same row.
type Rules struct {
	rules []compiledRule
}

type compiledRule struct {
	pattern *regexp.Regexp
	amount  *model.Amount
	account model.AccountID
}

// CompileRules compiles the rule patterns. An invalid pattern or a missing
// target account is a configuration error and fails the whole set; rules
// are never partially applied.
func CompileRules(rules []model.MatchRule) (Rules, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for i, r := range rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return Rules{}, fmt.Errorf("rule %d pattern %q: %w", i+1, r.Pattern, err)
		}
		if r.Account == 0 {
			return Rules{}, fmt.Errorf("rule %d pattern %q: no target account", i+1, r.Pattern)
		}
		amount := r.Amount
		if amount != nil {
			v := *amount
			amount = &v
		}
		compiled = append(compiled, compiledRule{pattern: re, amount: amount, account: r.Account})
	}
	return Rules{rules: compiled}, nil
}

// Len returns the number of compiled rules.
func (rs Rules) Len() int { return len(rs.rules) }

// Match returns the target account of the first rule (in list order) whose
// pattern is found anywhere in the row text and whose exact-amount
// constraint, if present, equals the row's minor-unit magnitude. Pure
// function: fixed rules and row always yield the same result.
func (rs Rules) Match(row model.ImportRow) (model.AccountID, bool) {
	magnitude := row.Magnitude()
	for _, r := range rs.rules {
		if !r.pattern.MatchString(row.Text) {
			continue
		}
		if r.amount != nil && *r.amount != magnitude {
			continue
		}
		return r.account, true
	}
	return 0, false
}
