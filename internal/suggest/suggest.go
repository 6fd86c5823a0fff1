// Package suggest proposes remote accounts for import rows no rule
// matched, using a naive bayes classifier trained on the journal.
// Suggestions are advisory: they are shown to the user and never booked
// automatically.
package suggest

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/jbrukh/bayesian"

	"github.com/uzbekdev1/SimpleAccounting/internal/model"
)

// minScoreGap is the log-score lead the best class must hold over the
// runner-up before a suggestion is offered.
const minScoreGap = 10

// Suggester proposes a remote account for a booking text.
type Suggester struct {
	classifier *bayesian.Classifier
	classes    []bayesian.Class
}

// Train builds a suggester from the journal: for every entry touching the
// import account, the words of its booking text teach the classifier the
// account on the opposite leg. With fewer than two counterpart accounts
// seen, the suggester stays silent.
func Train(entries []model.Entry, importAccount model.AccountID) *Suggester {
	counterparts := make(map[model.AccountID]bool)
	for _, e := range entries {
		if !e.Touches(importAccount) {
			continue
		}
		for _, a := range counterpartAccounts(e, importAccount) {
			counterparts[a] = true
		}
	}
	if len(counterparts) < 2 {
		return &Suggester{}
	}

	classes := make([]bayesian.Class, 0, len(counterparts))
	for id := range counterparts {
		classes = append(classes, class(id))
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })

	classifier := bayesian.NewClassifier(classes...)
	for _, e := range entries {
		if !e.Touches(importAccount) {
			continue
		}
		words := strings.Fields(entryText(e))
		if len(words) == 0 {
			continue
		}
		for _, a := range counterpartAccounts(e, importAccount) {
			classifier.Learn(words, class(a))
		}
	}
	return &Suggester{classifier: classifier, classes: classes}
}

// Suggest returns the most likely remote account for text, when the
// classifier is confident enough to be useful.
func (s *Suggester) Suggest(text string) (model.AccountID, bool) {
	if s.classifier == nil {
		return 0, false
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0, false
	}

	scores, _, _ := s.classifier.LogScores(words)
	best, second := math.Inf(-1), math.Inf(-1)
	bestIdx := 0
	for i, score := range scores {
		if score > best {
			second = best
			best = score
			bestIdx = i
		} else if score > second {
			second = score
		}
	}
	if best-second < minScoreGap {
		return 0, false
	}

	id, err := strconv.ParseUint(string(s.classes[bestIdx]), 10, 64)
	if err != nil {
		return 0, false
	}
	return model.AccountID(id), true
}

// counterpartAccounts returns the accounts on the legs not owned by the
// import account.
func counterpartAccounts(e model.Entry, importAccount model.AccountID) []model.AccountID {
	var ids []model.AccountID
	for _, s := range e.Credits {
		if s.Account != importAccount {
			ids = append(ids, s.Account)
		}
	}
	for _, s := range e.Debits {
		if s.Account != importAccount {
			ids = append(ids, s.Account)
		}
	}
	return ids
}

// entryText returns the booking text of an entry; legs share it.
func entryText(e model.Entry) string {
	if len(e.Credits) > 0 {
		return e.Credits[0].Text
	}
	if len(e.Debits) > 0 {
		return e.Debits[0].Text
	}
	return ""
}

func class(id model.AccountID) bayesian.Class {
	return bayesian.Class(strconv.FormatUint(uint64(id), 10))
}
