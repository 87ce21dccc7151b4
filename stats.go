package ledger

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MonthTotal is a (period, total) pair of the monthly evolution series.
type MonthTotal struct {
	Month Period
	Value Amount
}

// NameTotal is a (name, total) pair of the owner ranking and top expenses.
type NameTotal struct {
	Name  string
	Value Amount
}

// Statistics are the derived analytics. MonthlyEvolution and HighestMonth
// span the whole history; everything else is scoped to the active period.
type Statistics struct {
	MonthlyEvolution []MonthTotal
	HighestMonth     MonthTotal
	OwnerRanking     []NameTotal
	TopExpenses      []NameTotal
	TotalSpent       Amount
	MySpend          Amount
}

// Statistics computes the derived analytics, or nil when no transaction and
// no fixed expense exists in any period.
func (s *Store) Statistics() *Statistics {
	if len(s.transactions) == 0 && len(s.fixedExpenses) == 0 {
		return nil
	}
	st := &Statistics{}

	// Monthly evolution groups the whole history by period.
	byMonth := make(map[Period]Amount)
	for _, t := range s.transactions {
		m := t.Date.Period()
		if t.Date.IsZero() {
			m = s.month
		}
		byMonth[m] = byMonth[m].Add(t.Value)
	}
	for _, f := range s.fixedExpenses {
		if f.Month.IsZero() {
			continue
		}
		byMonth[f.Month] = byMonth[f.Month].Add(f.Value)
	}
	for m, v := range byMonth {
		st.MonthlyEvolution = append(st.MonthlyEvolution, MonthTotal{Month: m, Value: v})
	}
	sort.Slice(st.MonthlyEvolution, func(i, j int) bool {
		return st.MonthlyEvolution[i].Month.Before(st.MonthlyEvolution[j].Month)
	})
	// Highest month: first occurrence wins on ties.
	for i, mt := range st.MonthlyEvolution {
		if i == 0 || mt.Value.Cmp(st.HighestMonth.Value) > 0 {
			st.HighestMonth = mt
		}
	}

	monthlyTx := s.MonthlyTransactions()
	monthlyFixed := s.MonthlyFixedExpenses()

	// Owner ranking, active period only. Non-credit spending is the owner's
	// own, whoever is written on the record.
	owners := newTally()
	for _, t := range monthlyTx {
		owner := Self
		if t.IsCredit() {
			owner = t.Owner
		}
		owners.add(owner, t.Value)
	}
	for _, f := range monthlyFixed {
		owners.add(Self, f.Value)
	}
	st.OwnerRanking = owners.descending()

	// Top expenses, active period only, keyed by the cleaned display name.
	expenses := newTally()
	for _, t := range monthlyTx {
		expenses.add(cleanExpenseName(t.Desc), t.Value)
	}
	for _, f := range monthlyFixed {
		expenses.add(capitalize(strings.TrimSpace(f.Name)), f.Value)
	}
	st.TopExpenses = expenses.descending()

	for _, t := range monthlyTx {
		st.TotalSpent = st.TotalSpent.Add(t.Value)
	}
	for _, f := range monthlyFixed {
		st.TotalSpent = st.TotalSpent.Add(f.Value)
	}
	for _, o := range st.OwnerRanking {
		if o.Name == Self {
			st.MySpend = o.Value
			break
		}
	}
	return st
}

// cleanExpenseName derives the display key of a transaction description:
// lowercase, cut at the first '*' or '-' (whichever comes first), trimmed,
// first rune capitalized. "NETFLIX*1234" and "Netflix - assinatura" both
// clean to "Netflix" and accumulate together.
func cleanExpenseName(desc string) string {
	name := strings.ToLower(desc)
	if i := strings.IndexAny(name, "*-"); i >= 0 {
		name = name[:i]
	}
	return capitalize(strings.TrimSpace(name))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// tally accumulates amounts by key, remembering first-seen order so that
// the later descending sort breaks ties by first occurrence.
type tally struct {
	keys   []string
	totals map[string]Amount
}

func newTally() *tally {
	return &tally{totals: make(map[string]Amount)}
}

func (t *tally) add(key string, v Amount) {
	if _, seen := t.totals[key]; !seen {
		t.keys = append(t.keys, key)
	}
	t.totals[key] = t.totals[key].Add(v)
}

func (t *tally) descending() []NameTotal {
	out := make([]NameTotal, 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, NameTotal{Name: k, Value: t.totals[k]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value.Cmp(out[j].Value) > 0
	})
	return out
}
