// Package nubank parses Nubank credit card statement exports into
// transaction drafts for the ledger. It is a pure text parser: the ledger
// core only sees the drafts it yields.
package nubank

import (
	"math"
	"strconv"
	"strings"

	ledger "github.com/bernardomacieledu/minhas-financas"
)

// Parse reads a statement export and returns one credit transaction draft
// per accepted line, bound to the given card.
//
// The export is comma-separated with the date in the first column and the
// amount in the last one; everything in between is the title, which may
// itself contain bare commas. A leading header line (any first line
// mentioning "date") is skipped. Malformed lines are skipped silently so a
// single bad line never aborts an import.
func Parse(text, cardID string) []ledger.Transaction {
	lines := strings.Split(text, "\n")
	start := 0
	if len(lines) > 0 && strings.Contains(strings.ToLower(lines[0]), "date") {
		start = 1
	}

	var drafts []ledger.Transaction
	for _, line := range lines[start:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < 3 {
			continue
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(parts[len(parts)-1]), 64)
		if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
			continue
		}
		title := strings.ReplaceAll(strings.Join(parts[1:len(parts)-1], ","), `"`, "")

		draft := ledger.Transaction{
			Desc:   title,
			Value:  ledger.N(amount),
			Type:   ledger.TypeCredit,
			CardID: cardID,
			Owner:  ledger.Self,
		}
		// An unparseable date stays zero and the store dates the record on
		// the first day of the active month.
		if d, err := ledger.ParseDate(strings.TrimSpace(parts[0])); err == nil {
			draft.Date = d
		}
		drafts = append(drafts, draft)
	}
	return drafts
}
