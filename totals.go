package ledger

// Totals holds the monthly financial aggregates derived from the active
// period's views.
type Totals struct {
	Assets      Amount // money held this month
	Fixed       Amount // recurring obligations this month
	Receivables Amount // manual receivables plus third-party card usage
	Cards       Amount // credit-type transaction spending
	DebitSpent  Amount // direct (non-credit) transaction spending
	Balance     Amount // (assets + receivables) - (fixed + cards + debit)
}

// Totals computes the monthly aggregates for the active period.
//
// Cards counts credit transactions only: the manual Card.CurrentInvoice base
// amount stays a separate user-visible field, never folded in, so statement
// imports cannot double-count an invoice.
func (s *Store) Totals() Totals {
	var t Totals
	for _, a := range s.MonthlyAssets() {
		t.Assets = t.Assets.Add(a.Value)
	}
	for _, f := range s.MonthlyFixedExpenses() {
		t.Fixed = t.Fixed.Add(f.Value)
	}
	for _, r := range s.MonthlyReceivables() {
		t.Receivables = t.Receivables.Add(r.Value)
	}
	for _, tx := range s.MonthlyCardDebtors() {
		t.Receivables = t.Receivables.Add(tx.Value)
	}
	for _, tx := range s.MonthlyTransactions() {
		if tx.IsCredit() {
			t.Cards = t.Cards.Add(tx.Value)
		} else {
			t.DebitSpent = t.DebitSpent.Add(tx.Value)
		}
	}
	t.Balance = t.Assets.Add(t.Receivables).Sub(t.Fixed).Sub(t.Cards).Sub(t.DebitSpent)
	return t
}
