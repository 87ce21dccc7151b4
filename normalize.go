package ledger

// Record normalization. Each function coerces a raw record into a valid one:
// missing ids get generated, missing months/dates default to the given
// period, missing owners default to Self. Value coercion (number-or-zero)
// already happened at the codec boundary, see Amount.UnmarshalJSON.
//
// All of these are idempotent: normalizing a normalized record is a no-op.

// NormalizeAsset fills the defaults of a raw asset.
func NormalizeAsset(a Asset, p Period) Asset {
	if a.ID == "" {
		a.ID = newID()
	}
	if a.Month.IsZero() {
		a.Month = p
	}
	return a
}

// NormalizeCard fills the defaults of a raw card.
func NormalizeCard(c Card) Card {
	if c.ID == "" {
		c.ID = newID()
	}
	return c
}

// NormalizeFixedExpense fills the defaults of a raw fixed expense.
func NormalizeFixedExpense(f FixedExpense, p Period) FixedExpense {
	if f.ID == "" {
		f.ID = newID()
	}
	if f.Month.IsZero() {
		f.Month = p
	}
	return f
}

// NormalizeReceivable fills the defaults of a raw receivable.
func NormalizeReceivable(r Receivable, p Period) Receivable {
	if r.ID == "" {
		r.ID = newID()
	}
	if r.Month.IsZero() {
		r.Month = p
	}
	return r
}

// NormalizeTransaction fills the defaults of a raw transaction. A missing
// date becomes the first day of the given period.
func NormalizeTransaction(t Transaction, p Period) Transaction {
	if t.ID == "" {
		t.ID = newID()
	}
	if t.Date.IsZero() {
		t.Date = p.First()
	}
	if t.Owner == "" {
		t.Owner = Self
	}
	if t.Installments < 0 {
		t.Installments = 0
	}
	return t
}
