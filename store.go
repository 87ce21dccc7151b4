package ledger

import (
	"bytes"
	"log"
	"slices"
)

// Store owns the five record collections and the active period. Every
// mutation synchronously rewrites the full snapshot through the storage
// port, so durable state never lags in-memory state by more than one write.
type Store struct {
	assets        []Asset
	cards         []Card
	fixedExpenses []FixedExpense
	receivables   []Receivable
	transactions  []Transaction

	month   Period // active period, selected by the caller, never by the store
	storage Storage
}

// NewStore creates an empty store bound to the given storage. The active
// period starts at the current calendar month.
func NewStore(storage Storage) *Store {
	return &Store{
		assets:        make([]Asset, 0),
		cards:         make([]Card, 0),
		fixedExpenses: make([]FixedExpense, 0),
		receivables:   make([]Receivable, 0),
		transactions:  make([]Transaction, 0),
		month:         ThisMonth(),
		storage:       storage,
	}
}

// Month returns the active period.
func (s *Store) Month() Period { return s.month }

// SetMonth changes the active period. Period selection is a caller concern;
// it does not touch the collections and is not persisted.
func (s *Store) SetMonth(p Period) { s.month = p }

// Read-only copies of the collections.

func (s *Store) Assets() []Asset               { return slices.Clone(s.assets) }
func (s *Store) Cards() []Card                 { return slices.Clone(s.cards) }
func (s *Store) FixedExpenses() []FixedExpense { return slices.Clone(s.fixedExpenses) }
func (s *Store) Receivables() []Receivable     { return slices.Clone(s.receivables) }
func (s *Store) Transactions() []Transaction   { return slices.Clone(s.transactions) }

// Snapshot returns a copy of the full state.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Assets:        slices.Clone(s.assets),
		Cards:         slices.Clone(s.cards),
		FixedExpenses: slices.Clone(s.fixedExpenses),
		Receivables:   slices.Clone(s.receivables),
		Transactions:  slices.Clone(s.transactions),
	}
}

// AddAsset normalizes the draft, assigns a fresh id, stamps the active
// period, appends and persists. It returns the stored record.
func (s *Store) AddAsset(a Asset) Asset {
	a = NormalizeAsset(a, s.month)
	a.ID = newID()
	a.Month = s.month
	s.assets = append(s.assets, a)
	s.persist()
	return a
}

// AddCard normalizes the draft, assigns a fresh id, appends and persists.
func (s *Store) AddCard(c Card) Card {
	c = NormalizeCard(c)
	c.ID = newID()
	s.cards = append(s.cards, c)
	s.persist()
	return c
}

// AddFixedExpense normalizes the draft, assigns a fresh id, stamps the
// active period, appends and persists.
func (s *Store) AddFixedExpense(f FixedExpense) FixedExpense {
	f = NormalizeFixedExpense(f, s.month)
	f.ID = newID()
	f.Month = s.month
	s.fixedExpenses = append(s.fixedExpenses, f)
	s.persist()
	return f
}

// AddReceivable normalizes the draft, assigns a fresh id, stamps the active
// period, appends and persists.
func (s *Store) AddReceivable(r Receivable) Receivable {
	r = NormalizeReceivable(r, s.month)
	r.ID = newID()
	r.Month = s.month
	s.receivables = append(s.receivables, r)
	s.persist()
	return r
}

// AddTransaction normalizes the draft, assigns a fresh id, defaults a
// missing date to the first day of the active period, appends and persists.
// New transactions always start unpaid.
func (s *Store) AddTransaction(t Transaction) Transaction {
	t = NormalizeTransaction(t, s.month)
	t.ID = newID()
	t.IsPaid = false
	s.transactions = append(s.transactions, t)
	s.persist()
	return t
}

// ImportStatement appends every transaction draft from an externally parsed
// statement and returns the number of records accepted.
func (s *Store) ImportStatement(drafts []Transaction) int {
	for _, d := range drafts {
		s.AddTransaction(d)
	}
	return len(drafts)
}

// Delete removes the record with the given id from the named collection.
// Deleting an absent id is a no-op (the snapshot is still rewritten).
func (s *Store) Delete(kind Kind, id string) {
	switch kind {
	case KindAsset:
		s.assets = slices.DeleteFunc(s.assets, func(a Asset) bool { return a.ID == id })
	case KindCard:
		s.cards = slices.DeleteFunc(s.cards, func(c Card) bool { return c.ID == id })
	case KindFixed:
		s.fixedExpenses = slices.DeleteFunc(s.fixedExpenses, func(f FixedExpense) bool { return f.ID == id })
	case KindReceivable:
		s.receivables = slices.DeleteFunc(s.receivables, func(r Receivable) bool { return r.ID == id })
	case KindTransaction:
		s.transactions = slices.DeleteFunc(s.transactions, func(t Transaction) bool { return t.ID == id })
	}
	s.persist()
}

// TogglePaid flips the isPaid flag of the matching transaction in place.
// It returns false when no transaction has that id.
func (s *Store) TogglePaid(id string) bool {
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions[i].IsPaid = !s.transactions[i].IsPaid
			s.persist()
			return true
		}
	}
	return false
}

// ReplaceAll overwrites the five collections from an already-normalized
// snapshot and persists. Used by backup import and by migration commit.
func (s *Store) ReplaceAll(snap Snapshot) {
	s.load(snap)
	s.persist()
}

// load overwrites the collections without persisting. Startup population
// from the current storage key goes through here, so opening a store never
// writes back what it just read.
func (s *Store) load(snap Snapshot) {
	snap.init()
	s.assets = snap.Assets
	s.cards = snap.Cards
	s.fixedExpenses = snap.FixedExpenses
	s.receivables = snap.Receivables
	s.transactions = snap.Transactions
}

// persist writes a fresh full serialization of the collections under the
// current schema key. A storage failure is a warning, never a rollback: the
// in-memory state remains the source of truth.
func (s *Store) persist() {
	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, s.Snapshot()); err != nil {
		log.Printf("warning: could not serialize ledger state: %v", err)
		return
	}
	if err := s.storage.Write(CurrentKey, buf.Bytes()); err != nil {
		log.Printf("warning: could not save ledger state: %v", err)
	}
}

// Monthly views. Recomputed on access against the active period.

// MonthlyAssets returns the assets of the active period.
func (s *Store) MonthlyAssets() []Asset {
	var out []Asset
	for _, a := range s.assets {
		if a.Month == s.month {
			out = append(out, a)
		}
	}
	return out
}

// MonthlyFixedExpenses returns the fixed expenses of the active period.
func (s *Store) MonthlyFixedExpenses() []FixedExpense {
	var out []FixedExpense
	for _, f := range s.fixedExpenses {
		if f.Month == s.month {
			out = append(out, f)
		}
	}
	return out
}

// MonthlyReceivables returns the receivables of the active period.
func (s *Store) MonthlyReceivables() []Receivable {
	var out []Receivable
	for _, r := range s.receivables {
		if r.Month == s.month {
			out = append(out, r)
		}
	}
	return out
}

// MonthlyTransactions returns the transactions dated in the active period.
func (s *Store) MonthlyTransactions() []Transaction {
	var out []Transaction
	for _, t := range s.transactions {
		if t.Date.In(s.month) {
			out = append(out, t)
		}
	}
	return out
}

// MonthlyCardDebtors returns the credit transactions of the active period
// whose owner is a third party: money owed back to the ledger owner.
func (s *Store) MonthlyCardDebtors() []Transaction {
	var out []Transaction
	for _, t := range s.MonthlyTransactions() {
		if t.IsCardDebtor() {
			out = append(out, t)
		}
	}
	return out
}
