package ledger

import (
	"fmt"

	"github.com/google/uuid"
)

// Self is the ledger owner's own identity. Transactions without an explicit
// owner belong to it, and fixed expenses always do.
const Self = "Eu"

// TypeCredit marks a card-bound transaction. Any other type means direct
// (cash or debit) spending.
const TypeCredit = "credit"

// Kind names one of the five record collections.
type Kind string

const (
	KindAsset       Kind = "asset"
	KindCard        Kind = "card"
	KindFixed       Kind = "fixed"
	KindReceivable  Kind = "receivable"
	KindTransaction Kind = "transaction"
)

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindAsset, KindCard, KindFixed, KindReceivable, KindTransaction:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown record kind %q", s)
	}
}

// Asset represents money currently held, scoped to a calendar month.
type Asset struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Category string `json:"category,omitempty"`
	Value    Amount `json:"value"`
	Month    Period `json:"month"`
}

// Card represents a credit instrument. CurrentInvoice is the legacy
// manually-entered base invoice amount; it is displayed but never folded
// into transaction-derived totals.
type Card struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	CurrentInvoice Amount `json:"currentInvoice"`
}

// FixedExpense is a recurring monthly obligation.
type FixedExpense struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value Amount `json:"value"`
	Month Period `json:"month"`
}

// Receivable is money owed to the ledger owner by a third party.
type Receivable struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Value Amount `json:"value"`
	Month Period `json:"month"`
}

// Transaction is the atomic spending record.
type Transaction struct {
	ID           string `json:"id"`
	Desc         string `json:"desc"`
	Value        Amount `json:"value"`
	Type         string `json:"type"`
	CardID       string `json:"cardId,omitempty"`
	Date         Date   `json:"date"`
	Owner        string `json:"owner"`
	Installments int    `json:"installments,omitempty"`
	IsPaid       bool   `json:"isPaid"`
}

// IsCredit reports whether the transaction is card-bound.
func (t Transaction) IsCredit() bool { return t.Type == TypeCredit }

// IsCardDebtor reports whether the transaction represents money a third
// party owes for using the ledger owner's card.
func (t Transaction) IsCardDebtor() bool {
	return t.IsCredit() && t.Owner != "" && t.Owner != Self
}

// newID generates a fresh record id, unique for the lifetime of the ledger.
func newID() string { return uuid.NewString() }
