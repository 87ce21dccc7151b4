package ledger

import (
	"bytes"
	"errors"
	"testing"
)

// newTestStore creates an empty store over in-memory storage, pinned to a
// fixed month so tests do not depend on the wall clock.
func newTestStore(t *testing.T) (*Store, *MemStorage) {
	t.Helper()
	storage := NewMemStorage()
	store := NewStore(storage)
	store.SetMonth(MustParsePeriod("2025-09"))
	return store, storage
}

func TestAddStampsMonthAndID(t *testing.T) {
	store, _ := newTestStore(t)

	a := store.AddAsset(Asset{Name: "poupança", Value: N(1000)})
	if a.ID == "" {
		t.Error("expected a generated id")
	}
	if a.Month != store.Month() {
		t.Errorf("Month = %v, want active %v", a.Month, store.Month())
	}

	tx := store.AddTransaction(Transaction{Desc: "mercado", Value: N(80), Type: "debit"})
	if tx.Date != store.Month().First() {
		t.Errorf("Date = %v, want first day of the active month", tx.Date)
	}
	if tx.Owner != Self {
		t.Errorf("Owner = %q, want %q", tx.Owner, Self)
	}
}

func TestEveryMutationPersists(t *testing.T) {
	store, storage := newTestStore(t)

	store.AddAsset(Asset{Value: N(1)})
	store.AddCard(Card{Name: "roxinho"})
	store.AddFixedExpense(FixedExpense{Name: "aluguel", Value: N(1200)})
	store.AddReceivable(Receivable{Value: N(150)})
	tx := store.AddTransaction(Transaction{Desc: "uber", Value: N(20)})
	store.TogglePaid(tx.ID)
	store.Delete(KindTransaction, tx.ID)

	if storage.Writes != 7 {
		t.Errorf("observed %d writes, want one per mutation (7)", storage.Writes)
	}

	// The persisted payload is the current snapshot.
	data, ok, _ := storage.Read(CurrentKey)
	if !ok {
		t.Fatal("nothing stored under the current key")
	}
	snap, err := DecodeSnapshot(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("stored payload does not decode: %v", err)
	}
	if len(snap.Assets) != 1 || len(snap.Cards) != 1 || len(snap.Transactions) != 0 {
		t.Errorf("stored snapshot out of sync: %+v", snap)
	}
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	store, _ := newTestStore(t)

	a := store.AddAsset(Asset{Name: "a", Value: N(1)})
	b := store.AddAsset(Asset{Name: "b", Value: N(2)})

	store.Delete(KindAsset, a.ID)

	assets := store.Assets()
	if len(assets) != 1 || assets[0].ID != b.ID {
		t.Errorf("Assets() = %+v, want only %q left", assets, b.ID)
	}

	// deleting from an empty collection is a quiet no-op
	store.Delete(KindReceivable, "missing")
	if len(store.Receivables()) != 0 {
		t.Error("deleting from an empty collection changed it")
	}

	// unknown id is a quiet no-op too
	store.Delete(KindAsset, "missing")
	if len(store.Assets()) != 1 {
		t.Error("deleting an unknown id changed the collection")
	}
}

func TestTogglePaid(t *testing.T) {
	store, _ := newTestStore(t)
	tx := store.AddTransaction(Transaction{Desc: "fatura", Value: N(100)})

	if !store.TogglePaid(tx.ID) {
		t.Fatal("TogglePaid() did not find the transaction")
	}
	if got := store.Transactions()[0]; !got.IsPaid {
		t.Error("transaction should be marked paid")
	}
	store.TogglePaid(tx.ID)
	if got := store.Transactions()[0]; got.IsPaid {
		t.Error("second toggle should flip it back")
	}
	if store.TogglePaid("missing") {
		t.Error("TogglePaid() on an unknown id should report false")
	}
}

func TestWriteFailureKeepsMemoryState(t *testing.T) {
	store, storage := newTestStore(t)
	storage.WriteErr = errors.New("quota exceeded")

	store.AddAsset(Asset{Name: "poupança", Value: N(1000)})

	if len(store.Assets()) != 1 {
		t.Error("a storage failure must not roll back the in-memory state")
	}
	if _, ok, _ := storage.Read(CurrentKey); ok {
		t.Error("nothing should have been stored")
	}
}

func TestMonthlyViews(t *testing.T) {
	store, _ := newTestStore(t)

	store.AddAsset(Asset{Name: "now", Value: N(100)})
	store.AddTransaction(Transaction{Desc: "this month", Value: N(10), Date: MustParseDate("2025-09-20")})
	store.AddTransaction(Transaction{Desc: "last month", Value: N(20), Date: MustParseDate("2025-08-20")})
	store.AddTransaction(Transaction{Desc: "ana's lunch", Value: N(30), Type: TypeCredit, Owner: "Ana", Date: MustParseDate("2025-09-05")})
	store.AddTransaction(Transaction{Desc: "my card", Value: N(40), Type: TypeCredit, Date: MustParseDate("2025-09-06")})

	if got := store.MonthlyTransactions(); len(got) != 3 {
		t.Errorf("MonthlyTransactions() has %d records, want 3", len(got))
	}
	debtors := store.MonthlyCardDebtors()
	if len(debtors) != 1 || debtors[0].Owner != "Ana" {
		t.Errorf("MonthlyCardDebtors() = %+v, want only Ana's credit spending", debtors)
	}

	// switching the active month changes the views, not the data
	store.SetMonth(MustParsePeriod("2025-08"))
	if got := store.MonthlyTransactions(); len(got) != 1 || got[0].Desc != "last month" {
		t.Errorf("after month switch, MonthlyTransactions() = %+v", got)
	}
	if got := store.MonthlyAssets(); len(got) != 0 {
		t.Errorf("assets of 2025-09 leaked into 2025-08: %+v", got)
	}
}

func TestImportStatementCounts(t *testing.T) {
	store, _ := newTestStore(t)
	drafts := []Transaction{
		{Desc: "ifood", Value: N(54.90), Type: TypeCredit, CardID: "c1", Owner: Self},
		{Desc: "uber", Value: N(23.50), Type: TypeCredit, CardID: "c1", Owner: Self},
	}
	if got := store.ImportStatement(drafts); got != 2 {
		t.Errorf("ImportStatement() = %d, want 2", got)
	}
	if len(store.Transactions()) != 2 {
		t.Errorf("store holds %d transactions, want 2", len(store.Transactions()))
	}
}
