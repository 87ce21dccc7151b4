package ledger

import "testing"

func TestNormalizeTransactionDefaults(t *testing.T) {
	p := MustParsePeriod("2025-09")
	got := NormalizeTransaction(Transaction{Desc: "mercado", Value: N(50)}, p)

	if got.ID == "" {
		t.Error("expected a generated id")
	}
	if got.Owner != Self {
		t.Errorf("Owner = %q, want %q", got.Owner, Self)
	}
	if got.Date != p.First() {
		t.Errorf("Date = %v, want first day of %v", got.Date, p)
	}
	if got.IsPaid {
		t.Error("IsPaid must default to false")
	}
}

func TestNormalizeKeepsExplicitFields(t *testing.T) {
	p := MustParsePeriod("2025-09")
	in := Transaction{
		ID:    "tx-1",
		Desc:  "cinema",
		Value: N(30),
		Date:  MustParseDate("2025-07-12"),
		Owner: "Ana",
	}
	if got := NormalizeTransaction(in, p); got != in {
		t.Errorf("normalization changed a complete record: %+v", got)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	p := MustParsePeriod("2025-09")

	once := NormalizeAsset(Asset{Name: "poupança", Value: N(1000)}, p)
	if twice := NormalizeAsset(once, p); twice != once {
		t.Errorf("asset normalization is not idempotent: %+v vs %+v", once, twice)
	}

	tx := NormalizeTransaction(Transaction{Desc: "uber", Value: N(20)}, p)
	if again := NormalizeTransaction(tx, p); again != tx {
		t.Errorf("transaction normalization is not idempotent: %+v vs %+v", tx, again)
	}

	card := NormalizeCard(Card{Name: "roxinho"})
	if again := NormalizeCard(card); again != card {
		t.Errorf("card normalization is not idempotent: %+v vs %+v", card, again)
	}
}

func TestNormalizeMonthStampsOnlyWhenMissing(t *testing.T) {
	p := MustParsePeriod("2025-09")
	other := MustParsePeriod("2024-01")

	f := NormalizeFixedExpense(FixedExpense{Name: "aluguel", Value: N(1200), Month: other}, p)
	if f.Month != other {
		t.Errorf("Month = %v, an explicit month must survive normalization", f.Month)
	}
	r := NormalizeReceivable(Receivable{Value: N(150)}, p)
	if r.Month != p {
		t.Errorf("Month = %v, want stamped %v", r.Month, p)
	}
}

func TestNormalizeGeneratesUniqueIDs(t *testing.T) {
	p := MustParsePeriod("2025-09")
	a := NormalizeAsset(Asset{Value: N(1)}, p)
	b := NormalizeAsset(Asset{Value: N(1)}, p)
	if a.ID == b.ID {
		t.Errorf("two fresh records share id %q", a.ID)
	}
}
