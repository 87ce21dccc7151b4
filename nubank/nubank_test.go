package nubank

import (
	"testing"

	ledger "github.com/bernardomacieledu/minhas-financas"
)

func TestParse(t *testing.T) {
	statement := "date,title,amount\n" +
		"2025-08-02,IFOOD *RESTAURANTE,45.90\n" +
		"2025-08-05,\"PADARIA, DOCES E CIA\",12.50\n" +
		"2025-08-07,UBER TRIP,18\n"

	drafts := Parse(statement, "card-1")
	if len(drafts) != 3 {
		t.Fatalf("Parse() yielded %d drafts, want 3: %+v", len(drafts), drafts)
	}

	first := drafts[0]
	if first.Desc != "IFOOD *RESTAURANTE" {
		t.Errorf("Desc = %q", first.Desc)
	}
	if !first.Value.Equal(ledger.N(45.90)) {
		t.Errorf("Value = %v, want 45.90", first.Value)
	}
	if first.Type != ledger.TypeCredit || first.CardID != "card-1" || first.Owner != ledger.Self {
		t.Errorf("draft = %+v, want a credit draft on card-1 owned by %q", first, ledger.Self)
	}
	if first.Date != ledger.MustParseDate("2025-08-02") {
		t.Errorf("Date = %v, want 2025-08-02", first.Date)
	}

	// commas inside the title are rejoined, quotes dropped
	if drafts[1].Desc != "PADARIA, DOCES E CIA" {
		t.Errorf("Desc = %q, want the comma kept and quotes stripped", drafts[1].Desc)
	}
	if !drafts[2].Value.Equal(ledger.N(18)) {
		t.Errorf("Value = %v, want 18", drafts[2].Value)
	}
}

func TestParseSkipsMalformedLines(t *testing.T) {
	statement := "Date,Title,Amount\n" +
		"2025-08-02,OK,10\n" +
		"\n" +
		"short,5\n" +
		"2025-08-03,SEM VALOR,abc\n" +
		"2025-08-04,NAN,NaN\n" +
		"2025-08-05,TAMBEM OK,20\n"

	drafts := Parse(statement, "c")
	if len(drafts) != 2 {
		t.Fatalf("Parse() yielded %d drafts, want 2: %+v", len(drafts), drafts)
	}
	if drafts[0].Desc != "OK" || drafts[1].Desc != "TAMBEM OK" {
		t.Errorf("drafts = %+v", drafts)
	}
}

func TestParseNoHeader(t *testing.T) {
	drafts := Parse("2025-08-02,MERCADO,30\n", "c")
	if len(drafts) != 1 || drafts[0].Desc != "MERCADO" {
		t.Fatalf("Parse() = %+v, a statement without header keeps its first line", drafts)
	}
}

func TestParseBadDateStaysZero(t *testing.T) {
	drafts := Parse("title,amount\nontem,LANCHE,15\n", "c")
	if len(drafts) != 1 {
		t.Fatalf("Parse() = %+v", drafts)
	}
	if !drafts[0].Date.IsZero() {
		t.Errorf("Date = %v, want zero for an unparseable date", drafts[0].Date)
	}
}
