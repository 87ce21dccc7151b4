package renderer

import (
	"strings"
	"testing"

	ledger "github.com/bernardomacieledu/minhas-financas"
)

func TestSummaryMarkdown(t *testing.T) {
	month := ledger.MustParsePeriod("2025-09")
	totals := ledger.Totals{
		Assets:      ledger.N(1000),
		Fixed:       ledger.N(300),
		Receivables: ledger.N(150),
		Cards:       ledger.N(200),
		DebitSpent:  ledger.N(80),
		Balance:     ledger.N(570),
	}

	md := SummaryMarkdown(month, totals)
	if !strings.HasPrefix(md, "# Resumo de 2025-09\n") {
		t.Errorf("summary does not open with the month heading:\n%s", md)
	}
	for _, want := range []string{
		"Patrimônio", "Contas fixas", "A receber", "Cartões", "Débito/Pix",
		totals.Assets.String(), totals.Balance.String(),
	} {
		if !strings.Contains(md, want) {
			t.Errorf("summary is missing %q:\n%s", want, md)
		}
	}
}

func TestStatisticsMarkdownNil(t *testing.T) {
	md := StatisticsMarkdown(ledger.MustParsePeriod("2025-09"), nil)
	if !strings.Contains(md, "Nenhum gasto registrado ainda.") {
		t.Errorf("nil statistics must render the empty message, got:\n%s", md)
	}
}

func TestStatisticsMarkdown(t *testing.T) {
	st := &ledger.Statistics{
		MonthlyEvolution: []ledger.MonthTotal{
			{Month: ledger.MustParsePeriod("2025-08"), Value: ledger.N(100)},
			{Month: ledger.MustParsePeriod("2025-09"), Value: ledger.N(600)},
		},
		HighestMonth: ledger.MonthTotal{Month: ledger.MustParsePeriod("2025-09"), Value: ledger.N(600)},
		OwnerRanking: []ledger.NameTotal{
			{Name: "Ana", Value: ledger.N(500)},
			{Name: ledger.Self, Value: ledger.N(100)},
		},
		TopExpenses: []ledger.NameTotal{{Name: "Netflix", Value: ledger.N(55)}},
		TotalSpent:  ledger.N(600),
		MySpend:     ledger.N(100),
	}

	md := StatisticsMarkdown(ledger.MustParsePeriod("2025-09"), st)
	for _, want := range []string{
		"# Estatísticas de 2025-09",
		"## Ranking de pessoas",
		"## Top despesas",
		"## Evolução mensal",
		"| Ana |", "| Netflix |", "| 2025-08 |",
		"Mês mais alto: **2025-09**",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("statistics report is missing %q:\n%s", want, md)
		}
	}

	// ranking rows keep their order
	ana := strings.Index(md, "| Ana |")
	eu := strings.Index(md, "| "+ledger.Self+" |")
	if ana < 0 || eu < 0 || ana > eu {
		t.Errorf("owner ranking rows out of order:\n%s", md)
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	month := ledger.MustParsePeriod("2025-09")

	if md := TransactionsMarkdown(month, nil); !strings.Contains(md, "Nenhuma transação no mês.") {
		t.Errorf("empty listing must say so, got:\n%s", md)
	}

	txs := []ledger.Transaction{
		{ID: "t1", Desc: "mercado", Value: ledger.N(80), Type: "debit", Date: ledger.MustParseDate("2025-09-02"), Owner: ledger.Self},
		{ID: "t2", Desc: "jantar", Value: ledger.N(50), Type: ledger.TypeCredit, Date: ledger.MustParseDate("2025-09-03"), Owner: "Ana", IsPaid: true},
	}
	md := TransactionsMarkdown(month, txs)
	for _, want := range []string{"2025-09-02", "mercado", "jantar", "Ana", "t1", "t2", "✓"} {
		if !strings.Contains(md, want) {
			t.Errorf("listing is missing %q:\n%s", want, md)
		}
	}
}
