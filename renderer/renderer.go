// Package renderer turns ledger reports into markdown, ready for a
// terminal markdown renderer or a plain pager.
package renderer

import (
	"fmt"
	"strings"

	ledger "github.com/bernardomacieledu/minhas-financas"
)

// SummaryMarkdown renders the monthly totals report.
func SummaryMarkdown(month ledger.Period, t ledger.Totals) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Resumo de %s\n\n", month)

	table(&b, []string{"Total", "Valor"}, [][]string{
		{"Patrimônio", t.Assets.String()},
		{"Contas fixas", t.Fixed.String()},
		{"A receber", t.Receivables.String()},
		{"Cartões", t.Cards.String()},
		{"Débito/Pix", t.DebitSpent.String()},
	})

	fmt.Fprintf(&b, "\n**Saldo final: %s**\n", t.Balance)
	return b.String()
}

// StatisticsMarkdown renders the analytics report. A nil statistics value
// means the ledger has no spending anywhere yet.
func StatisticsMarkdown(month ledger.Period, st *ledger.Statistics) string {
	if st == nil {
		return "# Estatísticas\n\nNenhum gasto registrado ainda.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Estatísticas de %s\n\n", month)
	fmt.Fprintf(&b, "Total gasto no mês: **%s** (meu: %s)\n\n", st.TotalSpent, st.MySpend)

	if len(st.OwnerRanking) > 0 {
		b.WriteString("## Ranking de pessoas\n\n")
		rows := make([][]string, 0, len(st.OwnerRanking))
		for _, o := range st.OwnerRanking {
			rows = append(rows, []string{o.Name, o.Value.String()})
		}
		table(&b, []string{"Pessoa", "Total"}, rows)
		b.WriteString("\n")
	}

	if len(st.TopExpenses) > 0 {
		b.WriteString("## Top despesas\n\n")
		rows := make([][]string, 0, len(st.TopExpenses))
		for _, e := range st.TopExpenses {
			rows = append(rows, []string{e.Name, e.Value.String()})
		}
		table(&b, []string{"Despesa", "Total"}, rows)
		b.WriteString("\n")
	}

	if len(st.MonthlyEvolution) > 0 {
		b.WriteString("## Evolução mensal\n\n")
		rows := make([][]string, 0, len(st.MonthlyEvolution))
		for _, m := range st.MonthlyEvolution {
			rows = append(rows, []string{m.Month.String(), m.Value.String()})
		}
		table(&b, []string{"Mês", "Total"}, rows)
		fmt.Fprintf(&b, "\nMês mais alto: **%s** (%s)\n", st.HighestMonth.Month, st.HighestMonth.Value)
	}
	return b.String()
}

// TransactionsMarkdown renders a transaction listing.
func TransactionsMarkdown(month ledger.Period, txs []ledger.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transações de %s\n\n", month)
	if len(txs) == 0 {
		b.WriteString("Nenhuma transação no mês.\n")
		return b.String()
	}
	rows := make([][]string, 0, len(txs))
	for _, t := range txs {
		paid := ""
		if t.IsPaid {
			paid = "✓"
		}
		rows = append(rows, []string{t.Date.String(), t.Desc, t.Type, t.Owner, t.Value.String(), paid, t.ID})
	}
	table(&b, []string{"Data", "Descrição", "Tipo", "Pessoa", "Valor", "Pago", "Id"}, rows)
	return b.String()
}

// table writes a minimal markdown table.
func table(b *strings.Builder, header []string, rows [][]string) {
	b.WriteString("| " + strings.Join(header, " | ") + " |\n")
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	b.WriteString("| " + strings.Join(sep, " | ") + " |\n")
	for _, row := range rows {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}
}
