package ledger

// Snapshot is the full serializable state of the five record collections.
// It is the unit of persistence, migration and backup.
type Snapshot struct {
	Assets        []Asset        `json:"assets"`
	Cards         []Card         `json:"cards"`
	FixedExpenses []FixedExpense `json:"fixedExpenses"`
	Receivables   []Receivable   `json:"receivables"`
	Transactions  []Transaction  `json:"transactions"`
}

// init makes sure all collections are non-nil, so an empty snapshot encodes
// five empty arrays rather than nulls.
func (s *Snapshot) init() {
	if s.Assets == nil {
		s.Assets = []Asset{}
	}
	if s.Cards == nil {
		s.Cards = []Card{}
	}
	if s.FixedExpenses == nil {
		s.FixedExpenses = []FixedExpense{}
	}
	if s.Receivables == nil {
		s.Receivables = []Receivable{}
	}
	if s.Transactions == nil {
		s.Transactions = []Transaction{}
	}
}

// Normalized returns a copy of the snapshot with every record of every
// collection normalized against the given period.
func (s Snapshot) Normalized(p Period) Snapshot {
	out := Snapshot{
		Assets:        make([]Asset, 0, len(s.Assets)),
		Cards:         make([]Card, 0, len(s.Cards)),
		FixedExpenses: make([]FixedExpense, 0, len(s.FixedExpenses)),
		Receivables:   make([]Receivable, 0, len(s.Receivables)),
		Transactions:  make([]Transaction, 0, len(s.Transactions)),
	}
	for _, a := range s.Assets {
		out.Assets = append(out.Assets, NormalizeAsset(a, p))
	}
	for _, c := range s.Cards {
		out.Cards = append(out.Cards, NormalizeCard(c))
	}
	for _, f := range s.FixedExpenses {
		out.FixedExpenses = append(out.FixedExpenses, NormalizeFixedExpense(f, p))
	}
	for _, r := range s.Receivables {
		out.Receivables = append(out.Receivables, NormalizeReceivable(r, p))
	}
	for _, t := range s.Transactions {
		out.Transactions = append(out.Transactions, NormalizeTransaction(t, p))
	}
	return out
}
