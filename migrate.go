package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"

	"github.com/PaesslerAG/jsonpath"
)

// CurrentKey is the storage key of the current schema. Schema identity is
// conveyed purely by which key holds the data; snapshots carry no version
// field.
const CurrentKey = "finvue_v8_monthly"

// legacyLocation pairs a superseded storage key with the decoder able to
// read its format. Adding a legacy format means adding an entry here, no
// control flow changes.
type legacyLocation struct {
	key    string
	decode func(data []byte) (Snapshot, error)
}

// legacyLocations is the fixed priority list of superseded keys, scanned
// newest-first. The first key that yields a parseable snapshot wins; no
// merging across keys.
var legacyLocations = []legacyLocation{
	{key: "finvue_v7_stable", decode: decodeLegacySnapshot},
	{key: "finvue_v6_final", decode: decodeLegacySnapshot},
	{key: "finvue_v5_auto", decode: decodeLegacySnapshot},
	{key: "vue-fin-data-v1", decode: decodeLegacySnapshot},
}

// MigrationReport tells what the startup migration did.
type MigrationReport struct {
	// Migrated is true when data was recovered from a legacy key.
	Migrated bool
	// FromKey is the legacy key the data came from.
	FromKey string
}

// Open loads durable state into a new store.
//
// When the current key holds data, it is normalized and loaded, and no
// legacy scan happens; re-opening a populated store is therefore idempotent
// and can never duplicate records. Otherwise the legacy keys are scanned in
// priority order: the first parseable snapshot is migrated (period-scoped
// records stamped with the active period, dateless transactions dated on
// its first day) and committed under the current key. When nothing holds
// data anywhere the store simply starts empty.
func Open(storage Storage) (*Store, MigrationReport, error) {
	s := NewStore(storage)

	data, ok, err := storage.Read(CurrentKey)
	if err != nil {
		return nil, MigrationReport{}, fmt.Errorf("cannot open ledger storage: %w", err)
	}
	if ok {
		snap, err := DecodeSnapshot(bytes.NewReader(data))
		if err != nil {
			// Current data exists but is unreadable. Keep the store empty and
			// do not scan legacy keys: stale data must not shadow the broken
			// current key. Nothing is written until the next mutation.
			log.Printf("warning: could not load ledger state: %v", err)
			return s, MigrationReport{}, nil
		}
		s.load(snap.Normalized(s.month))
		return s, MigrationReport{}, nil
	}

	for _, loc := range legacyLocations {
		data, ok, err := storage.Read(loc.key)
		if err != nil || !ok {
			continue
		}
		snap, err := loc.decode(data)
		if err != nil {
			log.Printf("warning: could not parse legacy data under %q: %v", loc.key, err)
			continue
		}
		s.ReplaceAll(migrateLegacy(snap, s.month)) // commit under CurrentKey
		return s, MigrationReport{Migrated: true, FromKey: loc.key}, nil
	}

	// No location held data. An empty ledger is not an error.
	return s, MigrationReport{}, nil
}

// migrateLegacy normalizes a legacy snapshot into the current schema.
// Legacy schemas predate per-record period tagging, so every period-scoped
// record is stamped with the active period: historical money reappears in
// the current month instead of vanishing from all monthly views.
func migrateLegacy(snap Snapshot, p Period) Snapshot {
	out := snap.Normalized(p)
	for i := range out.Assets {
		out.Assets[i].Month = p
	}
	for i := range out.FixedExpenses {
		out.FixedExpenses[i].Month = p
	}
	for i := range out.Receivables {
		out.Receivables[i].Month = p
	}
	// Transactions keep their own date; the dateless ones were already
	// stamped with the first day of the period by Normalized.
	return out
}

// decodeLegacySnapshot reads a snapshot of any recognized legacy shape. The
// old formats share the five collection names but are loose about field
// types (values stored as strings, absent months, free-form extras), so the
// collections are probed with jsonpath and each record rebuilt field by
// field with zero fallbacks.
func decodeLegacySnapshot(data []byte) (Snapshot, error) {
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return Snapshot{}, fmt.Errorf("legacy data is not json: %w", err)
	}

	var snap Snapshot
	for _, item := range legacyItems(jobj, "$.assets") {
		snap.Assets = append(snap.Assets, Asset{
			ID:       legacyString(item, "id"),
			Name:     legacyString(item, "name"),
			Category: legacyString(item, "category"),
			Value:    legacyAmount(item, "value"),
		})
	}
	for _, item := range legacyItems(jobj, "$.cards") {
		snap.Cards = append(snap.Cards, Card{
			ID:             legacyString(item, "id"),
			Name:           legacyString(item, "name"),
			CurrentInvoice: legacyAmount(item, "currentInvoice"),
		})
	}
	for _, item := range legacyItems(jobj, "$.fixedExpenses") {
		snap.FixedExpenses = append(snap.FixedExpenses, FixedExpense{
			ID:    legacyString(item, "id"),
			Name:  legacyString(item, "name"),
			Value: legacyAmount(item, "value"),
		})
	}
	for _, item := range legacyItems(jobj, "$.receivables") {
		snap.Receivables = append(snap.Receivables, Receivable{
			ID:    legacyString(item, "id"),
			Name:  legacyString(item, "name"),
			Value: legacyAmount(item, "value"),
		})
	}
	for _, item := range legacyItems(jobj, "$.transactions") {
		t := Transaction{
			ID:     legacyString(item, "id"),
			Desc:   legacyString(item, "desc"),
			Value:  legacyAmount(item, "value"),
			Type:   legacyString(item, "type"),
			CardID: legacyString(item, "cardId"),
			Owner:  legacyString(item, "owner"),
		}
		if raw := legacyString(item, "date"); raw != "" {
			if d, err := ParseDate(raw); err == nil {
				t.Date = d
			}
		}
		if paid, ok := item["isPaid"].(bool); ok {
			t.IsPaid = paid
		}
		snap.Transactions = append(snap.Transactions, t)
	}
	snap.init()
	return snap, nil
}

// legacyItems probes a collection in the legacy json. A missing collection
// is simply empty; a present one must be a list of objects.
func legacyItems(jobj any, path string) []map[string]any {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil
	}
	var items []map[string]any
	for _, j := range jlist {
		if m, ok := j.(map[string]any); ok {
			items = append(items, m)
		}
	}
	return items
}

func legacyString(item map[string]any, field string) string {
	s, _ := item[field].(string)
	return s
}

// legacyAmount coerces a legacy value field: number or numeric string,
// anything else is zero.
func legacyAmount(item map[string]any, field string) Amount {
	switch v := item[field].(type) {
	case float64:
		return N(v)
	case string:
		return ParseAmount(v)
	case json.Number:
		return ParseAmount(v.String())
	default:
		return Amount{}
	}
}
