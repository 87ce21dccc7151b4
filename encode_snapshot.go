package ledger

import (
	"encoding/json"
	"fmt"
	"io"
)

// DecodeSnapshot decodes a snapshot from its durable json form: an object
// with the five named collections. Unknown fields are dropped.
func DecodeSnapshot(r io.Reader) (Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Snapshot{}, fmt.Errorf("cannot read snapshot: %w", err)
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("cannot parse snapshot: %w", err)
	}
	s.init()
	return s, nil
}

// EncodeSnapshot writes a snapshot in its durable json form. The same format
// serves persistence and backup files, so it stays human readable.
func EncodeSnapshot(w io.Writer, s Snapshot) error {
	s.init()
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal snapshot: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write snapshot: %w", err)
	}
	return nil
}
