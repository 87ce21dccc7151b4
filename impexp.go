package ledger

import (
	"fmt"
	"io"
	"time"
)

// this file contains the backup import/export surface. The backup file is
// the durable snapshot format itself, so a backup can also be dropped
// directly into storage.

// ExportBackup writes the full state as a backup payload.
func (s *Store) ExportBackup(w io.Writer) error {
	return EncodeSnapshot(w, s.Snapshot())
}

// ImportBackup reads a backup payload, normalizes it and replaces the whole
// state in one step, then persists. On a parse failure the store is left
// untouched and the error is recoverable.
func (s *Store) ImportBackup(r io.Reader) error {
	snap, err := DecodeSnapshot(r)
	if err != nil {
		return fmt.Errorf("could not restore backup: %w", err)
	}
	s.ReplaceAll(snap.Normalized(s.month))
	return nil
}

// BackupFilename names a backup artifact after its creation time. The exact
// name is not contractual, only the timestamp is expected by users sorting
// their backup folder.
func BackupFilename(now time.Time) string {
	return fmt.Sprintf("financas_backup_%d.json", now.UnixMilli())
}
