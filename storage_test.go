package ledger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirStorageRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	storage := NewDirStorage(dir)

	if _, ok, err := storage.Read("finvue_v8_monthly"); err != nil || ok {
		t.Fatalf("Read() on a missing dir = ok=%v err=%v, want a quiet miss", ok, err)
	}

	payload := []byte(`{"assets":[]}`)
	if err := storage.Write("finvue_v8_monthly", payload); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, ok, err := storage.Read("finvue_v8_monthly")
	if err != nil || !ok {
		t.Fatalf("Read() = ok=%v err=%v", ok, err)
	}
	if string(data) != string(payload) {
		t.Errorf("Read() = %s, want %s", data, payload)
	}

	// one file per key
	if _, err := os.Stat(filepath.Join(dir, "finvue_v8_monthly.json")); err != nil {
		t.Errorf("expected a json file per key: %v", err)
	}
}

func TestDirStorageOverwrites(t *testing.T) {
	storage := NewDirStorage(t.TempDir())

	if err := storage.Write("k", []byte("old")); err != nil {
		t.Fatal(err)
	}
	if err := storage.Write("k", []byte("new")); err != nil {
		t.Fatal(err)
	}
	data, _, _ := storage.Read("k")
	if string(data) != "new" {
		t.Errorf("Read() after overwrite = %s, want new", data)
	}
}
