package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "storage.msgpack")
	s, err := OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, ok := s.GetItem("highscore.dat"); ok {
		t.Fatalf("fresh store should be empty")
	}
	if err := s.SetItem("highscore.dat", "42"); err != nil {
		t.Fatalf("set: %v", err)
	}

	again, err := OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	v, ok := again.GetItem("highscore.dat")
	if !ok || v != "42" {
		t.Fatalf("expected persisted 42, got %q ok=%v", v, ok)
	}
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.msgpack")
	if err := os.WriteFile(path, []byte{0xc1, 0xff, 0x00}, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenFile(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestFileStoreEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.msgpack")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := OpenFile(path)
	if err != nil {
		t.Fatalf("empty file should open: %v", err)
	}
	if err := s.SetItem("k", "v"); err != nil {
		t.Fatal(err)
	}
}

func TestMemStore(t *testing.T) {
	var s Store = NewMemStore()
	if err := s.SetItem("a", "1"); err != nil {
		t.Fatal(err)
	}
	if v, ok := s.GetItem("a"); !ok || v != "1" {
		t.Fatalf("got %q ok=%v", v, ok)
	}
}
