package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStoreSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(filepath.Join(dir, "blobs"))
	if err != nil {
		t.Fatalf("NewLocalStore() error: %v", err)
	}

	if err := store.Save("1-photo.jpg", strings.NewReader("payload")); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(store.Root(), "1-photo.jpg"))
	if err != nil {
		t.Fatalf("stored blob not readable: %v", err)
	}
	if string(b) != "payload" {
		t.Errorf("stored blob = %q, want %q", b, "payload")
	}

	if err := store.Remove("1-photo.jpg"); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.Root(), "1-photo.jpg")); !os.IsNotExist(err) {
		t.Errorf("blob still present after Remove, stat err = %v", err)
	}
}

func TestLocalStoreSaveRefusesOverwrite(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore() error: %v", err)
	}

	if err := store.Save("same.png", strings.NewReader("first")); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := store.Save("same.png", strings.NewReader("second")); err == nil {
		t.Error("Save() overwrote an existing blob")
	}

	b, err := os.ReadFile(filepath.Join(store.Root(), "same.png"))
	if err != nil {
		t.Fatalf("blob not readable: %v", err)
	}
	if string(b) != "first" {
		t.Errorf("blob = %q, want original content preserved", b)
	}
}

func TestLocalStoreSaveStripsPath(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore() error: %v", err)
	}

	if err := store.Save("../escape.jpg", strings.NewReader("x")); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.Root(), "escape.jpg")); err != nil {
		t.Errorf("blob not stored under the root: %v", err)
	}
}

func TestLocalStoreRemoveMissing(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore() error: %v", err)
	}
	if err := store.Remove("absent.jpg"); err == nil {
		t.Error("Remove() of a missing blob should report an error")
	}
}
