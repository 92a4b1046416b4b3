// Package storage provides the blob store used for post attachments.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Store persists uploaded blobs under stable names. Both operations are
// synchronous: they return only after the filesystem change is done.
type Store interface {
	// Save copies src into the store under name, replacing nothing; the
	// caller is responsible for choosing a collision-free name.
	Save(name string, src io.Reader) error
	// Remove deletes a stored blob by name.
	Remove(name string) error
}

// LocalStore keeps blobs as plain files under a root directory.
type LocalStore struct {
	root string
}

// NewLocalStore creates the root directory if needed and returns the store.
func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create blob root %s: %w", root, err)
	}
	return &LocalStore{root: root}, nil
}

// Root returns the directory blobs are stored under.
func (s *LocalStore) Root() string {
	return s.root
}

// Save writes src to root/name. A partially written file is removed on
// failure so the store never holds truncated blobs.
func (s *LocalStore) Save(name string, src io.Reader) error {
	dst := filepath.Join(s.root, filepath.Base(name))
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create blob %s: %w", name, err)
	}

	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		_ = os.Remove(dst)
		return fmt.Errorf("write blob %s: %w", name, err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("close blob %s: %w", name, err)
	}
	return nil
}

// Remove deletes root/name.
func (s *LocalStore) Remove(name string) error {
	return os.Remove(filepath.Join(s.root, filepath.Base(name)))
}
