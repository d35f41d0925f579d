// This file implements the file-backed Repository: one JSON document per
// invoice under a directory, written via temp file then rename.
package srp

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// FileRepository is a Repository keeping one <id>.json per invoice in a
// directory.
type FileRepository struct {
	dir string
}

// NewFileRepository returns a file-backed repository rooted at dir,
// creating the directory if needed.
func NewFileRepository(dir string) (*FileRepository, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("srp: create repository dir: %w", err)
	}

	return &FileRepository{dir: dir}, nil
}

// path returns the document path for an invoice ID.
func (r *FileRepository) path(id uuid.UUID) string {
	return filepath.Join(r.dir, id.String()+".json")
}

// Save validates and writes the invoice via a temp file, then rename.
func (r *FileRepository) Save(inv Invoice) error {
	if err := inv.Validate(); err != nil {
		return err
	}

	b, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return fmt.Errorf("srp: encode invoice: %w", err)
	}

	path := r.path(inv.ID)
	tmp := path + ".tmp"
	if err = os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("srp: write invoice: %w", err)
	}

	return os.Rename(tmp, path)
}

// Load reads the invoice with the given ID, or ErrNotFound.
func (r *FileRepository) Load(id uuid.UUID) (Invoice, error) {
	b, err := os.ReadFile(r.path(id))
	if errors.Is(err, os.ErrNotExist) {
		return Invoice{}, ErrNotFound
	}
	if err != nil {
		return Invoice{}, fmt.Errorf("srp: read invoice: %w", err)
	}

	var inv Invoice
	if err = json.Unmarshal(b, &inv); err != nil {
		return Invoice{}, fmt.Errorf("srp: decode invoice: %w", err)
	}

	return inv, nil
}

// Delete removes the invoice document, or ErrNotFound.
func (r *FileRepository) Delete(id uuid.UUID) error {
	err := os.Remove(r.path(id))
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotFound
	}

	return err
}

// List reads every invoice document in the directory, ordered by issue time.
func (r *FileRepository) List() ([]Invoice, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("srp: list repository dir: %w", err)
	}

	out := make([]Invoice, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		id, parseErr := uuid.Parse(strings.TrimSuffix(e.Name(), ".json"))
		if parseErr != nil {
			continue // foreign file, skip
		}
		inv, loadErr := r.Load(id)
		if loadErr != nil {
			return nil, loadErr
		}
		out = append(out, inv)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].IssuedAt.Before(out[j].IssuedAt) })

	return out, nil
}

var _ Repository = (*FileRepository)(nil)
