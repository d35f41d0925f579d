package srp

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Repository is the persistence capability for invoices. Storage is its
// own responsibility: implementations vary by medium, consumers depend on
// this contract alone.
type Repository interface {
	// Save stores the invoice, overwriting any previous version.
	Save(inv Invoice) error

	// Load returns the invoice with the given ID, or ErrNotFound.
	Load(id uuid.UUID) (Invoice, error)

	// Delete removes the invoice with the given ID, or ErrNotFound.
	Delete(id uuid.UUID) error

	// List returns all stored invoices, ordered by issue time.
	List() ([]Invoice, error)
}

// MemoryRepository is an in-memory Repository, safe for concurrent use.
// The zero value is not usable; call NewMemoryRepository.
type MemoryRepository struct {
	mu       sync.RWMutex
	invoices map[uuid.UUID]Invoice
}

// NewMemoryRepository returns an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{invoices: make(map[uuid.UUID]Invoice)}
}

// Save stores the invoice after validation.
func (r *MemoryRepository) Save(inv Invoice) error {
	if err := inv.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	r.invoices[inv.ID] = inv
	r.mu.Unlock()

	return nil
}

// Load returns the invoice with the given ID, or ErrNotFound.
func (r *MemoryRepository) Load(id uuid.UUID) (Invoice, error) {
	r.mu.RLock()
	inv, ok := r.invoices[id]
	r.mu.RUnlock()
	if !ok {
		return Invoice{}, ErrNotFound
	}

	return inv, nil
}

// Delete removes the invoice with the given ID, or ErrNotFound.
func (r *MemoryRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.invoices[id]; !ok {
		return ErrNotFound
	}
	delete(r.invoices, id)

	return nil
}

// List returns all stored invoices ordered by issue time.
func (r *MemoryRepository) List() ([]Invoice, error) {
	r.mu.RLock()
	out := make([]Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		out = append(out, inv)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].IssuedAt.Before(out[j].IssuedAt) })

	return out, nil
}

var _ Repository = (*MemoryRepository)(nil)
