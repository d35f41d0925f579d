package srp

import "path/filepath"

// MonolithicInvoice is the anti-pattern kept for contrast: one type owning
// arithmetic, presentation and persistence at once. A billing rule change,
// a layout change and a storage change all land here, and none of the
// three can be substituted independently.
type MonolithicInvoice struct {
	Invoice
}

// Total computes the amount due — the arithmetic responsibility.
func (m MonolithicInvoice) Total() (int64, error) {
	return Total(m.Invoice)
}

// Render produces the text document — the presentation responsibility.
func (m MonolithicInvoice) Render() (string, error) {
	return Renderer{}.Render(m.Invoice)
}

// SaveTo persists the invoice under dir — the storage responsibility,
// hardwired to the file medium.
func (m MonolithicInvoice) SaveTo(dir string) error {
	repo, err := NewFileRepository(filepath.Clean(dir))
	if err != nil {
		return err
	}

	return repo.Save(m.Invoice)
}
