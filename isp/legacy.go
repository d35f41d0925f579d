package isp

import "fmt"

// LegacyWorkstation is the fat contract of the anti-pattern: one interface
// bundling every office capability, forced on every device.
type LegacyWorkstation interface {
	Print(doc Document) error
	Scan() (Document, error)
	Fax(doc Document, number string) error
}

// DotMatrix is a bare printer forced into the LegacyWorkstation contract.
// It can print; the rest of the contract it can only fail.
type DotMatrix struct {
	journal []string
}

// Print records the print job.
func (d *DotMatrix) Print(doc Document) error {
	d.journal = append(d.journal, fmt.Sprintf("print %q (%d pages)", doc.Title, doc.Pages))

	return nil
}

// Scan signals the unsupported-operation failure; there is no scanning unit.
func (d *DotMatrix) Scan() (Document, error) {
	return Document{}, ErrScanNotSupported
}

// Fax signals the unsupported-operation failure; there is no fax modem.
func (d *DotMatrix) Fax(Document, string) error {
	return ErrFaxNotSupported
}

// Journal returns the recorded operations in order.
func (d *DotMatrix) Journal() []string { return d.journal }

var _ LegacyWorkstation = (*DotMatrix)(nil)
