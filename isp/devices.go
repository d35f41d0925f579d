package isp

import (
	"errors"
	"fmt"
)

// Sentinel errors raised only by legacy variants forced into operations
// they cannot perform.
var (
	// ErrScanNotSupported indicates a device without a scanning unit was
	// asked to scan.
	ErrScanNotSupported = errors.New("isp: scan not supported")

	// ErrFaxNotSupported indicates a device without a fax modem was asked
	// to fax.
	ErrFaxNotSupported = errors.New("isp: fax not supported")

	// ErrEmptyTray indicates a scan was requested with nothing on the glass.
	ErrEmptyTray = errors.New("isp: document tray is empty")
)

// Document is the unit of work every device capability operates on.
type Document struct {
	Title string
	Pages int
}

// Printer is the narrow printing capability.
type Printer interface {
	Print(doc Document) error
}

// Scanner is the narrow scanning capability.
type Scanner interface {
	Scan() (Document, error)
}

// Faxer is the narrow faxing capability.
type Faxer interface {
	Fax(doc Document, number string) error
}

// MultiFunctionDevice satisfies all three capabilities and keeps a journal
// of what it did, so tests and demos can observe the side effects.
type MultiFunctionDevice struct {
	tray    []Document // documents waiting on the glass
	journal []string
}

// NewMultiFunctionDevice returns a device with the given documents loaded
// onto its scanning tray.
func NewMultiFunctionDevice(tray ...Document) *MultiFunctionDevice {
	return &MultiFunctionDevice{tray: tray}
}

// Print records the print job.
func (m *MultiFunctionDevice) Print(doc Document) error {
	m.journal = append(m.journal, fmt.Sprintf("print %q (%d pages)", doc.Title, doc.Pages))

	return nil
}

// Scan takes the next document off the tray, or ErrEmptyTray.
func (m *MultiFunctionDevice) Scan() (Document, error) {
	if len(m.tray) == 0 {
		return Document{}, ErrEmptyTray
	}
	doc := m.tray[0]
	m.tray = m.tray[1:]
	m.journal = append(m.journal, fmt.Sprintf("scan %q", doc.Title))

	return doc, nil
}

// Fax records the fax transmission.
func (m *MultiFunctionDevice) Fax(doc Document, number string) error {
	m.journal = append(m.journal, fmt.Sprintf("fax %q to %s", doc.Title, number))

	return nil
}

// Journal returns the recorded operations in order.
func (m *MultiFunctionDevice) Journal() []string { return m.journal }

// CompactPrinter satisfies only the Printer capability. Nothing forces it
// to carry scan or fax stubs; the operations simply do not exist on it.
type CompactPrinter struct {
	journal []string
}

// Print records the print job.
func (c *CompactPrinter) Print(doc Document) error {
	c.journal = append(c.journal, fmt.Sprintf("print %q (%d pages)", doc.Title, doc.Pages))

	return nil
}

// Journal returns the recorded operations in order.
func (c *CompactPrinter) Journal() []string { return c.journal }

// Compile-time capability assertions.
var (
	_ Printer = (*MultiFunctionDevice)(nil)
	_ Scanner = (*MultiFunctionDevice)(nil)
	_ Faxer   = (*MultiFunctionDevice)(nil)
	_ Printer = (*CompactPrinter)(nil)
)

// PrintAll drives any Printer — compact or multi-function — through the
// one capability it actually needs.
func PrintAll(p Printer, docs ...Document) error {
	for _, d := range docs {
		if err := p.Print(d); err != nil {
			return err
		}
	}

	return nil
}
