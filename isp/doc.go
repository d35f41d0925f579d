// Package isp demonstrates the Interface Segregation Principle: clients
// should not be forced to depend on operations they do not use.
//
// The refactored design declares three narrow capabilities — Printer,
// Scanner, Faxer. A MultiFunctionDevice satisfies all three; a
// CompactPrinter satisfies only Printer, and no contract forces it to
// stub the rest.
//
// The anti-pattern, kept for contrast, is the fat LegacyWorkstation
// interface: a DotMatrix printer must implement Scan and Fax anyway, and
// can only fail them with ErrScanNotSupported / ErrFaxNotSupported.
package isp
