package srp

import (
	"fmt"
	"strings"
)

// Renderer turns an Invoice into a plain-text document. Presentation is
// its only responsibility; it never computes beyond calling Subtotal/Total
// and never touches storage.
type Renderer struct{}

// Render returns the invoice as a fixed-layout text document.
func (Renderer) Render(inv Invoice) (string, error) {
	sub, err := Subtotal(inv)
	if err != nil {
		return "", err
	}
	total, err := Total(inv)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "INVOICE %s\n", shortID(inv))
	fmt.Fprintf(&b, "Customer: %s\n", inv.Customer)
	fmt.Fprintf(&b, "Issued:   %s\n", inv.IssuedAt.Format("2006-01-02"))
	for _, l := range inv.Lines {
		fmt.Fprintf(&b, "  %d x %s @ %s\n", l.Quantity, l.Description, formatCents(l.UnitCents))
	}
	fmt.Fprintf(&b, "Subtotal:  %s\n", formatCents(sub))
	fmt.Fprintf(&b, "Discount:  %g%%\n", inv.DiscountRate*100)
	fmt.Fprintf(&b, "Tax:       %g%%\n", inv.TaxRate*100)
	fmt.Fprintf(&b, "Total due: %s\n", formatCents(total))

	return b.String(), nil
}

// shortID returns the first uuid group, enough for a human-facing header.
func shortID(inv Invoice) string {
	return strings.SplitN(inv.ID.String(), "-", 2)[0]
}

// formatCents renders an integer cent amount as dollars, e.g. 1607 → $16.07.
func formatCents(c int64) string {
	sign := ""
	if c < 0 {
		sign, c = "-", -c
	}

	return fmt.Sprintf("%s$%d.%02d", sign, c/100, c%100)
}
