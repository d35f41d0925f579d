// Package srp demonstrates the Single Responsibility Principle: a type
// should have exactly one reason to change.
//
// Overview:
//
//	The invoice domain is split along its three reasons to change:
//
//	  - Arithmetic — Subtotal and Total are pure functions over an Invoice;
//	    they change when billing rules change.
//	  - Presentation — Renderer turns an Invoice into a plain-text document;
//	    it changes when the layout changes.
//	  - Persistence — Repository (MemoryRepository, FileRepository) stores
//	    and retrieves invoices; it changes when the storage medium changes.
//
// The anti-pattern, kept for contrast:
//
//   - MonolithicInvoice bundles all three responsibilities into one type.
//     Every billing, layout or storage change lands in the same place, and
//     none of the three can be substituted or tested in isolation.
//
// Amounts are integer cents throughout; DiscountRate and TaxRate are
// fractions in [0,1), applied in that order with round-half-away rounding
// at each step.
//
// Error handling (sentinel errors):
//
//	ErrNoLines      - an invoice carries no line items.
//	ErrBadQuantity  - a line quantity is zero or negative.
//	ErrBadUnitPrice - a line unit price is negative.
//	ErrBadRate      - a discount or tax rate is outside [0,1).
//	ErrNotFound     - a repository lookup referenced an unknown invoice.
//
// Example usage:
//
//	inv, err := srp.NewInvoice("ACME Corp",
//	    srp.LineItem{Description: "widget", UnitCents: 350, Quantity: 2},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	total, _ := srp.Total(inv)
//	doc, _ := srp.Renderer{}.Render(inv)
//	_ = repo.Save(inv)
package srp
