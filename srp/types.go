// This file declares the Invoice and LineItem types, their validation,
// and the sentinel errors shared across the package.
package srp

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors for invoice construction and storage.
var (
	// ErrNoLines indicates an invoice with no line items.
	ErrNoLines = errors.New("srp: invoice has no line items")

	// ErrBadQuantity indicates a zero or negative line quantity.
	ErrBadQuantity = errors.New("srp: line quantity must be positive")

	// ErrBadUnitPrice indicates a negative line unit price.
	ErrBadUnitPrice = errors.New("srp: line unit price must be non-negative")

	// ErrBadRate indicates a discount or tax rate outside [0,1).
	ErrBadRate = errors.New("srp: rate must be in [0,1)")

	// ErrNotFound indicates a repository lookup for an unknown invoice ID.
	ErrNotFound = errors.New("srp: invoice not found")
)

// LineItem is one billed position on an invoice.
type LineItem struct {
	// Description names the billed item.
	Description string `json:"description"`

	// UnitCents is the price of one unit, in integer cents.
	UnitCents int64 `json:"unit_cents"`

	// Quantity is how many units were billed. Must be positive.
	Quantity int `json:"quantity"`
}

// Invoice is an immutable billing document. Construct it with NewInvoice;
// arithmetic, rendering and persistence live in separate types, each with
// its own reason to change.
type Invoice struct {
	// ID uniquely identifies this invoice.
	ID uuid.UUID `json:"id"`

	// Customer is the billed party.
	Customer string `json:"customer"`

	// Lines are the billed positions. Never empty on a valid invoice.
	Lines []LineItem `json:"lines"`

	// DiscountRate is the fraction deducted from the subtotal, in [0,1).
	DiscountRate float64 `json:"discount_rate"`

	// TaxRate is the fraction added after the discount, in [0,1).
	TaxRate float64 `json:"tax_rate"`

	// IssuedAt is the issue timestamp (UTC).
	IssuedAt time.Time `json:"issued_at"`
}

// NewInvoice builds a validated invoice with a fresh ID, issued now (UTC).
func NewInvoice(customer string, lines ...LineItem) (Invoice, error) {
	inv := Invoice{
		ID:       uuid.New(),
		Customer: customer,
		Lines:    lines,
		IssuedAt: time.Now().UTC(),
	}
	if err := inv.Validate(); err != nil {
		return Invoice{}, err
	}

	return inv, nil
}

// WithRates returns a copy of the invoice carrying the given discount and
// tax rates. Either rate outside [0,1) yields ErrBadRate.
func (inv Invoice) WithRates(discount, tax float64) (Invoice, error) {
	if discount < 0 || discount >= 1 {
		return Invoice{}, fmt.Errorf("%w: discount %v", ErrBadRate, discount)
	}
	if tax < 0 || tax >= 1 {
		return Invoice{}, fmt.Errorf("%w: tax %v", ErrBadRate, tax)
	}
	inv.DiscountRate, inv.TaxRate = discount, tax

	return inv, nil
}

// Validate checks the structural invariants: at least one line, positive
// quantities, non-negative unit prices, rates in [0,1).
func (inv Invoice) Validate() error {
	if len(inv.Lines) == 0 {
		return ErrNoLines
	}
	for i, l := range inv.Lines {
		if l.Quantity <= 0 {
			return fmt.Errorf("%w: line %d (%q)", ErrBadQuantity, i, l.Description)
		}
		if l.UnitCents < 0 {
			return fmt.Errorf("%w: line %d (%q)", ErrBadUnitPrice, i, l.Description)
		}
	}
	if inv.DiscountRate < 0 || inv.DiscountRate >= 1 || inv.TaxRate < 0 || inv.TaxRate >= 1 {
		return ErrBadRate
	}

	return nil
}
