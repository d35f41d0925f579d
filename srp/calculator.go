package srp

import "math"

// Subtotal returns the sum of all line amounts in cents, before discount
// and tax. Invalid invoices yield the corresponding sentinel error.
func Subtotal(inv Invoice) (int64, error) {
	if err := inv.Validate(); err != nil {
		return 0, err
	}

	var sum int64
	for _, l := range inv.Lines {
		sum += l.UnitCents * int64(l.Quantity)
	}

	return sum, nil
}

// Total returns the amount due in cents: the subtotal with the discount
// deducted, then tax added, rounding half-away-from-zero at each step.
func Total(inv Invoice) (int64, error) {
	sub, err := Subtotal(inv)
	if err != nil {
		return 0, err
	}

	discounted := roundCents(float64(sub) * (1 - inv.DiscountRate))

	return roundCents(float64(discounted) * (1 + inv.TaxRate)), nil
}

// roundCents rounds a fractional cent amount half-away-from-zero.
func roundCents(v float64) int64 {
	return int64(math.Round(v))
}
