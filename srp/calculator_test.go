// Package srp_test contains unit tests for the invoice domain: arithmetic,
// rendering, and the memory/file repositories.
package srp_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/solid/srp"
)

// fixedInvoice returns a deterministic invoice: 2×$3.50 + 1×$10.00,
// 10% discount, 5% tax.
func fixedInvoice(t *testing.T) srp.Invoice {
	t.Helper()

	inv := srp.Invoice{
		ID:       uuid.MustParse("9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"),
		Customer: "ACME Corp",
		Lines: []srp.LineItem{
			{Description: "widget", UnitCents: 350, Quantity: 2},
			{Description: "gizmo", UnitCents: 1000, Quantity: 1},
		},
		IssuedAt: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
	}
	inv, err := inv.WithRates(0.10, 0.05)
	require.NoError(t, err)

	return inv
}

func TestSubtotal(t *testing.T) {
	sub, err := srp.Subtotal(fixedInvoice(t))
	require.NoError(t, err)
	assert.Equal(t, int64(1700), sub)
}

func TestTotal_DiscountThenTax(t *testing.T) {
	// 1700 − 10% → 1530; +5% → 1606.5 → rounds to 1607.
	total, err := srp.Total(fixedInvoice(t))
	require.NoError(t, err)
	assert.Equal(t, int64(1607), total)
}

func TestTotal_NoRates(t *testing.T) {
	inv, err := srp.NewInvoice("ACME Corp",
		srp.LineItem{Description: "widget", UnitCents: 350, Quantity: 2},
	)
	require.NoError(t, err)

	total, err := srp.Total(inv)
	require.NoError(t, err)
	assert.Equal(t, int64(700), total)
}

func TestNewInvoice_Validation(t *testing.T) {
	_, err := srp.NewInvoice("ACME Corp")
	assert.ErrorIs(t, err, srp.ErrNoLines)

	_, err = srp.NewInvoice("ACME Corp", srp.LineItem{Description: "widget", UnitCents: 350})
	assert.ErrorIs(t, err, srp.ErrBadQuantity)

	_, err = srp.NewInvoice("ACME Corp", srp.LineItem{Description: "widget", UnitCents: -1, Quantity: 1})
	assert.ErrorIs(t, err, srp.ErrBadUnitPrice)
}

func TestWithRates_BadRates(t *testing.T) {
	inv := fixedInvoice(t)

	_, err := inv.WithRates(-0.1, 0)
	assert.ErrorIs(t, err, srp.ErrBadRate)

	_, err = inv.WithRates(0, 1)
	assert.ErrorIs(t, err, srp.ErrBadRate)
}

func TestRenderer_FixedLayout(t *testing.T) {
	doc, err := srp.Renderer{}.Render(fixedInvoice(t))
	require.NoError(t, err)

	want := `INVOICE 9b1deb4d
Customer: ACME Corp
Issued:   2026-01-15
  2 x widget @ $3.50
  1 x gizmo @ $10.00
Subtotal:  $17.00
Discount:  10%
Tax:       5%
Total due: $16.07
`
	assert.Equal(t, want, doc)
}

func TestRenderer_InvalidInvoice(t *testing.T) {
	_, err := srp.Renderer{}.Render(srp.Invoice{})
	assert.ErrorIs(t, err, srp.ErrNoLines)
}

func TestMonolithicInvoice_BundlesResponsibilities(t *testing.T) {
	m := srp.MonolithicInvoice{Invoice: fixedInvoice(t)}

	total, err := m.Total()
	require.NoError(t, err)
	assert.Equal(t, int64(1607), total)

	doc, err := m.Render()
	require.NoError(t, err)
	assert.Contains(t, doc, "Total due: $16.07")

	dir := t.TempDir()
	require.NoError(t, m.SaveTo(dir))

	repo, err := srp.NewFileRepository(dir)
	require.NoError(t, err)
	got, err := repo.Load(m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.Customer, got.Customer)
}
