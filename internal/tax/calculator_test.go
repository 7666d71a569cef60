package tax_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbill/internal/tax"
)

const eps = 1e-9

func TestComputeLineItem_Basic(t *testing.T) {
	// The worked example: 5 x 1000 at 10% discount, 9% CGST + 9% SGST.
	got := tax.ComputeLineItem(tax.LineItemInput{
		Quantity:        5,
		UnitPrice:       1000,
		DiscountPercent: 10,
		CGSTRate:        9,
		SGSTRate:        9,
	})

	assert.InDelta(t, 5000, got.GrossAmount, eps)
	assert.InDelta(t, 500, got.DiscountAmount, eps)
	assert.InDelta(t, 4500, got.TaxableValue, eps)
	assert.InDelta(t, 405, got.CGSTAmount, eps)
	assert.InDelta(t, 405, got.SGSTAmount, eps)
	assert.InDelta(t, 0, got.IGSTAmount, eps)
	assert.InDelta(t, 0, got.CessAmount, eps)
	assert.InDelta(t, 5310, got.LineTotal, eps)
}

func TestComputeLineItem_ClampsBadInputs(t *testing.T) {
	tests := []struct {
		name string
		in   tax.LineItemInput
	}{
		{"negative_quantity", tax.LineItemInput{Quantity: -3, UnitPrice: 100}},
		{"negative_price", tax.LineItemInput{Quantity: 3, UnitPrice: -100}},
		{"nan_quantity", tax.LineItemInput{Quantity: math.NaN(), UnitPrice: 100}},
		{"inf_price", tax.LineItemInput{Quantity: 3, UnitPrice: math.Inf(1)}},
		{"negative_rate", tax.LineItemInput{Quantity: 3, UnitPrice: 100, CGSTRate: -18}},
		{"nan_discount", tax.LineItemInput{Quantity: 3, UnitPrice: 100, DiscountPercent: math.NaN()}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tax.ComputeLineItem(tc.in)
			for field, v := range map[string]float64{
				"taxable_value": got.TaxableValue,
				"cgst_amount":   got.CGSTAmount,
				"sgst_amount":   got.SGSTAmount,
				"igst_amount":   got.IGSTAmount,
				"cess_amount":   got.CessAmount,
				"line_total":    got.LineTotal,
			} {
				assert.False(t, math.IsNaN(v), "%s is NaN", field)
				assert.GreaterOrEqual(t, v, 0.0, "%s is negative", field)
			}
		})
	}
}

func TestComputeLineItem_TaxableValueProperty(t *testing.T) {
	// taxable = qty * price * (1 - discount/100) for all in-range inputs.
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		in := tax.LineItemInput{
			Quantity:        rng.Float64() * 1000,
			UnitPrice:       rng.Float64() * 10000,
			DiscountPercent: rng.Float64() * 100,
			CGSTRate:        rng.Float64() * 14,
			SGSTRate:        rng.Float64() * 14,
			IGSTRate:        rng.Float64() * 28,
			CessRate:        rng.Float64() * 5,
		}
		got := tax.ComputeLineItem(in)

		wantTaxable := in.Quantity * in.UnitPrice * (1 - in.DiscountPercent/100)
		assert.InDelta(t, wantTaxable, got.TaxableValue, 1e-6)
		assert.GreaterOrEqual(t, got.TaxableValue, 0.0)

		wantTotal := got.TaxableValue * (1 + (in.CGSTRate+in.SGSTRate+in.IGSTRate+in.CessRate)/100)
		assert.InDelta(t, wantTotal, got.LineTotal, 1e-6)
	}
}

func TestComputeLineItem_Deterministic(t *testing.T) {
	in := tax.LineItemInput{Quantity: 7, UnitPrice: 123.45, DiscountPercent: 2.5, CGSTRate: 6, SGSTRate: 6, CessRate: 1}
	first := tax.ComputeLineItem(in)
	second := tax.ComputeLineItem(in)
	assert.Equal(t, first, second)
}

func TestComputeLineItem_CessIncluded(t *testing.T) {
	got := tax.ComputeLineItem(tax.LineItemInput{
		Quantity: 1, UnitPrice: 1000, IGSTRate: 28, CessRate: 12,
	})
	assert.InDelta(t, 280, got.IGSTAmount, eps)
	assert.InDelta(t, 120, got.CessAmount, eps)
	assert.InDelta(t, 1400, got.LineTotal, eps)
}

func TestComputeDocumentTotals_Empty(t *testing.T) {
	got := tax.ComputeDocumentTotals(nil)
	assert.Equal(t, tax.DocumentTotals{}, got)

	got = tax.ComputeDocumentTotals([]tax.LineItemComputed{})
	assert.Equal(t, tax.DocumentTotals{}, got)
}

func TestComputeDocumentTotals_SingleLine(t *testing.T) {
	line := tax.ComputeLineItem(tax.LineItemInput{
		Quantity: 5, UnitPrice: 1000, DiscountPercent: 10, CGSTRate: 9, SGSTRate: 9,
	})
	got := tax.ComputeDocumentTotals([]tax.LineItemComputed{line})

	assert.InDelta(t, 5000, got.Subtotal, eps)
	assert.InDelta(t, 500, got.TotalDiscount, eps)
	assert.InDelta(t, 4500, got.TotalTaxableValue, eps)
	assert.InDelta(t, 405, got.TotalCGST, eps)
	assert.InDelta(t, 405, got.TotalSGST, eps)
	assert.InDelta(t, 0, got.TotalIGST, eps)
	assert.InDelta(t, 0, got.TotalCESS, eps)
	assert.InDelta(t, 810, got.TotalTax, eps)
	assert.InDelta(t, 5310, got.GrandTotal, eps)
}

func TestComputeDocumentTotals_MultiLine(t *testing.T) {
	lines := tax.ComputeLineItems([]tax.LineItemInput{
		{Quantity: 2, UnitPrice: 250, CGSTRate: 9, SGSTRate: 9},
		{Quantity: 1, UnitPrice: 1200, DiscountPercent: 5, IGSTRate: 18},
		{Quantity: 10, UnitPrice: 99.5, CessRate: 1},
	})
	got := tax.ComputeDocumentTotals(lines)

	assert.InDelta(t, 2695, got.Subtotal, eps)
	assert.InDelta(t, 60, got.TotalDiscount, eps)
	assert.InDelta(t, 2635, got.TotalTaxableValue, eps)
	assert.InDelta(t, got.TotalTaxableValue+got.TotalTax, got.GrandTotal, eps)
}

func TestComputeDocumentTotals_OrderIndependent(t *testing.T) {
	inputs := []tax.LineItemInput{
		{Quantity: 3, UnitPrice: 333.33, DiscountPercent: 7, CGSTRate: 2.5, SGSTRate: 2.5},
		{Quantity: 8, UnitPrice: 45, IGSTRate: 12},
		{Quantity: 1, UnitPrice: 9999.99, DiscountPercent: 50, IGSTRate: 28, CessRate: 3},
		{Quantity: 250, UnitPrice: 1.25, CGSTRate: 6, SGSTRate: 6},
	}
	forward := tax.ComputeLineItems(inputs)

	reversed := make([]tax.LineItemComputed, len(forward))
	for i := range forward {
		reversed[len(forward)-1-i] = forward[i]
	}

	a := tax.ComputeDocumentTotals(forward)
	b := tax.ComputeDocumentTotals(reversed)
	assert.InDelta(t, a.Subtotal, b.Subtotal, 1e-9)
	assert.InDelta(t, a.TotalTaxableValue, b.TotalTaxableValue, 1e-9)
	assert.InDelta(t, a.TotalTax, b.TotalTax, 1e-9)
	assert.InDelta(t, a.GrandTotal, b.GrandTotal, 1e-9)
}

func TestComputeDocumentTotals_Idempotent(t *testing.T) {
	lines := tax.ComputeLineItems([]tax.LineItemInput{
		{Quantity: 4, UnitPrice: 75, CGSTRate: 9, SGSTRate: 9},
	})
	first := tax.ComputeDocumentTotals(lines)
	second := tax.ComputeDocumentTotals(lines)
	require.Equal(t, first, second)
}

func TestComputeLineItem_FullDiscount(t *testing.T) {
	got := tax.ComputeLineItem(tax.LineItemInput{
		Quantity: 10, UnitPrice: 50, DiscountPercent: 100, CGSTRate: 9, SGSTRate: 9,
	})
	assert.InDelta(t, 0, got.TaxableValue, eps)
	assert.InDelta(t, 0, got.LineTotal, eps)
}

func TestRound2(t *testing.T) {
	assert.InDelta(t, 405.0, tax.Round2(405.0000001), eps)
	assert.InDelta(t, 1.56, tax.Round2(1.555), eps)
	assert.InDelta(t, 0.0, tax.Round2(0.004), eps)
}
