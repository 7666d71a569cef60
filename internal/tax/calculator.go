// Package tax implements GST line-item computation shared by every document
// type (tax invoice, credit note, debit note). All functions are pure: they
// clamp bad inputs to zero instead of failing, and amounts keep full float64
// precision internally. Rounding to currency precision happens only at
// presentation (export, PDF).
package tax

import "math"

// LineItemInput holds the user-editable fields of a document line.
// Rates are percentages; CessRate is always present and may be zero.
type LineItemInput struct {
	Quantity        float64 `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	DiscountPercent float64 `json:"discount_percent"`
	CGSTRate        float64 `json:"cgst_rate"`
	SGSTRate        float64 `json:"sgst_rate"`
	IGSTRate        float64 `json:"igst_rate"`
	CessRate        float64 `json:"cess_rate"`
}

// LineItemComputed is a line with all derived amounts filled in. The embedded
// input fields are the clamped values the amounts were derived from, so a
// computed line is never inconsistent with its inputs.
type LineItemComputed struct {
	LineItemInput

	GrossAmount    float64 `json:"gross_amount"`
	DiscountAmount float64 `json:"discount_amount"`
	TaxableValue   float64 `json:"taxable_value"`
	CGSTAmount     float64 `json:"cgst_amount"`
	SGSTAmount     float64 `json:"sgst_amount"`
	IGSTAmount     float64 `json:"igst_amount"`
	CessAmount     float64 `json:"cess_amount"`
	LineTotal      float64 `json:"line_total"`
}

// DocumentTotals aggregates computed lines into document-level totals.
// It holds no state of its own and is recomputed from scratch on every change.
type DocumentTotals struct {
	Subtotal          float64 `json:"subtotal"`
	TotalDiscount     float64 `json:"total_discount"`
	TotalTaxableValue float64 `json:"total_taxable_value"`
	TotalCGST         float64 `json:"total_cgst"`
	TotalSGST         float64 `json:"total_sgst"`
	TotalIGST         float64 `json:"total_igst"`
	TotalCESS         float64 `json:"total_cess"`
	TotalTax          float64 `json:"total_tax"`
	GrandTotal        float64 `json:"grand_total"`
}

// clamp maps NaN, infinities, and negative values to 0 so that no bad input
// can propagate into currency amounts.
func clamp(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// ComputeLineItem derives taxable value, per-tax amounts, and the line total
// from a line's input fields. It never fails: every input is clamped to a
// non-negative finite value first.
func ComputeLineItem(in LineItemInput) LineItemComputed {
	in.Quantity = clamp(in.Quantity)
	in.UnitPrice = clamp(in.UnitPrice)
	in.DiscountPercent = clamp(in.DiscountPercent)
	in.CGSTRate = clamp(in.CGSTRate)
	in.SGSTRate = clamp(in.SGSTRate)
	in.IGSTRate = clamp(in.IGSTRate)
	in.CessRate = clamp(in.CessRate)

	gross := in.Quantity * in.UnitPrice
	discount := gross * in.DiscountPercent / 100
	taxable := math.Max(0, gross-discount)

	out := LineItemComputed{
		LineItemInput:  in,
		GrossAmount:    gross,
		DiscountAmount: discount,
		TaxableValue:   taxable,
		CGSTAmount:     math.Max(0, taxable*in.CGSTRate/100),
		SGSTAmount:     math.Max(0, taxable*in.SGSTRate/100),
		IGSTAmount:     math.Max(0, taxable*in.IGSTRate/100),
		CessAmount:     math.Max(0, taxable*in.CessRate/100),
	}
	out.LineTotal = math.Max(0, taxable+out.CGSTAmount+out.SGSTAmount+out.IGSTAmount+out.CessAmount)
	return out
}

// ComputeLineItems computes every line of a document in order.
func ComputeLineItems(items []LineItemInput) []LineItemComputed {
	computed := make([]LineItemComputed, len(items))
	for i := range items {
		computed[i] = ComputeLineItem(items[i])
	}
	return computed
}

// ComputeDocumentTotals sums per-line derived amounts into document totals.
// An empty slice yields all-zero totals. The result depends only on the input.
func ComputeDocumentTotals(items []LineItemComputed) DocumentTotals {
	var t DocumentTotals
	for i := range items {
		item := &items[i]
		t.Subtotal += item.GrossAmount
		t.TotalDiscount += item.DiscountAmount
		t.TotalTaxableValue += item.TaxableValue
		t.TotalCGST += item.CGSTAmount
		t.TotalSGST += item.SGSTAmount
		t.TotalIGST += item.IGSTAmount
		t.TotalCESS += item.CessAmount
	}
	t.TotalTax = t.TotalCGST + t.TotalSGST + t.TotalIGST + t.TotalCESS
	t.GrandTotal = t.TotalTaxableValue + t.TotalTax
	return t
}

// Round2 rounds to currency precision (2 decimal places). Presentation only;
// internal computation never rounds.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
