package service

import (
	"gstbill/internal/domain"
	"gstbill/internal/tax"
)

// LineInput is the DTO for one document line. Callers supply only the
// editable fields; every derived amount is recomputed server-side.
type LineInput struct {
	Description     string  `json:"description" binding:"required"`
	HSNSACCode      string  `json:"hsn_sac_code"`
	Unit            string  `json:"unit"`
	Quantity        float64 `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	DiscountPercent float64 `json:"discount_percent"`
	CGSTRate        float64 `json:"cgst_rate"`
	SGSTRate        float64 `json:"sgst_rate"`
	IGSTRate        float64 `json:"igst_rate"`
	CessRate        float64 `json:"cess_rate"`
}

// computeLines runs the full pipeline for a document write: jurisdiction
// redistribution over all lines, then per-line computation, then aggregation.
// The order is fixed; redistribution always happens before any amount is
// derived.
func computeLines(lines []LineInput, supplierStateCode, customerStateCode string) ([]domain.DocumentLine, tax.DocumentTotals) {
	inputs := make([]tax.LineItemInput, len(lines))
	for i, l := range lines {
		inputs[i] = tax.LineItemInput{
			Quantity:        l.Quantity,
			UnitPrice:       l.UnitPrice,
			DiscountPercent: l.DiscountPercent,
			CGSTRate:        l.CGSTRate,
			SGSTRate:        l.SGSTRate,
			IGSTRate:        l.IGSTRate,
			CessRate:        l.CessRate,
		}
	}

	inputs = tax.RedistributeJurisdictionTax(inputs, supplierStateCode, customerStateCode)
	computed := tax.ComputeLineItems(inputs)
	totals := tax.ComputeDocumentTotals(computed)

	out := make([]domain.DocumentLine, len(lines))
	for i, l := range lines {
		out[i] = domain.DocumentLine{
			Position:    i,
			Description: l.Description,
			HSNSACCode:  l.HSNSACCode,
			Unit:        l.Unit,
		}
		out[i].ApplyComputed(computed[i])
	}
	return out, totals
}
