package tax

// RedistributeJurisdictionTax rewrites the CGST/SGST/IGST split of every line
// according to the supplier and customer state codes. Same state: the combined
// rate moves to an equal CGST+SGST split. Different states: the combined rate
// moves entirely to IGST. If either code is empty or unknown the lines are
// returned unchanged, so taxes are never silently zeroed while the
// jurisdiction is still unresolved (e.g. GSTIN not yet entered).
//
// The rule applies to all lines or none. CESS is never touched. Amounts are
// not recomputed here; callers run ComputeLineItem afterward.
func RedistributeJurisdictionTax(items []LineItemInput, supplierStateCode, customerStateCode string) []LineItemInput {
	out := make([]LineItemInput, len(items))
	copy(out, items)

	if !KnownStateCode(supplierStateCode) || !KnownStateCode(customerStateCode) {
		return out
	}

	sameState := supplierStateCode == customerStateCode
	for i := range out {
		totalRate := out[i].CGSTRate + out[i].SGSTRate + out[i].IGSTRate
		if sameState {
			out[i].CGSTRate = totalRate / 2
			out[i].SGSTRate = totalRate / 2
			out[i].IGSTRate = 0
		} else {
			out[i].CGSTRate = 0
			out[i].SGSTRate = 0
			out[i].IGSTRate = totalRate
		}
	}
	return out
}
