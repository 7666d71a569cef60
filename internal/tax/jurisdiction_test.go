package tax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbill/internal/tax"
)

const (
	karnataka   = "29"
	maharashtra = "27"
)

func TestRedistribute_SameState(t *testing.T) {
	items := []tax.LineItemInput{
		{Quantity: 1, UnitPrice: 100, IGSTRate: 18},
	}
	got := tax.RedistributeJurisdictionTax(items, karnataka, karnataka)

	require.Len(t, got, 1)
	assert.InDelta(t, 9, got[0].CGSTRate, eps)
	assert.InDelta(t, 9, got[0].SGSTRate, eps)
	assert.InDelta(t, 0, got[0].IGSTRate, eps)
}

func TestRedistribute_CrossState(t *testing.T) {
	items := []tax.LineItemInput{
		{Quantity: 1, UnitPrice: 100, CGSTRate: 9, SGSTRate: 9},
	}
	got := tax.RedistributeJurisdictionTax(items, karnataka, maharashtra)

	require.Len(t, got, 1)
	assert.InDelta(t, 0, got[0].CGSTRate, eps)
	assert.InDelta(t, 0, got[0].SGSTRate, eps)
	assert.InDelta(t, 18, got[0].IGSTRate, eps)
}

func TestRedistribute_UnknownStateLeavesRatesAlone(t *testing.T) {
	items := []tax.LineItemInput{
		{Quantity: 1, UnitPrice: 100, CGSTRate: 9, SGSTRate: 9},
		{Quantity: 2, UnitPrice: 50, IGSTRate: 12},
	}

	for _, tc := range []struct {
		name               string
		supplier, customer string
	}{
		{"empty_customer", karnataka, ""},
		{"empty_supplier", "", maharashtra},
		{"both_empty", "", ""},
		{"invalid_customer", karnataka, "99"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := tax.RedistributeJurisdictionTax(items, tc.supplier, tc.customer)
			require.Len(t, got, 2)
			assert.Equal(t, items[0], got[0])
			assert.Equal(t, items[1], got[1])
		})
	}
}

func TestRedistribute_AppliesToEveryLine(t *testing.T) {
	items := []tax.LineItemInput{
		{IGSTRate: 18},
		{IGSTRate: 12},
		{CGSTRate: 2.5, SGSTRate: 2.5},
		{IGSTRate: 28, CessRate: 12},
	}
	got := tax.RedistributeJurisdictionTax(items, karnataka, karnataka)

	require.Len(t, got, 4)
	for i := range got {
		totalBefore := items[i].CGSTRate + items[i].SGSTRate + items[i].IGSTRate
		assert.InDelta(t, totalBefore/2, got[i].CGSTRate, eps, "line %d", i)
		assert.InDelta(t, totalBefore/2, got[i].SGSTRate, eps, "line %d", i)
		assert.InDelta(t, 0, got[i].IGSTRate, eps, "line %d", i)
	}
}

func TestRedistribute_CessUntouched(t *testing.T) {
	items := []tax.LineItemInput{{IGSTRate: 28, CessRate: 12}}

	same := tax.RedistributeJurisdictionTax(items, karnataka, karnataka)
	assert.InDelta(t, 12, same[0].CessRate, eps)

	cross := tax.RedistributeJurisdictionTax(items, karnataka, maharashtra)
	assert.InDelta(t, 12, cross[0].CessRate, eps)
}

func TestRedistribute_DoesNotMutateInput(t *testing.T) {
	items := []tax.LineItemInput{{IGSTRate: 18}}
	_ = tax.RedistributeJurisdictionTax(items, karnataka, karnataka)
	assert.InDelta(t, 18, items[0].IGSTRate, eps)
}

func TestRedistribute_ThenRecompute(t *testing.T) {
	// Full pipeline order: redistribute, recompute lines, aggregate.
	items := []tax.LineItemInput{
		{Quantity: 5, UnitPrice: 1000, DiscountPercent: 10, IGSTRate: 18},
	}
	redistributed := tax.RedistributeJurisdictionTax(items, karnataka, karnataka)
	lines := tax.ComputeLineItems(redistributed)
	totals := tax.ComputeDocumentTotals(lines)

	assert.InDelta(t, 4500, totals.TotalTaxableValue, eps)
	assert.InDelta(t, 405, totals.TotalCGST, eps)
	assert.InDelta(t, 405, totals.TotalSGST, eps)
	assert.InDelta(t, 0, totals.TotalIGST, eps)
	assert.InDelta(t, 5310, totals.GrandTotal, eps)
}

func TestStateCodeFromGSTIN(t *testing.T) {
	assert.Equal(t, "29", tax.StateCodeFromGSTIN("29ABCDE1234F1Z5"))
	assert.Equal(t, "27", tax.StateCodeFromGSTIN("27AAACB2230M1ZP"))
	assert.Equal(t, "", tax.StateCodeFromGSTIN("9"))
	assert.Equal(t, "", tax.StateCodeFromGSTIN(""))
	assert.Equal(t, "", tax.StateCodeFromGSTIN("99ABCDE1234F1Z5"))
}

func TestStateName(t *testing.T) {
	assert.Equal(t, "Karnataka", tax.StateName("29"))
	assert.Equal(t, "Maharashtra", tax.StateName("27"))
	assert.Equal(t, "", tax.StateName("00"))
	assert.True(t, tax.KnownStateCode("07"))
	assert.False(t, tax.KnownStateCode("7"))
}
