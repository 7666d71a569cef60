package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbill/internal/domain"
)

func TestRenderInvoice(t *testing.T) {
	tenant := &domain.Tenant{
		ID:        uuid.New(),
		Name:      "Acme Traders",
		GSTIN:     "29ABCDE1234F1Z5",
		StateCode: "29",
		Address:   "12 MG Road, Bengaluru",
	}
	client := &domain.Client{
		ID:        uuid.New(),
		Name:      "Globex",
		GSTIN:     "27ABCDE1234F1Z5",
		StateCode: "27",
		Address:   "1 Marine Drive, Mumbai",
	}
	due := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	inv := &domain.Invoice{
		ID:            uuid.New(),
		Number:        "INV/2025-26/0007",
		Status:        domain.DocumentIssued,
		IssueDate:     time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		DueDate:       &due,
		PlaceOfSupply: "27",
		Notes:         "Payment within 30 days.",
		Lines: []domain.DocumentLine{
			{
				Position:     0,
				Description:  "Consulting services",
				HSNSACCode:   "9983",
				Unit:         "hrs",
				Quantity:     10,
				UnitPrice:    2500,
				IGSTRate:     18,
				TaxableValue: 25000,
				IGSTAmount:   4500,
				LineTotal:    29500,
			},
		},
	}
	inv.TotalTaxableValue = 25000
	inv.TotalIGST = 4500
	inv.TotalTax = 4500
	inv.GrandTotal = 29500

	out, err := NewRenderer().RenderInvoice(tenant, client, inv)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Greater(t, len(out), 1000)
}

func TestPlaceOfSupplyLabel(t *testing.T) {
	assert.Equal(t, "Karnataka (29)", placeOfSupplyLabel("29"))
	assert.Equal(t, "Maharashtra (27)", placeOfSupplyLabel("27"))
	assert.Equal(t, "99", placeOfSupplyLabel("99"))
}
