package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"gstbill/internal/domain"
	"gstbill/internal/port"
	"gstbill/internal/tax"
)

// Renderer produces tax invoice PDFs.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() port.InvoiceRenderer {
	return &Renderer{}
}

// RenderInvoice builds the printable tax invoice. Amounts are the stored,
// already-computed values; nothing is recalculated here.
func (r *Renderer) RenderInvoice(tenant *domain.Tenant, client *domain.Client, inv *domain.Invoice) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "TAX INVOICE", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)

	// Invoice meta
	dueDate := ""
	if inv.DueDate != nil {
		dueDate = inv.DueDate.Format("02-01-2006")
	}
	m.AddRow(22,
		col.New(6).Add(
			text.New("Invoice number: "+inv.Number, props.Text{Top: 0}),
			text.New("Date of issue: "+inv.IssueDate.Format("02-01-2006"), props.Text{Top: 4}),
			text.New("Due date: "+dueDate, props.Text{Top: 8}),
			text.New("Place of supply: "+placeOfSupplyLabel(inv.PlaceOfSupply), props.Text{Top: 12}),
		),
		col.New(6),
	)

	// Supplier and customer
	m.AddRow(40,
		col.New(6).Add(
			text.New(tenant.Name, props.Text{Style: fontstyle.Bold}),
			text.New(tenant.Address, props.Text{Top: 5}),
			text.New("GSTIN: "+tenant.GSTIN, props.Text{Top: 18}),
		),
		col.New(6).Add(
			text.New("Bill to", props.Text{Style: fontstyle.Bold}),
			text.New(client.Name, props.Text{Top: 5}),
			text.New(client.Address, props.Text{Top: 9}),
			text.New("GSTIN: "+client.GSTIN, props.Text{Top: 22}),
		),
	)

	// Table header
	m.AddRow(10,
		text.NewCol(4, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(1, "HSN/SAC", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(1, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Rate", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Taxable", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for i := range inv.Lines {
		l := &inv.Lines[i]
		m.AddRow(12,
			text.NewCol(4, l.Description, props.Text{Size: 9}),
			text.NewCol(1, l.HSNSACCode, props.Text{Size: 9}),
			text.NewCol(1, fmt.Sprintf("%g", l.Quantity), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, FormatINR(l.UnitPrice), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, FormatINR(l.TaxableValue), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, FormatINR(l.LineTotal), props.Text{Size: 9, Align: align.Right}),
		)
	}

	// Totals block
	totals := []struct {
		label  string
		amount float64
		bold   bool
	}{
		{"Taxable value", inv.TotalTaxableValue, false},
		{"CGST", inv.TotalCGST, false},
		{"SGST", inv.TotalSGST, false},
		{"IGST", inv.TotalIGST, false},
		{"Cess", inv.TotalCESS, false},
		{"Grand total", inv.GrandTotal, true},
	}
	for _, t := range totals {
		if !t.bold && t.amount == 0 && (t.label == "IGST" || t.label == "Cess" || t.label == "CGST" || t.label == "SGST") {
			continue
		}
		style := fontstyle.Normal
		if t.bold {
			style = fontstyle.Bold
		}
		m.AddRow(8,
			col.New(7),
			text.NewCol(3, t.label, props.Text{Size: 9, Style: style}),
			text.NewCol(2, FormatINR(t.amount), props.Text{Size: 9, Style: style, Align: align.Right}),
		)
	}

	if inv.Notes != "" {
		m.AddRow(16,
			text.NewCol(12, inv.Notes, props.Text{Size: 8, Top: 4}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf.RenderInvoice: %w", err)
	}
	return doc.GetBytes(), nil
}

func placeOfSupplyLabel(stateCode string) string {
	if name := tax.StateName(stateCode); name != "" {
		return fmt.Sprintf("%s (%s)", name, stateCode)
	}
	return stateCode
}
