package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"gstbill/internal/domain"
)

// BOM is the UTF-8 byte order mark, prepended for Excel compatibility on
// Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

var registerColumns = []string{
	"Invoice Number",
	"Status",
	"Issue Date",
	"Due Date",
	"Client Name",
	"Client GSTIN",
	"Place of Supply",
	"Taxable Value",
	"CGST",
	"SGST",
	"IGST",
	"Cess",
	"Grand Total",
	"Amount Paid",
}

// InvoiceRegisterCSV renders the invoice register as a CSV file.
func InvoiceRegisterCSV(rows []domain.InvoiceRegisterRow) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(registerColumns); err != nil {
		return nil, err
	}
	for i := range rows {
		if err := w.Write(registerRow(&rows[i])); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func registerRow(r *domain.InvoiceRegisterRow) []string {
	return []string{
		r.Number,
		r.Status,
		r.IssueDate.Format("2006-01-02"),
		formatDate(r.DueDate),
		r.ClientName,
		r.ClientGSTIN,
		r.PlaceOfSupply,
		formatMoney(r.TaxableValue),
		formatMoney(r.CGST),
		formatMoney(r.SGST),
		formatMoney(r.IGST),
		formatMoney(r.CESS),
		formatMoney(r.GrandTotal),
		formatMoney(r.AmountPaid),
	}
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// BuildFilename returns a dated filename for a Content-Disposition header.
func BuildFilename(prefix, ext string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, time.Now().Format("2006-01-02"), ext)
}
