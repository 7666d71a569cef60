package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"gstbill/internal/domain"
)

// InvoiceRegisterXLSX renders the invoice register as an Excel workbook with
// a totals row at the bottom.
func InvoiceRegisterXLSX(rows []domain.InvoiceRegisterRow) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := "Invoice Register"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	for i, col := range registerColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return nil, err
		}
	}

	var taxable, cgst, sgst, igst, cess, grand, paid float64
	for i := range rows {
		r := &rows[i]
		values := []interface{}{
			r.Number,
			r.Status,
			r.IssueDate.Format("2006-01-02"),
			formatDate(r.DueDate),
			r.ClientName,
			r.ClientGSTIN,
			r.PlaceOfSupply,
			r.TaxableValue,
			r.CGST,
			r.SGST,
			r.IGST,
			r.CESS,
			r.GrandTotal,
			r.AmountPaid,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
		taxable += r.TaxableValue
		cgst += r.CGST
		sgst += r.SGST
		igst += r.IGST
		cess += r.CESS
		grand += r.GrandTotal
		paid += r.AmountPaid
	}

	totalRow := len(rows) + 2
	totals := map[int]interface{}{
		1:  "Total",
		8:  taxable,
		9:  cgst,
		10: sgst,
		11: igst,
		12: cess,
		13: grand,
		14: paid,
	}
	for col, v := range totals {
		cell, _ := excelize.CoordinatesToCellName(col, totalRow)
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("export.InvoiceRegisterXLSX: %w", err)
	}
	return buf.Bytes(), nil
}

// TDSSummaryXLSX renders the per-vendor TDS summary as an Excel workbook.
func TDSSummaryXLSX(rows []domain.TDSSummaryRow) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := "TDS Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	header := []string{
		"Vendor Name",
		"Vendor PAN",
		"TDS Section",
		"Bill Count",
		"Taxable Amount",
		"TDS Deducted",
		"Net Paid",
	}
	for i, col := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return nil, err
		}
	}

	for i := range rows {
		r := &rows[i]
		values := []interface{}{
			r.VendorName,
			r.VendorPAN,
			r.TDSSection,
			r.BillCount,
			r.TaxableAmount,
			r.TDSDeducted,
			r.NetPaid,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("export.TDSSummaryXLSX: %w", err)
	}
	return buf.Bytes(), nil
}
