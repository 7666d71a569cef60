package domain

import "time"

// ReportFilters narrows report queries by date range and pagination.
type ReportFilters struct {
	From   *time.Time
	To     *time.Time
	Offset int
	Limit  int
}

// TDSSummaryRow aggregates tax deducted at source per vendor and section.
type TDSSummaryRow struct {
	VendorID      string  `db:"vendor_id" json:"vendor_id"`
	VendorName    string  `db:"vendor_name" json:"vendor_name"`
	VendorPAN     string  `db:"vendor_pan" json:"vendor_pan"`
	TDSSection    string  `db:"tds_section" json:"tds_section"`
	BillCount     int     `db:"bill_count" json:"bill_count"`
	TaxableAmount float64 `db:"taxable_amount" json:"taxable_amount"`
	TDSDeducted   float64 `db:"tds_deducted" json:"tds_deducted"`
	NetPaid       float64 `db:"net_paid" json:"net_paid"`
}

// InvoiceRegisterRow is one row of the invoice register export.
type InvoiceRegisterRow struct {
	Number        string     `db:"number" json:"number"`
	Status        string     `db:"status" json:"status"`
	IssueDate     time.Time  `db:"issue_date" json:"issue_date"`
	DueDate       *time.Time `db:"due_date" json:"due_date"`
	ClientName    string     `db:"client_name" json:"client_name"`
	ClientGSTIN   string     `db:"client_gstin" json:"client_gstin"`
	PlaceOfSupply string     `db:"place_of_supply" json:"place_of_supply"`
	TaxableValue  float64    `db:"taxable_value" json:"taxable_value"`
	CGST          float64    `db:"cgst" json:"cgst"`
	SGST          float64    `db:"sgst" json:"sgst"`
	IGST          float64    `db:"igst" json:"igst"`
	CESS          float64    `db:"cess" json:"cess"`
	GrandTotal    float64    `db:"grand_total" json:"grand_total"`
	AmountPaid    float64    `db:"amount_paid" json:"amount_paid"`
}

// GSTSummaryRow aggregates output tax liability for a period, split by
// document type so credit notes can offset invoices.
type GSTSummaryRow struct {
	DocumentType  string  `db:"document_type" json:"document_type"`
	DocumentCount int     `db:"document_count" json:"document_count"`
	TaxableValue  float64 `db:"taxable_value" json:"taxable_value"`
	CGST          float64 `db:"cgst" json:"cgst"`
	SGST          float64 `db:"sgst" json:"sgst"`
	IGST          float64 `db:"igst" json:"igst"`
	CESS          float64 `db:"cess" json:"cess"`
	TotalTax      float64 `db:"total_tax" json:"total_tax"`
}
