package domain

import (
	"time"

	"github.com/google/uuid"

	"gstbill/internal/tax"
)

// Tenant represents an isolated organizational tenant (one business entity
// with its own GSTIN and document numbering).
type Tenant struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	GSTIN     string    `db:"gstin" json:"gstin"`
	StateCode string    `db:"state_code" json:"state_code"`
	Address   string    `db:"address" json:"address"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// User represents an authenticated user belonging to a tenant.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	TenantID     uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Client is a customer the tenant raises tax invoices against.
// StateCode is derived from the GSTIN prefix when a GSTIN is set.
type Client struct {
	ID        uuid.UUID `db:"id" json:"id"`
	TenantID  uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Name      string    `db:"name" json:"name"`
	GSTIN     string    `db:"gstin" json:"gstin"`
	PAN       string    `db:"pan" json:"pan"`
	StateCode string    `db:"state_code" json:"state_code"`
	Address   string    `db:"address" json:"address"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Vendor is a supplier the tenant records purchase bills from. TDSSection and
// TDSRate drive tax-deducted-at-source reporting on vendor bills.
type Vendor struct {
	ID         uuid.UUID `db:"id" json:"id"`
	TenantID   uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Name       string    `db:"name" json:"name"`
	GSTIN      string    `db:"gstin" json:"gstin"`
	PAN        string    `db:"pan" json:"pan"`
	StateCode  string    `db:"state_code" json:"state_code"`
	Address    string    `db:"address" json:"address"`
	Email      string    `db:"email" json:"email"`
	Phone      string    `db:"phone" json:"phone"`
	TDSSection string    `db:"tds_section" json:"tds_section"`
	TDSRate    float64   `db:"tds_rate" json:"tds_rate"`
	IsActive   bool      `db:"is_active" json:"is_active"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// DocumentLine is one row of a tax document. Every document type shares this
// shape; CESS is always present and may be zero. The derived columns are
// recomputed from the input columns on every write and are never accepted
// from callers.
type DocumentLine struct {
	ID          uuid.UUID `db:"id" json:"id"`
	DocumentID  uuid.UUID `db:"document_id" json:"document_id"`
	Position    int       `db:"position" json:"position"`
	Description string    `db:"description" json:"description"`
	HSNSACCode  string    `db:"hsn_sac_code" json:"hsn_sac_code"`
	Unit        string    `db:"unit" json:"unit"`

	Quantity        float64 `db:"quantity" json:"quantity"`
	UnitPrice       float64 `db:"unit_price" json:"unit_price"`
	DiscountPercent float64 `db:"discount_percent" json:"discount_percent"`
	CGSTRate        float64 `db:"cgst_rate" json:"cgst_rate"`
	SGSTRate        float64 `db:"sgst_rate" json:"sgst_rate"`
	IGSTRate        float64 `db:"igst_rate" json:"igst_rate"`
	CessRate        float64 `db:"cess_rate" json:"cess_rate"`

	TaxableValue float64 `db:"taxable_value" json:"taxable_value"`
	CGSTAmount   float64 `db:"cgst_amount" json:"cgst_amount"`
	SGSTAmount   float64 `db:"sgst_amount" json:"sgst_amount"`
	IGSTAmount   float64 `db:"igst_amount" json:"igst_amount"`
	CessAmount   float64 `db:"cess_amount" json:"cess_amount"`
	LineTotal    float64 `db:"line_total" json:"line_total"`
}

// Input returns the user-editable fields of the line as calculator input.
func (l *DocumentLine) Input() tax.LineItemInput {
	return tax.LineItemInput{
		Quantity:        l.Quantity,
		UnitPrice:       l.UnitPrice,
		DiscountPercent: l.DiscountPercent,
		CGSTRate:        l.CGSTRate,
		SGSTRate:        l.SGSTRate,
		IGSTRate:        l.IGSTRate,
		CessRate:        l.CessRate,
	}
}

// ApplyComputed writes the calculator result back onto the line, clamped
// inputs included, so the stored row always matches what was computed.
func (l *DocumentLine) ApplyComputed(c tax.LineItemComputed) {
	l.Quantity = c.Quantity
	l.UnitPrice = c.UnitPrice
	l.DiscountPercent = c.DiscountPercent
	l.CGSTRate = c.CGSTRate
	l.SGSTRate = c.SGSTRate
	l.IGSTRate = c.IGSTRate
	l.CessRate = c.CessRate
	l.TaxableValue = c.TaxableValue
	l.CGSTAmount = c.CGSTAmount
	l.SGSTAmount = c.SGSTAmount
	l.IGSTAmount = c.IGSTAmount
	l.CessAmount = c.CessAmount
	l.LineTotal = c.LineTotal
}

// DocumentTotals is the stored aggregate block shared by invoices, notes,
// and bills. It is overwritten wholesale from the calculator output.
type DocumentTotals struct {
	Subtotal          float64 `db:"subtotal" json:"subtotal"`
	TotalDiscount     float64 `db:"total_discount" json:"total_discount"`
	TotalTaxableValue float64 `db:"total_taxable_value" json:"total_taxable_value"`
	TotalCGST         float64 `db:"total_cgst" json:"total_cgst"`
	TotalSGST         float64 `db:"total_sgst" json:"total_sgst"`
	TotalIGST         float64 `db:"total_igst" json:"total_igst"`
	TotalCESS         float64 `db:"total_cess" json:"total_cess"`
	TotalTax          float64 `db:"total_tax" json:"total_tax"`
	GrandTotal        float64 `db:"grand_total" json:"grand_total"`
}

// Apply overwrites the stored totals with freshly computed ones.
func (t *DocumentTotals) Apply(c tax.DocumentTotals) {
	t.Subtotal = c.Subtotal
	t.TotalDiscount = c.TotalDiscount
	t.TotalTaxableValue = c.TotalTaxableValue
	t.TotalCGST = c.TotalCGST
	t.TotalSGST = c.TotalSGST
	t.TotalIGST = c.TotalIGST
	t.TotalCESS = c.TotalCESS
	t.TotalTax = c.TotalTax
	t.GrandTotal = c.GrandTotal
}

// Invoice is a tax invoice raised against a client.
type Invoice struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	TenantID      uuid.UUID      `db:"tenant_id" json:"tenant_id"`
	ClientID      uuid.UUID      `db:"client_id" json:"client_id"`
	Number        string         `db:"number" json:"number"`
	Status        DocumentStatus `db:"status" json:"status"`
	IssueDate     time.Time      `db:"issue_date" json:"issue_date"`
	DueDate       *time.Time     `db:"due_date" json:"due_date"`
	PlaceOfSupply string         `db:"place_of_supply" json:"place_of_supply"`
	Notes         string         `db:"notes" json:"notes"`

	DocumentTotals

	Lines []DocumentLine `db:"-" json:"lines"`

	CreatedBy uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CreditNote adjusts a previously issued invoice. Kind distinguishes credit
// (downward) from debit (upward); both carry the invoice line shape.
type CreditNote struct {
	ID        uuid.UUID      `db:"id" json:"id"`
	TenantID  uuid.UUID      `db:"tenant_id" json:"tenant_id"`
	ClientID  uuid.UUID      `db:"client_id" json:"client_id"`
	InvoiceID uuid.UUID      `db:"invoice_id" json:"invoice_id"`
	Kind      NoteKind       `db:"kind" json:"kind"`
	Number    string         `db:"number" json:"number"`
	Status    DocumentStatus `db:"status" json:"status"`
	IssueDate time.Time      `db:"issue_date" json:"issue_date"`
	Reason    string         `db:"reason" json:"reason"`

	DocumentTotals

	Lines []DocumentLine `db:"-" json:"lines"`

	CreatedBy uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Bill is a purchase bill received from a vendor. TDSAmount is deducted at
// source from the taxable value; NetPayable is what the tenant actually pays.
type Bill struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	TenantID   uuid.UUID  `db:"tenant_id" json:"tenant_id"`
	VendorID   uuid.UUID  `db:"vendor_id" json:"vendor_id"`
	Number     string     `db:"number" json:"number"`
	BillNumber string     `db:"bill_number" json:"bill_number"`
	Status     BillStatus `db:"status" json:"status"`
	BillDate   time.Time  `db:"bill_date" json:"bill_date"`
	DueDate    *time.Time `db:"due_date" json:"due_date"`
	Notes      string     `db:"notes" json:"notes"`

	DocumentTotals
	TDSRate    float64 `db:"tds_rate" json:"tds_rate"`
	TDSAmount  float64 `db:"tds_amount" json:"tds_amount"`
	NetPayable float64 `db:"net_payable" json:"net_payable"`

	Lines []DocumentLine `db:"-" json:"lines"`

	CreatedBy uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Payment records money received against an invoice or paid against a bill.
type Payment struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	TenantID  uuid.UUID  `db:"tenant_id" json:"tenant_id"`
	InvoiceID *uuid.UUID `db:"invoice_id" json:"invoice_id"`
	BillID    *uuid.UUID `db:"bill_id" json:"bill_id"`
	Amount    float64    `db:"amount" json:"amount"`
	Mode      string     `db:"mode" json:"mode"`
	Reference string     `db:"reference" json:"reference"`
	PaidAt    time.Time  `db:"paid_at" json:"paid_at"`
	CreatedBy uuid.UUID  `db:"created_by" json:"created_by"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

// Attachment stores metadata for a supporting document uploaded against an
// invoice or bill; the file itself lives in object storage.
type Attachment struct {
	ID           uuid.UUID `db:"id" json:"id"`
	TenantID     uuid.UUID `db:"tenant_id" json:"tenant_id"`
	DocumentID   uuid.UUID `db:"document_id" json:"document_id"`
	FileName     string    `db:"file_name" json:"file_name"`
	OriginalName string    `db:"original_name" json:"original_name"`
	ContentType  string    `db:"content_type" json:"content_type"`
	FileSize     int64     `db:"file_size" json:"file_size"`
	StorageKey   string    `db:"storage_key" json:"storage_key"`
	UploadedBy   uuid.UUID `db:"uploaded_by" json:"uploaded_by"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
