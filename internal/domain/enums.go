package domain

// UserRole controls what a user may do within a tenant.
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleAccountant UserRole = "accountant"
	RoleViewer     UserRole = "viewer"
)

// DocumentStatus is the lifecycle state of an invoice or note.
type DocumentStatus string

const (
	DocumentDraft     DocumentStatus = "draft"
	DocumentIssued    DocumentStatus = "issued"
	DocumentCancelled DocumentStatus = "cancelled"
)

// NoteKind distinguishes credit notes from debit notes.
type NoteKind string

const (
	NoteCredit NoteKind = "credit"
	NoteDebit  NoteKind = "debit"
)

// BillStatus tracks payment state of a vendor bill.
type BillStatus string

const (
	BillUnpaid        BillStatus = "unpaid"
	BillPartiallyPaid BillStatus = "partially_paid"
	BillPaid          BillStatus = "paid"
	BillCancelled     BillStatus = "cancelled"
)

// DocumentKind names the tables a sequence or attachment can belong to.
type DocumentKind string

const (
	KindInvoice    DocumentKind = "invoice"
	KindCreditNote DocumentKind = "credit_note"
	KindDebitNote  DocumentKind = "debit_note"
	KindBill       DocumentKind = "bill"
)
