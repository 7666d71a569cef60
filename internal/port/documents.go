package port

import (
	"context"

	"github.com/google/uuid"

	"gstbill/internal/domain"
)

// InvoiceRepository persists invoices with their lines. Writes replace the
// full set of lines so stored derived fields always come from one recompute.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	GetByID(ctx context.Context, tenantID, invoiceID uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, tenantID uuid.UUID, status domain.DocumentStatus, offset, limit int) ([]domain.Invoice, int, error)
	Update(ctx context.Context, inv *domain.Invoice) error
	UpdateStatus(ctx context.Context, tenantID, invoiceID uuid.UUID, status domain.DocumentStatus) error
}

// CreditNoteRepository persists credit and debit notes with their lines.
type CreditNoteRepository interface {
	Create(ctx context.Context, note *domain.CreditNote) error
	GetByID(ctx context.Context, tenantID, noteID uuid.UUID) (*domain.CreditNote, error)
	List(ctx context.Context, tenantID uuid.UUID, kind domain.NoteKind, offset, limit int) ([]domain.CreditNote, int, error)
	Update(ctx context.Context, note *domain.CreditNote) error
	UpdateStatus(ctx context.Context, tenantID, noteID uuid.UUID, status domain.DocumentStatus) error
}

// BillRepository persists vendor purchase bills with their lines.
type BillRepository interface {
	Create(ctx context.Context, bill *domain.Bill) error
	GetByID(ctx context.Context, tenantID, billID uuid.UUID) (*domain.Bill, error)
	List(ctx context.Context, tenantID uuid.UUID, status domain.BillStatus, offset, limit int) ([]domain.Bill, int, error)
	Update(ctx context.Context, bill *domain.Bill) error
	UpdateStatus(ctx context.Context, tenantID, billID uuid.UUID, status domain.BillStatus) error
}

// PaymentRepository persists payments against invoices and bills.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	ListByInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) ([]domain.Payment, error)
	ListByBill(ctx context.Context, tenantID, billID uuid.UUID) ([]domain.Payment, error)
	SumByInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) (float64, error)
	SumByBill(ctx context.Context, tenantID, billID uuid.UUID) (float64, error)
}

// AttachmentRepository persists metadata for uploaded supporting documents.
type AttachmentRepository interface {
	Create(ctx context.Context, att *domain.Attachment) error
	GetByID(ctx context.Context, tenantID, attachmentID uuid.UUID) (*domain.Attachment, error)
	ListByDocument(ctx context.Context, tenantID, documentID uuid.UUID) ([]domain.Attachment, error)
	Delete(ctx context.Context, tenantID, attachmentID uuid.UUID) error
}

// SequenceRepository issues document numbers. Numbering is owned by the
// backend; callers never invent identifiers.
type SequenceRepository interface {
	Next(ctx context.Context, tenantID uuid.UUID, kind domain.DocumentKind, fiscalYear string) (int64, error)
}

// ReportRepository runs read-only aggregate queries for reporting views.
type ReportRepository interface {
	TDSSummary(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) ([]domain.TDSSummaryRow, error)
	InvoiceRegister(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) ([]domain.InvoiceRegisterRow, int, error)
	GSTSummary(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) ([]domain.GSTSummaryRow, error)
}
