package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

// NoteInput is the DTO for creating or updating a credit or debit note.
type NoteInput struct {
	InvoiceID uuid.UUID   `json:"invoice_id" binding:"required"`
	Kind      string      `json:"kind" binding:"required,oneof=credit debit"`
	IssueDate time.Time   `json:"issue_date" binding:"required"`
	Reason    string      `json:"reason"`
	Lines     []LineInput `json:"lines" binding:"required"`
}

// CreditNoteService manages credit and debit notes against issued invoices.
type CreditNoteService interface {
	Create(ctx context.Context, tenantID, userID uuid.UUID, input NoteInput) (*domain.CreditNote, error)
	GetByID(ctx context.Context, tenantID, noteID uuid.UUID) (*domain.CreditNote, error)
	List(ctx context.Context, tenantID uuid.UUID, kind domain.NoteKind, offset, limit int) ([]domain.CreditNote, int, error)
	Update(ctx context.Context, tenantID, noteID uuid.UUID, input NoteInput) (*domain.CreditNote, error)
	Issue(ctx context.Context, tenantID, noteID uuid.UUID) (*domain.CreditNote, error)
	Cancel(ctx context.Context, tenantID, noteID uuid.UUID) error
}

type creditNoteService struct {
	noteRepo    port.CreditNoteRepository
	invoiceRepo port.InvoiceRepository
	clientRepo  port.ClientRepository
	tenantRepo  port.TenantRepository
	seqRepo     port.SequenceRepository
}

// NewCreditNoteService creates a new CreditNoteService implementation.
func NewCreditNoteService(
	noteRepo port.CreditNoteRepository,
	invoiceRepo port.InvoiceRepository,
	clientRepo port.ClientRepository,
	tenantRepo port.TenantRepository,
	seqRepo port.SequenceRepository,
) CreditNoteService {
	return &creditNoteService{
		noteRepo:    noteRepo,
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		tenantRepo:  tenantRepo,
		seqRepo:     seqRepo,
	}
}

// resolveInvoice loads the referenced invoice and verifies a note may be
// raised against it. Notes only attach to issued invoices.
func (s *creditNoteService) resolveInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, domain.ErrInvoiceNotFound
	}
	if inv.Status != domain.DocumentIssued {
		return nil, domain.ErrDocumentNotIssued
	}
	return inv, nil
}

func (s *creditNoteService) Create(ctx context.Context, tenantID, userID uuid.UUID, input NoteInput) (*domain.CreditNote, error) {
	if err := validateLines(input.Lines); err != nil {
		return nil, err
	}

	inv, err := s.resolveInvoice(ctx, tenantID, input.InvoiceID)
	if err != nil {
		return nil, err
	}
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("creditNoteService.Create: %w", err)
	}
	client, err := s.clientRepo.GetByID(ctx, tenantID, inv.ClientID)
	if err != nil {
		return nil, fmt.Errorf("creditNoteService.Create: %w", err)
	}

	lines, totals := computeLines(input.Lines, tenant.StateCode, client.StateCode)

	note := &domain.CreditNote{
		ID:        uuid.New(),
		TenantID:  tenantID,
		ClientID:  client.ID,
		InvoiceID: inv.ID,
		Kind:      domain.NoteKind(input.Kind),
		Status:    domain.DocumentDraft,
		IssueDate: input.IssueDate,
		Reason:    input.Reason,
		Lines:     lines,
		CreatedBy: userID,
	}
	note.DocumentTotals.Apply(totals)

	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("creditNoteService.Create: %w", err)
	}
	return note, nil
}

func (s *creditNoteService) GetByID(ctx context.Context, tenantID, noteID uuid.UUID) (*domain.CreditNote, error) {
	return s.noteRepo.GetByID(ctx, tenantID, noteID)
}

func (s *creditNoteService) List(ctx context.Context, tenantID uuid.UUID, kind domain.NoteKind, offset, limit int) ([]domain.CreditNote, int, error) {
	return s.noteRepo.List(ctx, tenantID, kind, offset, limit)
}

func (s *creditNoteService) Update(ctx context.Context, tenantID, noteID uuid.UUID, input NoteInput) (*domain.CreditNote, error) {
	if err := validateLines(input.Lines); err != nil {
		return nil, err
	}

	note, err := s.noteRepo.GetByID(ctx, tenantID, noteID)
	if err != nil {
		return nil, err
	}
	if note.Status != domain.DocumentDraft {
		return nil, domain.ErrDocumentNotDraft
	}

	inv, err := s.resolveInvoice(ctx, tenantID, input.InvoiceID)
	if err != nil {
		return nil, err
	}
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("creditNoteService.Update: %w", err)
	}
	client, err := s.clientRepo.GetByID(ctx, tenantID, inv.ClientID)
	if err != nil {
		return nil, fmt.Errorf("creditNoteService.Update: %w", err)
	}

	lines, totals := computeLines(input.Lines, tenant.StateCode, client.StateCode)

	note.ClientID = client.ID
	note.InvoiceID = inv.ID
	note.Kind = domain.NoteKind(input.Kind)
	note.IssueDate = input.IssueDate
	note.Reason = input.Reason
	note.Lines = lines
	note.DocumentTotals.Apply(totals)

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("creditNoteService.Update: %w", err)
	}
	return note, nil
}

func (s *creditNoteService) Issue(ctx context.Context, tenantID, noteID uuid.UUID) (*domain.CreditNote, error) {
	note, err := s.noteRepo.GetByID(ctx, tenantID, noteID)
	if err != nil {
		return nil, err
	}
	if note.Status != domain.DocumentDraft {
		return nil, domain.ErrDocumentNotDraft
	}

	kind := domain.KindCreditNote
	prefix := "CN"
	if note.Kind == domain.NoteDebit {
		kind = domain.KindDebitNote
		prefix = "DN"
	}

	fy := fiscalYear(note.IssueDate)
	seq, err := s.seqRepo.Next(ctx, tenantID, kind, fy)
	if err != nil {
		return nil, fmt.Errorf("creditNoteService.Issue: %w", err)
	}

	note.Number = fmt.Sprintf("%s/%s/%04d", prefix, fy, seq)
	note.Status = domain.DocumentIssued

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("creditNoteService.Issue: %w", err)
	}
	return note, nil
}

func (s *creditNoteService) Cancel(ctx context.Context, tenantID, noteID uuid.UUID) error {
	note, err := s.noteRepo.GetByID(ctx, tenantID, noteID)
	if err != nil {
		return err
	}
	switch note.Status {
	case domain.DocumentCancelled:
		return domain.ErrDocumentCancelled
	case domain.DocumentDraft:
		return domain.ErrDocumentNotIssued
	}
	return s.noteRepo.UpdateStatus(ctx, tenantID, noteID, domain.DocumentCancelled)
}
