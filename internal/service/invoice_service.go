package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

// InvoiceInput is the DTO for creating or updating an invoice draft.
type InvoiceInput struct {
	ClientID  uuid.UUID   `json:"client_id" binding:"required"`
	IssueDate time.Time   `json:"issue_date" binding:"required"`
	DueDate   *time.Time  `json:"due_date"`
	Notes     string      `json:"notes"`
	Lines     []LineInput `json:"lines" binding:"required"`
}

// PaymentInput is the DTO for recording a payment against a document.
type PaymentInput struct {
	Amount    float64   `json:"amount" binding:"required,gt=0"`
	Mode      string    `json:"mode"`
	Reference string    `json:"reference"`
	PaidAt    time.Time `json:"paid_at"`
}

// InvoiceService manages the invoice lifecycle. Every write recomputes all
// derived amounts from the editable line fields before persisting.
type InvoiceService interface {
	Create(ctx context.Context, tenantID, userID uuid.UUID, input InvoiceInput) (*domain.Invoice, error)
	GetByID(ctx context.Context, tenantID, invoiceID uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, tenantID uuid.UUID, status domain.DocumentStatus, offset, limit int) ([]domain.Invoice, int, error)
	Update(ctx context.Context, tenantID, invoiceID uuid.UUID, input InvoiceInput) (*domain.Invoice, error)
	Issue(ctx context.Context, tenantID, invoiceID uuid.UUID) (*domain.Invoice, error)
	Cancel(ctx context.Context, tenantID, invoiceID uuid.UUID) error
	RecordPayment(ctx context.Context, tenantID, userID, invoiceID uuid.UUID, input PaymentInput) (*domain.Payment, error)
	RenderPDF(ctx context.Context, tenantID, invoiceID uuid.UUID) ([]byte, string, error)
	EmailPDF(ctx context.Context, tenantID, invoiceID uuid.UUID) error
}

type invoiceService struct {
	invoiceRepo port.InvoiceRepository
	clientRepo  port.ClientRepository
	tenantRepo  port.TenantRepository
	paymentRepo port.PaymentRepository
	seqRepo     port.SequenceRepository
	renderer    port.InvoiceRenderer
	emailSender port.EmailSender
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(
	invoiceRepo port.InvoiceRepository,
	clientRepo port.ClientRepository,
	tenantRepo port.TenantRepository,
	paymentRepo port.PaymentRepository,
	seqRepo port.SequenceRepository,
	renderer port.InvoiceRenderer,
	emailSender port.EmailSender,
) InvoiceService {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		tenantRepo:  tenantRepo,
		paymentRepo: paymentRepo,
		seqRepo:     seqRepo,
		renderer:    renderer,
		emailSender: emailSender,
	}
}

func (s *invoiceService) Create(ctx context.Context, tenantID, userID uuid.UUID, input InvoiceInput) (*domain.Invoice, error) {
	if err := validateLines(input.Lines); err != nil {
		return nil, err
	}

	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("invoiceService.Create: %w", err)
	}
	client, err := s.clientRepo.GetByID(ctx, tenantID, input.ClientID)
	if err != nil {
		return nil, domain.ErrClientNotFound
	}

	lines, totals := computeLines(input.Lines, tenant.StateCode, client.StateCode)

	inv := &domain.Invoice{
		ID:            uuid.New(),
		TenantID:      tenantID,
		ClientID:      client.ID,
		Status:        domain.DocumentDraft,
		IssueDate:     input.IssueDate,
		DueDate:       input.DueDate,
		PlaceOfSupply: placeOfSupply(tenant, client),
		Notes:         input.Notes,
		Lines:         lines,
		CreatedBy:     userID,
	}
	inv.DocumentTotals.Apply(totals)

	if err := s.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("invoiceService.Create: %w", err)
	}
	return inv, nil
}

func (s *invoiceService) GetByID(ctx context.Context, tenantID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	return s.invoiceRepo.GetByID(ctx, tenantID, invoiceID)
}

func (s *invoiceService) List(ctx context.Context, tenantID uuid.UUID, status domain.DocumentStatus, offset, limit int) ([]domain.Invoice, int, error) {
	return s.invoiceRepo.List(ctx, tenantID, status, offset, limit)
}

func (s *invoiceService) Update(ctx context.Context, tenantID, invoiceID uuid.UUID, input InvoiceInput) (*domain.Invoice, error) {
	if err := validateLines(input.Lines); err != nil {
		return nil, err
	}

	inv, err := s.invoiceRepo.GetByID(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status != domain.DocumentDraft {
		return nil, domain.ErrDocumentNotDraft
	}

	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("invoiceService.Update: %w", err)
	}
	client, err := s.clientRepo.GetByID(ctx, tenantID, input.ClientID)
	if err != nil {
		return nil, domain.ErrClientNotFound
	}

	lines, totals := computeLines(input.Lines, tenant.StateCode, client.StateCode)

	inv.ClientID = client.ID
	inv.IssueDate = input.IssueDate
	inv.DueDate = input.DueDate
	inv.PlaceOfSupply = placeOfSupply(tenant, client)
	inv.Notes = input.Notes
	inv.Lines = lines
	inv.DocumentTotals.Apply(totals)

	if err := s.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("invoiceService.Update: %w", err)
	}
	return inv, nil
}

// Issue assigns the next invoice number for the fiscal year of the issue date
// and moves the document out of draft. Numbers are only consumed at issue so
// abandoned drafts leave no gaps.
func (s *invoiceService) Issue(ctx context.Context, tenantID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status != domain.DocumentDraft {
		return nil, domain.ErrDocumentNotDraft
	}

	fy := fiscalYear(inv.IssueDate)
	seq, err := s.seqRepo.Next(ctx, tenantID, domain.KindInvoice, fy)
	if err != nil {
		return nil, fmt.Errorf("invoiceService.Issue: %w", err)
	}

	inv.Number = fmt.Sprintf("INV/%s/%04d", fy, seq)
	inv.Status = domain.DocumentIssued

	if err := s.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("invoiceService.Issue: %w", err)
	}
	return inv, nil
}

func (s *invoiceService) Cancel(ctx context.Context, tenantID, invoiceID uuid.UUID) error {
	inv, err := s.invoiceRepo.GetByID(ctx, tenantID, invoiceID)
	if err != nil {
		return err
	}
	switch inv.Status {
	case domain.DocumentCancelled:
		return domain.ErrDocumentCancelled
	case domain.DocumentDraft:
		return domain.ErrDocumentNotIssued
	}
	return s.invoiceRepo.UpdateStatus(ctx, tenantID, invoiceID, domain.DocumentCancelled)
}

func (s *invoiceService) RecordPayment(ctx context.Context, tenantID, userID, invoiceID uuid.UUID, input PaymentInput) (*domain.Payment, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status != domain.DocumentIssued {
		return nil, domain.ErrDocumentNotIssued
	}

	paidAt := input.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now()
	}
	payment := &domain.Payment{
		ID:        uuid.New(),
		TenantID:  tenantID,
		InvoiceID: &inv.ID,
		Amount:    input.Amount,
		Mode:      input.Mode,
		Reference: input.Reference,
		PaidAt:    paidAt,
		CreatedBy: userID,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("invoiceService.RecordPayment: %w", err)
	}
	return payment, nil
}

func (s *invoiceService) RenderPDF(ctx context.Context, tenantID, invoiceID uuid.UUID) ([]byte, string, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, "", err
	}
	if inv.Status == domain.DocumentDraft {
		return nil, "", domain.ErrDocumentNotIssued
	}

	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, "", fmt.Errorf("invoiceService.RenderPDF: %w", err)
	}
	client, err := s.clientRepo.GetByID(ctx, tenantID, inv.ClientID)
	if err != nil {
		return nil, "", fmt.Errorf("invoiceService.RenderPDF: %w", err)
	}

	pdf, err := s.renderer.RenderInvoice(tenant, client, inv)
	if err != nil {
		return nil, "", fmt.Errorf("invoiceService.RenderPDF: %w", err)
	}
	fileName := fmt.Sprintf("%s.pdf", sanitizeNumber(inv.Number))
	return pdf, fileName, nil
}

func (s *invoiceService) EmailPDF(ctx context.Context, tenantID, invoiceID uuid.UUID) error {
	inv, err := s.invoiceRepo.GetByID(ctx, tenantID, invoiceID)
	if err != nil {
		return err
	}
	if inv.Status != domain.DocumentIssued {
		return domain.ErrDocumentNotIssued
	}

	client, err := s.clientRepo.GetByID(ctx, tenantID, inv.ClientID)
	if err != nil {
		return fmt.Errorf("invoiceService.EmailPDF: %w", err)
	}
	if client.Email == "" {
		return domain.ErrClientMissingEmail
	}

	pdf, _, err := s.RenderPDF(ctx, tenantID, invoiceID)
	if err != nil {
		return err
	}

	msg := port.InvoiceEmail{
		ToAddress:     client.Email,
		ToName:        client.Name,
		InvoiceNumber: inv.Number,
		GrandTotal:    fmt.Sprintf("%.2f", inv.GrandTotal),
		PDF:           pdf,
	}
	if err := s.emailSender.SendInvoice(ctx, msg); err != nil {
		return fmt.Errorf("invoiceService.EmailPDF: %w", err)
	}
	return nil
}

// placeOfSupply is the client's state when known, otherwise the supplier's
// own state (over-the-counter supply).
func placeOfSupply(tenant *domain.Tenant, client *domain.Client) string {
	if client.StateCode != "" {
		return client.StateCode
	}
	return tenant.StateCode
}

// sanitizeNumber makes a document number safe for use as a file name.
func sanitizeNumber(number string) string {
	out := []rune(number)
	for i, r := range out {
		if r == '/' || r == '\\' {
			out[i] = '-'
		}
	}
	return string(out)
}
