package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
	"gstbill/internal/port"
	"gstbill/internal/service"
)

type invoiceFixture struct {
	svc         service.InvoiceService
	invoiceRepo *MockInvoiceRepo
	clientRepo  *MockClientRepo
	tenantRepo  *MockTenantRepo
	paymentRepo *MockPaymentRepo
	seqRepo     *MockSequenceRepo
	renderer    *MockRenderer
	emailSender *MockEmailSender

	tenantID uuid.UUID
	userID   uuid.UUID
	tenant   *domain.Tenant
	client   *domain.Client
}

func newInvoiceFixture(tenantState, clientState string) *invoiceFixture {
	f := &invoiceFixture{
		invoiceRepo: new(MockInvoiceRepo),
		clientRepo:  new(MockClientRepo),
		tenantRepo:  new(MockTenantRepo),
		paymentRepo: new(MockPaymentRepo),
		seqRepo:     new(MockSequenceRepo),
		renderer:    new(MockRenderer),
		emailSender: new(MockEmailSender),
		tenantID:    uuid.New(),
		userID:      uuid.New(),
	}
	f.tenant = &domain.Tenant{ID: f.tenantID, Name: "Acme Traders", StateCode: tenantState}
	f.client = &domain.Client{ID: uuid.New(), TenantID: f.tenantID, Name: "Globex", StateCode: clientState, Email: "billing@globex.example"}
	f.svc = service.NewInvoiceService(f.invoiceRepo, f.clientRepo, f.tenantRepo, f.paymentRepo, f.seqRepo, f.renderer, f.emailSender)
	return f
}

func TestInvoiceCreate_IntraStateSplitsIGST(t *testing.T) {
	f := newInvoiceFixture("29", "29")
	f.tenantRepo.On("GetByID", mock.Anything, f.tenantID).Return(f.tenant, nil)
	f.clientRepo.On("GetByID", mock.Anything, f.tenantID, f.client.ID).Return(f.client, nil)
	f.invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

	inv, err := f.svc.Create(context.Background(), f.tenantID, f.userID, service.InvoiceInput{
		ClientID:  f.client.ID,
		IssueDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Lines: []service.LineInput{
			{Description: "Consulting", Quantity: 2, UnitPrice: 100, IGSTRate: 18},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.DocumentDraft, inv.Status)
	assert.Empty(t, inv.Number)
	assert.Equal(t, "29", inv.PlaceOfSupply)

	line := inv.Lines[0]
	assert.InDelta(t, 9.0, line.CGSTRate, 1e-9)
	assert.InDelta(t, 9.0, line.SGSTRate, 1e-9)
	assert.InDelta(t, 0.0, line.IGSTRate, 1e-9)
	assert.InDelta(t, 200.0, line.TaxableValue, 1e-9)
	assert.InDelta(t, 18.0, line.CGSTAmount, 1e-9)
	assert.InDelta(t, 18.0, line.SGSTAmount, 1e-9)
	assert.InDelta(t, 236.0, line.LineTotal, 1e-9)

	assert.InDelta(t, 200.0, inv.TotalTaxableValue, 1e-9)
	assert.InDelta(t, 36.0, inv.TotalTax, 1e-9)
	assert.InDelta(t, 236.0, inv.GrandTotal, 1e-9)
	f.invoiceRepo.AssertExpectations(t)
}

func TestInvoiceCreate_InterStateMovesToIGST(t *testing.T) {
	f := newInvoiceFixture("29", "27")
	f.tenantRepo.On("GetByID", mock.Anything, f.tenantID).Return(f.tenant, nil)
	f.clientRepo.On("GetByID", mock.Anything, f.tenantID, f.client.ID).Return(f.client, nil)
	f.invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

	inv, err := f.svc.Create(context.Background(), f.tenantID, f.userID, service.InvoiceInput{
		ClientID:  f.client.ID,
		IssueDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Lines: []service.LineInput{
			{Description: "Widgets", Quantity: 1, UnitPrice: 1000, CGSTRate: 9, SGSTRate: 9, CessRate: 1},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "27", inv.PlaceOfSupply)

	line := inv.Lines[0]
	assert.InDelta(t, 0.0, line.CGSTRate, 1e-9)
	assert.InDelta(t, 0.0, line.SGSTRate, 1e-9)
	assert.InDelta(t, 18.0, line.IGSTRate, 1e-9)
	assert.InDelta(t, 1.0, line.CessRate, 1e-9, "CESS is never redistributed")
	assert.InDelta(t, 180.0, line.IGSTAmount, 1e-9)
	assert.InDelta(t, 10.0, line.CessAmount, 1e-9)
	assert.InDelta(t, 1190.0, inv.GrandTotal, 1e-9)
}

func TestInvoiceCreate_UnknownStateLeavesRatesUnchanged(t *testing.T) {
	f := newInvoiceFixture("29", "")
	f.tenantRepo.On("GetByID", mock.Anything, f.tenantID).Return(f.tenant, nil)
	f.clientRepo.On("GetByID", mock.Anything, f.tenantID, f.client.ID).Return(f.client, nil)
	f.invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

	inv, err := f.svc.Create(context.Background(), f.tenantID, f.userID, service.InvoiceInput{
		ClientID:  f.client.ID,
		IssueDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Lines: []service.LineInput{
			{Description: "Services", Quantity: 1, UnitPrice: 500, CGSTRate: 9, SGSTRate: 9},
		},
	})

	assert.NoError(t, err)
	// Place of supply falls back to the supplier's own state.
	assert.Equal(t, "29", inv.PlaceOfSupply)
	assert.InDelta(t, 9.0, inv.Lines[0].CGSTRate, 1e-9)
	assert.InDelta(t, 9.0, inv.Lines[0].SGSTRate, 1e-9)
}

func TestInvoiceCreate_Validation(t *testing.T) {
	f := newInvoiceFixture("29", "29")

	_, err := f.svc.Create(context.Background(), f.tenantID, f.userID, service.InvoiceInput{
		ClientID:  f.client.ID,
		IssueDate: time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrNoLines)

	_, err = f.svc.Create(context.Background(), f.tenantID, f.userID, service.InvoiceInput{
		ClientID:  f.client.ID,
		IssueDate: time.Now(),
		Lines:     []service.LineInput{{Description: "X", Quantity: 1, UnitPrice: 10, DiscountPercent: 150}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDiscount)

	f.invoiceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInvoiceCreate_ClientNotFound(t *testing.T) {
	f := newInvoiceFixture("29", "29")
	f.tenantRepo.On("GetByID", mock.Anything, f.tenantID).Return(f.tenant, nil)
	f.clientRepo.On("GetByID", mock.Anything, f.tenantID, f.client.ID).Return(nil, domain.ErrNotFound)

	_, err := f.svc.Create(context.Background(), f.tenantID, f.userID, service.InvoiceInput{
		ClientID:  f.client.ID,
		IssueDate: time.Now(),
		Lines:     []service.LineInput{{Description: "X", Quantity: 1, UnitPrice: 10}},
	})
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestInvoiceIssue_AssignsFiscalYearNumber(t *testing.T) {
	f := newInvoiceFixture("29", "29")
	invoiceID := uuid.New()
	draft := &domain.Invoice{
		ID:        invoiceID,
		TenantID:  f.tenantID,
		Status:    domain.DocumentDraft,
		IssueDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	}
	f.invoiceRepo.On("GetByID", mock.Anything, f.tenantID, invoiceID).Return(draft, nil)
	f.seqRepo.On("Next", mock.Anything, f.tenantID, domain.KindInvoice, "2025-26").Return(int64(7), nil)
	f.invoiceRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

	inv, err := f.svc.Issue(context.Background(), f.tenantID, invoiceID)

	assert.NoError(t, err)
	assert.Equal(t, "INV/2025-26/0007", inv.Number)
	assert.Equal(t, domain.DocumentIssued, inv.Status)
	f.seqRepo.AssertExpectations(t)
}

func TestInvoiceIssue_JanuaryFallsInPriorFiscalYear(t *testing.T) {
	f := newInvoiceFixture("29", "29")
	invoiceID := uuid.New()
	draft := &domain.Invoice{
		ID:        invoiceID,
		TenantID:  f.tenantID,
		Status:    domain.DocumentDraft,
		IssueDate: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	f.invoiceRepo.On("GetByID", mock.Anything, f.tenantID, invoiceID).Return(draft, nil)
	f.seqRepo.On("Next", mock.Anything, f.tenantID, domain.KindInvoice, "2025-26").Return(int64(42), nil)
	f.invoiceRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

	inv, err := f.svc.Issue(context.Background(), f.tenantID, invoiceID)

	assert.NoError(t, err)
	assert.Equal(t, "INV/2025-26/0042", inv.Number)
}

func TestInvoiceIssue_RejectsNonDraft(t *testing.T) {
	f := newInvoiceFixture("29", "29")
	invoiceID := uuid.New()
	issued := &domain.Invoice{ID: invoiceID, TenantID: f.tenantID, Status: domain.DocumentIssued, Number: "INV/2025-26/0001"}
	f.invoiceRepo.On("GetByID", mock.Anything, f.tenantID, invoiceID).Return(issued, nil)

	_, err := f.svc.Issue(context.Background(), f.tenantID, invoiceID)

	assert.ErrorIs(t, err, domain.ErrDocumentNotDraft)
	f.seqRepo.AssertNotCalled(t, "Next", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceUpdate_RejectsIssued(t *testing.T) {
	f := newInvoiceFixture("29", "29")
	invoiceID := uuid.New()
	issued := &domain.Invoice{ID: invoiceID, TenantID: f.tenantID, Status: domain.DocumentIssued}
	f.invoiceRepo.On("GetByID", mock.Anything, f.tenantID, invoiceID).Return(issued, nil)

	_, err := f.svc.Update(context.Background(), f.tenantID, invoiceID, service.InvoiceInput{
		ClientID:  f.client.ID,
		IssueDate: time.Now(),
		Lines:     []service.LineInput{{Description: "X", Quantity: 1, UnitPrice: 10}},
	})

	assert.ErrorIs(t, err, domain.ErrDocumentNotDraft)
}

func TestInvoiceCancel_Transitions(t *testing.T) {
	f := newInvoiceFixture("29", "29")

	draftID := uuid.New()
	f.invoiceRepo.On("GetByID", mock.Anything, f.tenantID, draftID).
		Return(&domain.Invoice{ID: draftID, Status: domain.DocumentDraft}, nil)
	assert.ErrorIs(t, f.svc.Cancel(context.Background(), f.tenantID, draftID), domain.ErrDocumentNotIssued)

	cancelledID := uuid.New()
	f.invoiceRepo.On("GetByID", mock.Anything, f.tenantID, cancelledID).
		Return(&domain.Invoice{ID: cancelledID, Status: domain.DocumentCancelled}, nil)
	assert.ErrorIs(t, f.svc.Cancel(context.Background(), f.tenantID, cancelledID), domain.ErrDocumentCancelled)

	issuedID := uuid.New()
	f.invoiceRepo.On("GetByID", mock.Anything, f.tenantID, issuedID).
		Return(&domain.Invoice{ID: issuedID, Status: domain.DocumentIssued}, nil)
	f.invoiceRepo.On("UpdateStatus", mock.Anything, f.tenantID, issuedID, domain.DocumentCancelled).Return(nil)
	assert.NoError(t, f.svc.Cancel(context.Background(), f.tenantID, issuedID))
	f.invoiceRepo.AssertExpectations(t)
}

func TestInvoiceRecordPayment(t *testing.T) {
	f := newInvoiceFixture("29", "29")
	invoiceID := uuid.New()
	issued := &domain.Invoice{ID: invoiceID, TenantID: f.tenantID, Status: domain.DocumentIssued}
	f.invoiceRepo.On("GetByID", mock.Anything, f.tenantID, invoiceID).Return(issued, nil)
	f.paymentRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)

	p, err := f.svc.RecordPayment(context.Background(), f.tenantID, f.userID, invoiceID, service.PaymentInput{
		Amount: 500, Mode: "upi", Reference: "UTR123",
	})

	assert.NoError(t, err)
	assert.Equal(t, invoiceID, *p.InvoiceID)
	assert.InDelta(t, 500.0, p.Amount, 1e-9)
	assert.False(t, p.PaidAt.IsZero())
}

func TestInvoiceRecordPayment_RejectsDraft(t *testing.T) {
	f := newInvoiceFixture("29", "29")
	invoiceID := uuid.New()
	f.invoiceRepo.On("GetByID", mock.Anything, f.tenantID, invoiceID).
		Return(&domain.Invoice{ID: invoiceID, Status: domain.DocumentDraft}, nil)

	_, err := f.svc.RecordPayment(context.Background(), f.tenantID, f.userID, invoiceID, service.PaymentInput{Amount: 100})

	assert.ErrorIs(t, err, domain.ErrDocumentNotIssued)
	f.paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInvoiceRenderPDF(t *testing.T) {
	f := newInvoiceFixture("29", "29")
	invoiceID := uuid.New()
	issued := &domain.Invoice{
		ID:       invoiceID,
		TenantID: f.tenantID,
		ClientID: f.client.ID,
		Status:   domain.DocumentIssued,
		Number:   "INV/2025-26/0007",
	}
	f.invoiceRepo.On("GetByID", mock.Anything, f.tenantID, invoiceID).Return(issued, nil)
	f.tenantRepo.On("GetByID", mock.Anything, f.tenantID).Return(f.tenant, nil)
	f.clientRepo.On("GetByID", mock.Anything, f.tenantID, f.client.ID).Return(f.client, nil)
	f.renderer.On("RenderInvoice", f.tenant, f.client, issued).Return([]byte("%PDF-1.7"), nil)

	pdf, fileName, err := f.svc.RenderPDF(context.Background(), f.tenantID, invoiceID)

	assert.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7"), pdf)
	assert.Equal(t, "INV-2025-26-0007.pdf", fileName)
}

func TestInvoiceRenderPDF_RejectsDraft(t *testing.T) {
	f := newInvoiceFixture("29", "29")
	invoiceID := uuid.New()
	f.invoiceRepo.On("GetByID", mock.Anything, f.tenantID, invoiceID).
		Return(&domain.Invoice{ID: invoiceID, Status: domain.DocumentDraft}, nil)

	_, _, err := f.svc.RenderPDF(context.Background(), f.tenantID, invoiceID)

	assert.ErrorIs(t, err, domain.ErrDocumentNotIssued)
}

func TestInvoiceEmailPDF(t *testing.T) {
	f := newInvoiceFixture("29", "29")
	invoiceID := uuid.New()
	issued := &domain.Invoice{
		ID:       invoiceID,
		TenantID: f.tenantID,
		ClientID: f.client.ID,
		Status:   domain.DocumentIssued,
		Number:   "INV/2025-26/0007",
	}
	issued.GrandTotal = 1180.5
	f.invoiceRepo.On("GetByID", mock.Anything, f.tenantID, invoiceID).Return(issued, nil)
	f.tenantRepo.On("GetByID", mock.Anything, f.tenantID).Return(f.tenant, nil)
	f.clientRepo.On("GetByID", mock.Anything, f.tenantID, f.client.ID).Return(f.client, nil)
	f.renderer.On("RenderInvoice", f.tenant, f.client, issued).Return([]byte("%PDF-1.7"), nil)
	f.emailSender.On("SendInvoice", mock.Anything, mock.MatchedBy(func(msg port.InvoiceEmail) bool {
		return msg.ToAddress == "billing@globex.example" &&
			msg.InvoiceNumber == "INV/2025-26/0007" &&
			msg.GrandTotal == "1180.50" &&
			len(msg.PDF) > 0
	})).Return(nil)

	err := f.svc.EmailPDF(context.Background(), f.tenantID, invoiceID)

	assert.NoError(t, err)
	f.emailSender.AssertExpectations(t)
}

func TestInvoiceEmailPDF_MissingClientEmail(t *testing.T) {
	f := newInvoiceFixture("29", "29")
	f.client.Email = ""
	invoiceID := uuid.New()
	issued := &domain.Invoice{ID: invoiceID, TenantID: f.tenantID, ClientID: f.client.ID, Status: domain.DocumentIssued}
	f.invoiceRepo.On("GetByID", mock.Anything, f.tenantID, invoiceID).Return(issued, nil)
	f.clientRepo.On("GetByID", mock.Anything, f.tenantID, f.client.ID).Return(f.client, nil)

	err := f.svc.EmailPDF(context.Background(), f.tenantID, invoiceID)

	assert.ErrorIs(t, err, domain.ErrClientMissingEmail)
	f.emailSender.AssertNotCalled(t, "SendInvoice", mock.Anything, mock.Anything)
}
