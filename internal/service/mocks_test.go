package service_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

type MockTenantRepo struct{ mock.Mock }

func (m *MockTenantRepo) Create(ctx context.Context, t *domain.Tenant) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTenantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepo) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepo) Update(ctx context.Context, t *domain.Tenant) error {
	return m.Called(ctx, t).Error(0)
}

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, tenantID, userID uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, tenantID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.User, error) {
	args := m.Called(ctx, tenantID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.User, int, error) {
	args := m.Called(ctx, tenantID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Int(1), args.Error(2)
}

func (m *MockUserRepo) Update(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepo) Delete(ctx context.Context, tenantID, userID uuid.UUID) error {
	return m.Called(ctx, tenantID, userID).Error(0)
}

type MockClientRepo struct{ mock.Mock }

func (m *MockClientRepo) Create(ctx context.Context, c *domain.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockClientRepo) GetByID(ctx context.Context, tenantID, clientID uuid.UUID) (*domain.Client, error) {
	args := m.Called(ctx, tenantID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepo) List(ctx context.Context, tenantID uuid.UUID, search string, offset, limit int) ([]domain.Client, int, error) {
	args := m.Called(ctx, tenantID, search, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Client), args.Int(1), args.Error(2)
}

func (m *MockClientRepo) Update(ctx context.Context, c *domain.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockClientRepo) Delete(ctx context.Context, tenantID, clientID uuid.UUID) error {
	return m.Called(ctx, tenantID, clientID).Error(0)
}

type MockVendorRepo struct{ mock.Mock }

func (m *MockVendorRepo) Create(ctx context.Context, v *domain.Vendor) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVendorRepo) GetByID(ctx context.Context, tenantID, vendorID uuid.UUID) (*domain.Vendor, error) {
	args := m.Called(ctx, tenantID, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *MockVendorRepo) List(ctx context.Context, tenantID uuid.UUID, search string, offset, limit int) ([]domain.Vendor, int, error) {
	args := m.Called(ctx, tenantID, search, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Vendor), args.Int(1), args.Error(2)
}

func (m *MockVendorRepo) Update(ctx context.Context, v *domain.Vendor) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVendorRepo) Delete(ctx context.Context, tenantID, vendorID uuid.UUID) error {
	return m.Called(ctx, tenantID, vendorID).Error(0)
}

type MockInvoiceRepo struct{ mock.Mock }

func (m *MockInvoiceRepo) Create(ctx context.Context, inv *domain.Invoice) error {
	return m.Called(ctx, inv).Error(0)
}

func (m *MockInvoiceRepo) GetByID(ctx context.Context, tenantID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	args := m.Called(ctx, tenantID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepo) List(ctx context.Context, tenantID uuid.UUID, status domain.DocumentStatus, offset, limit int) ([]domain.Invoice, int, error) {
	args := m.Called(ctx, tenantID, status, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Invoice), args.Int(1), args.Error(2)
}

func (m *MockInvoiceRepo) Update(ctx context.Context, inv *domain.Invoice) error {
	return m.Called(ctx, inv).Error(0)
}

func (m *MockInvoiceRepo) UpdateStatus(ctx context.Context, tenantID, invoiceID uuid.UUID, status domain.DocumentStatus) error {
	return m.Called(ctx, tenantID, invoiceID, status).Error(0)
}

type MockCreditNoteRepo struct{ mock.Mock }

func (m *MockCreditNoteRepo) Create(ctx context.Context, note *domain.CreditNote) error {
	return m.Called(ctx, note).Error(0)
}

func (m *MockCreditNoteRepo) GetByID(ctx context.Context, tenantID, noteID uuid.UUID) (*domain.CreditNote, error) {
	args := m.Called(ctx, tenantID, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditNote), args.Error(1)
}

func (m *MockCreditNoteRepo) List(ctx context.Context, tenantID uuid.UUID, kind domain.NoteKind, offset, limit int) ([]domain.CreditNote, int, error) {
	args := m.Called(ctx, tenantID, kind, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.CreditNote), args.Int(1), args.Error(2)
}

func (m *MockCreditNoteRepo) Update(ctx context.Context, note *domain.CreditNote) error {
	return m.Called(ctx, note).Error(0)
}

func (m *MockCreditNoteRepo) UpdateStatus(ctx context.Context, tenantID, noteID uuid.UUID, status domain.DocumentStatus) error {
	return m.Called(ctx, tenantID, noteID, status).Error(0)
}

type MockBillRepo struct{ mock.Mock }

func (m *MockBillRepo) Create(ctx context.Context, bill *domain.Bill) error {
	return m.Called(ctx, bill).Error(0)
}

func (m *MockBillRepo) GetByID(ctx context.Context, tenantID, billID uuid.UUID) (*domain.Bill, error) {
	args := m.Called(ctx, tenantID, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillRepo) List(ctx context.Context, tenantID uuid.UUID, status domain.BillStatus, offset, limit int) ([]domain.Bill, int, error) {
	args := m.Called(ctx, tenantID, status, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Bill), args.Int(1), args.Error(2)
}

func (m *MockBillRepo) Update(ctx context.Context, bill *domain.Bill) error {
	return m.Called(ctx, bill).Error(0)
}

func (m *MockBillRepo) UpdateStatus(ctx context.Context, tenantID, billID uuid.UUID, status domain.BillStatus) error {
	return m.Called(ctx, tenantID, billID, status).Error(0)
}

type MockPaymentRepo struct{ mock.Mock }

func (m *MockPaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPaymentRepo) ListByInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) ([]domain.Payment, error) {
	args := m.Called(ctx, tenantID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepo) ListByBill(ctx context.Context, tenantID, billID uuid.UUID) ([]domain.Payment, error) {
	args := m.Called(ctx, tenantID, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepo) SumByInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) (float64, error) {
	args := m.Called(ctx, tenantID, invoiceID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockPaymentRepo) SumByBill(ctx context.Context, tenantID, billID uuid.UUID) (float64, error) {
	args := m.Called(ctx, tenantID, billID)
	return args.Get(0).(float64), args.Error(1)
}

type MockSequenceRepo struct{ mock.Mock }

func (m *MockSequenceRepo) Next(ctx context.Context, tenantID uuid.UUID, kind domain.DocumentKind, fiscalYear string) (int64, error) {
	args := m.Called(ctx, tenantID, kind, fiscalYear)
	return args.Get(0).(int64), args.Error(1)
}

type MockRenderer struct{ mock.Mock }

func (m *MockRenderer) RenderInvoice(tenant *domain.Tenant, client *domain.Client, inv *domain.Invoice) ([]byte, error) {
	args := m.Called(tenant, client, inv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockAttachmentRepo struct{ mock.Mock }

func (m *MockAttachmentRepo) Create(ctx context.Context, att *domain.Attachment) error {
	return m.Called(ctx, att).Error(0)
}

func (m *MockAttachmentRepo) GetByID(ctx context.Context, tenantID, attachmentID uuid.UUID) (*domain.Attachment, error) {
	args := m.Called(ctx, tenantID, attachmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepo) ListByDocument(ctx context.Context, tenantID, documentID uuid.UUID) ([]domain.Attachment, error) {
	args := m.Called(ctx, tenantID, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepo) Delete(ctx context.Context, tenantID, attachmentID uuid.UUID) error {
	return m.Called(ctx, tenantID, attachmentID).Error(0)
}

type MockObjectStorage struct{ mock.Mock }

func (m *MockObjectStorage) Upload(ctx context.Context, input port.UploadInput) (*port.UploadOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.UploadOutput), args.Error(1)
}

func (m *MockObjectStorage) Delete(ctx context.Context, bucket, key string) error {
	return m.Called(ctx, bucket, key).Error(0)
}

func (m *MockObjectStorage) GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error) {
	args := m.Called(ctx, bucket, key, expirySeconds)
	return args.String(0), args.Error(1)
}

type MockEmailSender struct{ mock.Mock }

func (m *MockEmailSender) SendInvoice(ctx context.Context, msg port.InvoiceEmail) error {
	return m.Called(ctx, msg).Error(0)
}
