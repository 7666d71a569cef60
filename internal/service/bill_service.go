package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

// BillInput is the DTO for recording a vendor purchase bill. TDSRate is
// optional; when nil the vendor's default rate applies.
type BillInput struct {
	VendorID   uuid.UUID   `json:"vendor_id" binding:"required"`
	BillNumber string      `json:"bill_number" binding:"required"`
	BillDate   time.Time   `json:"bill_date" binding:"required"`
	DueDate    *time.Time  `json:"due_date"`
	Notes      string      `json:"notes"`
	TDSRate    *float64    `json:"tds_rate" binding:"omitempty,gte=0,lte=30"`
	Lines      []LineInput `json:"lines" binding:"required"`
}

// BillService manages vendor purchase bills and their payment state.
type BillService interface {
	Create(ctx context.Context, tenantID, userID uuid.UUID, input BillInput) (*domain.Bill, error)
	GetByID(ctx context.Context, tenantID, billID uuid.UUID) (*domain.Bill, error)
	List(ctx context.Context, tenantID uuid.UUID, status domain.BillStatus, offset, limit int) ([]domain.Bill, int, error)
	Update(ctx context.Context, tenantID, billID uuid.UUID, input BillInput) (*domain.Bill, error)
	RecordPayment(ctx context.Context, tenantID, userID, billID uuid.UUID, input PaymentInput) (*domain.Payment, error)
	Cancel(ctx context.Context, tenantID, billID uuid.UUID) error
}

type billService struct {
	billRepo    port.BillRepository
	vendorRepo  port.VendorRepository
	tenantRepo  port.TenantRepository
	paymentRepo port.PaymentRepository
	seqRepo     port.SequenceRepository
}

// NewBillService creates a new BillService implementation.
func NewBillService(
	billRepo port.BillRepository,
	vendorRepo port.VendorRepository,
	tenantRepo port.TenantRepository,
	paymentRepo port.PaymentRepository,
	seqRepo port.SequenceRepository,
) BillService {
	return &billService{
		billRepo:    billRepo,
		vendorRepo:  vendorRepo,
		tenantRepo:  tenantRepo,
		paymentRepo: paymentRepo,
		seqRepo:     seqRepo,
	}
}

// applyTDS derives the TDS deduction and net payable from freshly computed
// totals. TDS applies to the taxable value, never to the tax component.
func applyTDS(bill *domain.Bill, rate float64) {
	bill.TDSRate = rate
	bill.TDSAmount = bill.TotalTaxableValue * rate / 100
	bill.NetPayable = bill.GrandTotal - bill.TDSAmount
}

func (s *billService) Create(ctx context.Context, tenantID, userID uuid.UUID, input BillInput) (*domain.Bill, error) {
	if err := validateLines(input.Lines); err != nil {
		return nil, err
	}

	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("billService.Create: %w", err)
	}
	vendor, err := s.vendorRepo.GetByID(ctx, tenantID, input.VendorID)
	if err != nil {
		return nil, domain.ErrVendorNotFound
	}

	// Purchase-side jurisdiction: the vendor supplies, the tenant receives.
	lines, totals := computeLines(input.Lines, vendor.StateCode, tenant.StateCode)

	tdsRate := vendor.TDSRate
	if input.TDSRate != nil {
		tdsRate = *input.TDSRate
	}

	fy := fiscalYear(input.BillDate)
	seq, err := s.seqRepo.Next(ctx, tenantID, domain.KindBill, fy)
	if err != nil {
		return nil, fmt.Errorf("billService.Create: %w", err)
	}

	bill := &domain.Bill{
		ID:         uuid.New(),
		TenantID:   tenantID,
		VendorID:   vendor.ID,
		Number:     fmt.Sprintf("BILL/%s/%04d", fy, seq),
		BillNumber: input.BillNumber,
		Status:     domain.BillUnpaid,
		BillDate:   input.BillDate,
		DueDate:    input.DueDate,
		Notes:      input.Notes,
		Lines:      lines,
		CreatedBy:  userID,
	}
	bill.DocumentTotals.Apply(totals)
	applyTDS(bill, tdsRate)

	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, fmt.Errorf("billService.Create: %w", err)
	}
	return bill, nil
}

func (s *billService) GetByID(ctx context.Context, tenantID, billID uuid.UUID) (*domain.Bill, error) {
	return s.billRepo.GetByID(ctx, tenantID, billID)
}

func (s *billService) List(ctx context.Context, tenantID uuid.UUID, status domain.BillStatus, offset, limit int) ([]domain.Bill, int, error) {
	return s.billRepo.List(ctx, tenantID, status, offset, limit)
}

func (s *billService) Update(ctx context.Context, tenantID, billID uuid.UUID, input BillInput) (*domain.Bill, error) {
	if err := validateLines(input.Lines); err != nil {
		return nil, err
	}

	bill, err := s.billRepo.GetByID(ctx, tenantID, billID)
	if err != nil {
		return nil, err
	}
	if bill.Status == domain.BillCancelled {
		return nil, domain.ErrDocumentCancelled
	}

	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("billService.Update: %w", err)
	}
	vendor, err := s.vendorRepo.GetByID(ctx, tenantID, input.VendorID)
	if err != nil {
		return nil, domain.ErrVendorNotFound
	}

	lines, totals := computeLines(input.Lines, vendor.StateCode, tenant.StateCode)

	tdsRate := vendor.TDSRate
	if input.TDSRate != nil {
		tdsRate = *input.TDSRate
	}

	bill.VendorID = vendor.ID
	bill.BillNumber = input.BillNumber
	bill.BillDate = input.BillDate
	bill.DueDate = input.DueDate
	bill.Notes = input.Notes
	bill.Lines = lines
	bill.DocumentTotals.Apply(totals)
	applyTDS(bill, tdsRate)

	if err := s.billRepo.Update(ctx, bill); err != nil {
		return nil, fmt.Errorf("billService.Update: %w", err)
	}
	return bill, nil
}

func (s *billService) RecordPayment(ctx context.Context, tenantID, userID, billID uuid.UUID, input PaymentInput) (*domain.Payment, error) {
	bill, err := s.billRepo.GetByID(ctx, tenantID, billID)
	if err != nil {
		return nil, err
	}
	if bill.Status == domain.BillCancelled {
		return nil, domain.ErrDocumentCancelled
	}

	paidAt := input.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now()
	}
	payment := &domain.Payment{
		ID:        uuid.New(),
		TenantID:  tenantID,
		BillID:    &bill.ID,
		Amount:    input.Amount,
		Mode:      input.Mode,
		Reference: input.Reference,
		PaidAt:    paidAt,
		CreatedBy: userID,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("billService.RecordPayment: %w", err)
	}

	paid, err := s.paymentRepo.SumByBill(ctx, tenantID, billID)
	if err != nil {
		return nil, fmt.Errorf("billService.RecordPayment: %w", err)
	}
	status := domain.BillPartiallyPaid
	if paid >= bill.NetPayable {
		status = domain.BillPaid
	}
	if err := s.billRepo.UpdateStatus(ctx, tenantID, billID, status); err != nil {
		return nil, fmt.Errorf("billService.RecordPayment: %w", err)
	}
	return payment, nil
}

func (s *billService) Cancel(ctx context.Context, tenantID, billID uuid.UUID) error {
	bill, err := s.billRepo.GetByID(ctx, tenantID, billID)
	if err != nil {
		return err
	}
	if bill.Status == domain.BillCancelled {
		return domain.ErrDocumentCancelled
	}
	return s.billRepo.UpdateStatus(ctx, tenantID, billID, domain.BillCancelled)
}
