package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

type paymentRepo struct {
	db *sqlx.DB
}

// NewPaymentRepo creates a new PostgreSQL-backed PaymentRepository.
func NewPaymentRepo(db *sqlx.DB) port.PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	payment.ID = uuid.New()
	payment.CreatedAt = time.Now().UTC()

	query := `INSERT INTO payments (id, tenant_id, invoice_id, bill_id, amount, mode, reference, paid_at, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query,
		payment.ID, payment.TenantID, payment.InvoiceID, payment.BillID, payment.Amount,
		payment.Mode, payment.Reference, payment.PaidAt, payment.CreatedBy, payment.CreatedAt)
	if err != nil {
		return fmt.Errorf("paymentRepo.Create: %w", err)
	}
	return nil
}

func (r *paymentRepo) ListByInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.SelectContext(ctx, &payments,
		"SELECT * FROM payments WHERE tenant_id = $1 AND invoice_id = $2 ORDER BY paid_at ASC",
		tenantID, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("paymentRepo.ListByInvoice: %w", err)
	}
	return payments, nil
}

func (r *paymentRepo) ListByBill(ctx context.Context, tenantID, billID uuid.UUID) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.SelectContext(ctx, &payments,
		"SELECT * FROM payments WHERE tenant_id = $1 AND bill_id = $2 ORDER BY paid_at ASC",
		tenantID, billID)
	if err != nil {
		return nil, fmt.Errorf("paymentRepo.ListByBill: %w", err)
	}
	return payments, nil
}

func (r *paymentRepo) SumByInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) (float64, error) {
	var sum float64
	err := r.db.GetContext(ctx, &sum,
		"SELECT COALESCE(SUM(amount), 0) FROM payments WHERE tenant_id = $1 AND invoice_id = $2",
		tenantID, invoiceID)
	if err != nil {
		return 0, fmt.Errorf("paymentRepo.SumByInvoice: %w", err)
	}
	return sum, nil
}

func (r *paymentRepo) SumByBill(ctx context.Context, tenantID, billID uuid.UUID) (float64, error) {
	var sum float64
	err := r.db.GetContext(ctx, &sum,
		"SELECT COALESCE(SUM(amount), 0) FROM payments WHERE tenant_id = $1 AND bill_id = $2",
		tenantID, billID)
	if err != nil {
		return 0, fmt.Errorf("paymentRepo.SumByBill: %w", err)
	}
	return sum, nil
}
