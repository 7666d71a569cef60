package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

type billRepo struct {
	db *sqlx.DB
}

// NewBillRepo creates a new PostgreSQL-backed BillRepository.
func NewBillRepo(db *sqlx.DB) port.BillRepository {
	return &billRepo{db: db}
}

func (r *billRepo) Create(ctx context.Context, bill *domain.Bill) error {
	bill.ID = uuid.New()
	now := time.Now().UTC()
	bill.CreatedAt = now
	bill.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("billRepo.Create begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `INSERT INTO bills (id, tenant_id, vendor_id, number, bill_number, status, bill_date, due_date, notes,
		subtotal, total_discount, total_taxable_value, total_cgst, total_sgst, total_igst, total_cess,
		total_tax, grand_total, tds_rate, tds_amount, net_payable, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`
	_, err = tx.ExecContext(ctx, query,
		bill.ID, bill.TenantID, bill.VendorID, bill.Number, bill.BillNumber, bill.Status,
		bill.BillDate, bill.DueDate, bill.Notes,
		bill.Subtotal, bill.TotalDiscount, bill.TotalTaxableValue, bill.TotalCGST, bill.TotalSGST,
		bill.TotalIGST, bill.TotalCESS, bill.TotalTax, bill.GrandTotal,
		bill.TDSRate, bill.TDSAmount, bill.NetPayable,
		bill.CreatedBy, bill.CreatedAt, bill.UpdatedAt)
	if err != nil {
		return fmt.Errorf("billRepo.Create: %w", err)
	}

	if err := replaceLines(ctx, tx, bill.ID, bill.Lines); err != nil {
		return fmt.Errorf("billRepo.Create lines: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("billRepo.Create commit: %w", err)
	}
	return nil
}

func (r *billRepo) GetByID(ctx context.Context, tenantID, billID uuid.UUID) (*domain.Bill, error) {
	var bill domain.Bill
	err := r.db.GetContext(ctx, &bill,
		"SELECT * FROM bills WHERE tenant_id = $1 AND id = $2", tenantID, billID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("billRepo.GetByID: %w", err)
	}

	lines, err := loadLines(ctx, r.db, bill.ID)
	if err != nil {
		return nil, fmt.Errorf("billRepo.GetByID: %w", err)
	}
	bill.Lines = lines
	return &bill, nil
}

func (r *billRepo) List(ctx context.Context, tenantID uuid.UUID, status domain.BillStatus, offset, limit int) ([]domain.Bill, int, error) {
	where := "WHERE tenant_id = $1"
	args := []interface{}{tenantID}
	if status != "" {
		where += " AND status = $2"
		args = append(args, status)
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM bills "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("billRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM bills %s ORDER BY bill_date DESC, number DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var bills []domain.Bill
	err = r.db.SelectContext(ctx, &bills, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("billRepo.List: %w", err)
	}
	return bills, total, nil
}

func (r *billRepo) Update(ctx context.Context, bill *domain.Bill) error {
	bill.UpdatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("billRepo.Update begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `UPDATE bills SET vendor_id = $1, bill_number = $2, bill_date = $3, due_date = $4, notes = $5,
		subtotal = $6, total_discount = $7, total_taxable_value = $8, total_cgst = $9, total_sgst = $10,
		total_igst = $11, total_cess = $12, total_tax = $13, grand_total = $14,
		tds_rate = $15, tds_amount = $16, net_payable = $17, updated_at = $18
		WHERE tenant_id = $19 AND id = $20`
	result, err := tx.ExecContext(ctx, query,
		bill.VendorID, bill.BillNumber, bill.BillDate, bill.DueDate, bill.Notes,
		bill.Subtotal, bill.TotalDiscount, bill.TotalTaxableValue, bill.TotalCGST, bill.TotalSGST,
		bill.TotalIGST, bill.TotalCESS, bill.TotalTax, bill.GrandTotal,
		bill.TDSRate, bill.TDSAmount, bill.NetPayable, bill.UpdatedAt,
		bill.TenantID, bill.ID)
	if err != nil {
		return fmt.Errorf("billRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}

	if err := replaceLines(ctx, tx, bill.ID, bill.Lines); err != nil {
		return fmt.Errorf("billRepo.Update lines: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("billRepo.Update commit: %w", err)
	}
	return nil
}

func (r *billRepo) UpdateStatus(ctx context.Context, tenantID, billID uuid.UUID, status domain.BillStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE bills SET status = $1, updated_at = $2 WHERE tenant_id = $3 AND id = $4",
		status, time.Now().UTC(), tenantID, billID)
	if err != nil {
		return fmt.Errorf("billRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
