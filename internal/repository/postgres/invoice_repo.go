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

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

const invoiceColumns = `id, tenant_id, client_id, number, status, issue_date, due_date, place_of_supply, notes,
	subtotal, total_discount, total_taxable_value, total_cgst, total_sgst, total_igst, total_cess,
	total_tax, grand_total, created_by, created_at, updated_at`

func (r *invoiceRepo) Create(ctx context.Context, inv *domain.Invoice) error {
	inv.ID = uuid.New()
	now := time.Now().UTC()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err = tx.ExecContext(ctx, query,
		inv.ID, inv.TenantID, inv.ClientID, inv.Number, inv.Status, inv.IssueDate, inv.DueDate,
		inv.PlaceOfSupply, inv.Notes,
		inv.Subtotal, inv.TotalDiscount, inv.TotalTaxableValue, inv.TotalCGST, inv.TotalSGST,
		inv.TotalIGST, inv.TotalCESS, inv.TotalTax, inv.GrandTotal,
		inv.CreatedBy, inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create: %w", err)
	}

	if err := replaceLines(ctx, tx, inv.ID, inv.Lines); err != nil {
		return fmt.Errorf("invoiceRepo.Create lines: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.Create commit: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, tenantID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv,
		"SELECT * FROM invoices WHERE tenant_id = $1 AND id = $2", tenantID, invoiceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}

	lines, err := loadLines(ctx, r.db, inv.ID)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}
	inv.Lines = lines
	return &inv, nil
}

func (r *invoiceRepo) List(ctx context.Context, tenantID uuid.UUID, status domain.DocumentStatus, offset, limit int) ([]domain.Invoice, int, error) {
	where := "WHERE tenant_id = $1"
	args := []interface{}{tenantID}
	if status != "" {
		where += " AND status = $2"
		args = append(args, status)
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM invoices "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM invoices %s ORDER BY issue_date DESC, number DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var invoices []domain.Invoice
	err = r.db.SelectContext(ctx, &invoices, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, total, nil
}

func (r *invoiceRepo) Update(ctx context.Context, inv *domain.Invoice) error {
	inv.UpdatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Update begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `UPDATE invoices SET client_id = $1, issue_date = $2, due_date = $3, place_of_supply = $4, notes = $5,
		subtotal = $6, total_discount = $7, total_taxable_value = $8, total_cgst = $9, total_sgst = $10,
		total_igst = $11, total_cess = $12, total_tax = $13, grand_total = $14, updated_at = $15
		WHERE tenant_id = $16 AND id = $17`
	result, err := tx.ExecContext(ctx, query,
		inv.ClientID, inv.IssueDate, inv.DueDate, inv.PlaceOfSupply, inv.Notes,
		inv.Subtotal, inv.TotalDiscount, inv.TotalTaxableValue, inv.TotalCGST, inv.TotalSGST,
		inv.TotalIGST, inv.TotalCESS, inv.TotalTax, inv.GrandTotal, inv.UpdatedAt,
		inv.TenantID, inv.ID)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrInvoiceNotFound
	}

	if err := replaceLines(ctx, tx, inv.ID, inv.Lines); err != nil {
		return fmt.Errorf("invoiceRepo.Update lines: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.Update commit: %w", err)
	}
	return nil
}

func (r *invoiceRepo) UpdateStatus(ctx context.Context, tenantID, invoiceID uuid.UUID, status domain.DocumentStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE invoices SET status = $1, updated_at = $2 WHERE tenant_id = $3 AND id = $4",
		status, time.Now().UTC(), tenantID, invoiceID)
	if err != nil {
		return fmt.Errorf("invoiceRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}
