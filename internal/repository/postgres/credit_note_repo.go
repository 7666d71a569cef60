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

type creditNoteRepo struct {
	db *sqlx.DB
}

// NewCreditNoteRepo creates a new PostgreSQL-backed CreditNoteRepository.
func NewCreditNoteRepo(db *sqlx.DB) port.CreditNoteRepository {
	return &creditNoteRepo{db: db}
}

func (r *creditNoteRepo) Create(ctx context.Context, note *domain.CreditNote) error {
	note.ID = uuid.New()
	now := time.Now().UTC()
	note.CreatedAt = now
	note.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("creditNoteRepo.Create begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `INSERT INTO credit_notes (id, tenant_id, client_id, invoice_id, kind, number, status, issue_date, reason,
		subtotal, total_discount, total_taxable_value, total_cgst, total_sgst, total_igst, total_cess,
		total_tax, grand_total, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err = tx.ExecContext(ctx, query,
		note.ID, note.TenantID, note.ClientID, note.InvoiceID, note.Kind, note.Number, note.Status,
		note.IssueDate, note.Reason,
		note.Subtotal, note.TotalDiscount, note.TotalTaxableValue, note.TotalCGST, note.TotalSGST,
		note.TotalIGST, note.TotalCESS, note.TotalTax, note.GrandTotal,
		note.CreatedBy, note.CreatedAt, note.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creditNoteRepo.Create: %w", err)
	}

	if err := replaceLines(ctx, tx, note.ID, note.Lines); err != nil {
		return fmt.Errorf("creditNoteRepo.Create lines: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("creditNoteRepo.Create commit: %w", err)
	}
	return nil
}

func (r *creditNoteRepo) GetByID(ctx context.Context, tenantID, noteID uuid.UUID) (*domain.CreditNote, error) {
	var note domain.CreditNote
	err := r.db.GetContext(ctx, &note,
		"SELECT * FROM credit_notes WHERE tenant_id = $1 AND id = $2", tenantID, noteID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("creditNoteRepo.GetByID: %w", err)
	}

	lines, err := loadLines(ctx, r.db, note.ID)
	if err != nil {
		return nil, fmt.Errorf("creditNoteRepo.GetByID: %w", err)
	}
	note.Lines = lines
	return &note, nil
}

func (r *creditNoteRepo) List(ctx context.Context, tenantID uuid.UUID, kind domain.NoteKind, offset, limit int) ([]domain.CreditNote, int, error) {
	where := "WHERE tenant_id = $1"
	args := []interface{}{tenantID}
	if kind != "" {
		where += " AND kind = $2"
		args = append(args, kind)
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM credit_notes "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("creditNoteRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM credit_notes %s ORDER BY issue_date DESC, number DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var notes []domain.CreditNote
	err = r.db.SelectContext(ctx, &notes, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("creditNoteRepo.List: %w", err)
	}
	return notes, total, nil
}

func (r *creditNoteRepo) Update(ctx context.Context, note *domain.CreditNote) error {
	note.UpdatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("creditNoteRepo.Update begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `UPDATE credit_notes SET issue_date = $1, reason = $2,
		subtotal = $3, total_discount = $4, total_taxable_value = $5, total_cgst = $6, total_sgst = $7,
		total_igst = $8, total_cess = $9, total_tax = $10, grand_total = $11, updated_at = $12
		WHERE tenant_id = $13 AND id = $14`
	result, err := tx.ExecContext(ctx, query,
		note.IssueDate, note.Reason,
		note.Subtotal, note.TotalDiscount, note.TotalTaxableValue, note.TotalCGST, note.TotalSGST,
		note.TotalIGST, note.TotalCESS, note.TotalTax, note.GrandTotal, note.UpdatedAt,
		note.TenantID, note.ID)
	if err != nil {
		return fmt.Errorf("creditNoteRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}

	if err := replaceLines(ctx, tx, note.ID, note.Lines); err != nil {
		return fmt.Errorf("creditNoteRepo.Update lines: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("creditNoteRepo.Update commit: %w", err)
	}
	return nil
}

func (r *creditNoteRepo) UpdateStatus(ctx context.Context, tenantID, noteID uuid.UUID, status domain.DocumentStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE credit_notes SET status = $1, updated_at = $2 WHERE tenant_id = $3 AND id = $4",
		status, time.Now().UTC(), tenantID, noteID)
	if err != nil {
		return fmt.Errorf("creditNoteRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
