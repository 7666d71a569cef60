package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstbill/internal/domain"
)

// replaceLines deletes and re-inserts the full line set for a document inside
// the caller's transaction. Lines are always written as one batch so stored
// derived values come from a single recompute.
func replaceLines(ctx context.Context, tx *sqlx.Tx, documentID uuid.UUID, lines []domain.DocumentLine) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM document_lines WHERE document_id = $1", documentID); err != nil {
		return fmt.Errorf("replaceLines delete: %w", err)
	}

	query := `INSERT INTO document_lines (id, document_id, position, description, hsn_sac_code, unit,
		quantity, unit_price, discount_percent, cgst_rate, sgst_rate, igst_rate, cess_rate,
		taxable_value, cgst_amount, sgst_amount, igst_amount, cess_amount, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	for i := range lines {
		l := &lines[i]
		l.ID = uuid.New()
		l.DocumentID = documentID
		l.Position = i
		_, err := tx.ExecContext(ctx, query,
			l.ID, l.DocumentID, l.Position, l.Description, l.HSNSACCode, l.Unit,
			l.Quantity, l.UnitPrice, l.DiscountPercent, l.CGSTRate, l.SGSTRate, l.IGSTRate, l.CessRate,
			l.TaxableValue, l.CGSTAmount, l.SGSTAmount, l.IGSTAmount, l.CessAmount, l.LineTotal)
		if err != nil {
			return fmt.Errorf("replaceLines insert: %w", err)
		}
	}
	return nil
}

// loadLines fetches a document's lines in position order.
func loadLines(ctx context.Context, db *sqlx.DB, documentID uuid.UUID) ([]domain.DocumentLine, error) {
	var lines []domain.DocumentLine
	err := db.SelectContext(ctx, &lines,
		"SELECT * FROM document_lines WHERE document_id = $1 ORDER BY position ASC", documentID)
	if err != nil {
		return nil, fmt.Errorf("loadLines: %w", err)
	}
	return lines, nil
}
