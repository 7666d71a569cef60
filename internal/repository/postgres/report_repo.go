package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

type reportRepo struct {
	db *sqlx.DB
}

// NewReportRepo creates a new PostgreSQL-backed ReportRepository.
func NewReportRepo(db *sqlx.DB) port.ReportRepository {
	return &reportRepo{db: db}
}

func dateWindow(filters *domain.ReportFilters, column string, argOffset int) (string, []interface{}) {
	clause := ""
	var args []interface{}
	if filters == nil {
		return clause, args
	}
	if filters.From != nil {
		clause += fmt.Sprintf(" AND %s >= $%d", column, argOffset+len(args)+1)
		args = append(args, *filters.From)
	}
	if filters.To != nil {
		clause += fmt.Sprintf(" AND %s <= $%d", column, argOffset+len(args)+1)
		args = append(args, *filters.To)
	}
	return clause, args
}

func (r *reportRepo) TDSSummary(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) ([]domain.TDSSummaryRow, error) {
	clause, extra := dateWindow(filters, "b.bill_date", 1)
	query := `SELECT
			v.id AS vendor_id,
			v.name AS vendor_name,
			v.pan AS vendor_pan,
			v.tds_section,
			COUNT(b.id) AS bill_count,
			COALESCE(SUM(b.total_taxable_value), 0) AS taxable_amount,
			COALESCE(SUM(b.tds_amount), 0) AS tds_deducted,
			COALESCE(SUM(b.net_payable), 0) AS net_paid
		FROM bills b
		JOIN vendors v ON v.id = b.vendor_id
		WHERE b.tenant_id = $1 AND b.status != 'cancelled' AND b.tds_amount > 0` + clause + `
		GROUP BY v.id, v.name, v.pan, v.tds_section
		ORDER BY tds_deducted DESC`

	args := append([]interface{}{tenantID}, extra...)
	var rows []domain.TDSSummaryRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("reportRepo.TDSSummary: %w", err)
	}
	return rows, nil
}

func (r *reportRepo) InvoiceRegister(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) ([]domain.InvoiceRegisterRow, int, error) {
	clause, extra := dateWindow(filters, "i.issue_date", 1)

	countQuery := `SELECT COUNT(*) FROM invoices i WHERE i.tenant_id = $1 AND i.status != 'draft'` + clause
	countArgs := append([]interface{}{tenantID}, extra...)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("reportRepo.InvoiceRegister count: %w", err)
	}

	offset, limit := 0, 100
	if filters != nil {
		offset = filters.Offset
		if filters.Limit > 0 {
			limit = filters.Limit
		}
	}

	query := `SELECT
			i.number,
			i.status,
			i.issue_date,
			i.due_date,
			c.name AS client_name,
			c.gstin AS client_gstin,
			i.place_of_supply,
			i.total_taxable_value AS taxable_value,
			i.total_cgst AS cgst,
			i.total_sgst AS sgst,
			i.total_igst AS igst,
			i.total_cess AS cess,
			i.grand_total,
			COALESCE((SELECT SUM(p.amount) FROM payments p WHERE p.invoice_id = i.id), 0) AS amount_paid
		FROM invoices i
		JOIN clients c ON c.id = i.client_id
		WHERE i.tenant_id = $1 AND i.status != 'draft'` + clause +
		fmt.Sprintf(" ORDER BY i.issue_date ASC, i.number ASC LIMIT $%d OFFSET $%d", len(countArgs)+1, len(countArgs)+2)

	args := append(countArgs, limit, offset)
	var rows []domain.InvoiceRegisterRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("reportRepo.InvoiceRegister: %w", err)
	}
	return rows, total, nil
}

func (r *reportRepo) GSTSummary(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) ([]domain.GSTSummaryRow, error) {
	invClause, invArgs := dateWindow(filters, "issue_date", 1)
	noteClause, noteArgs := dateWindow(filters, "issue_date", 1+len(invArgs))

	// Credit notes reduce liability, debit notes and invoices add to it.
	query := `SELECT 'invoice' AS document_type, COUNT(*) AS document_count,
			COALESCE(SUM(total_taxable_value), 0) AS taxable_value,
			COALESCE(SUM(total_cgst), 0) AS cgst,
			COALESCE(SUM(total_sgst), 0) AS sgst,
			COALESCE(SUM(total_igst), 0) AS igst,
			COALESCE(SUM(total_cess), 0) AS cess,
			COALESCE(SUM(total_tax), 0) AS total_tax
		FROM invoices WHERE tenant_id = $1 AND status = 'issued'` + invClause + `
		UNION ALL
		SELECT kind || '_note', COUNT(*),
			COALESCE(SUM(total_taxable_value), 0),
			COALESCE(SUM(total_cgst), 0),
			COALESCE(SUM(total_sgst), 0),
			COALESCE(SUM(total_igst), 0),
			COALESCE(SUM(total_cess), 0),
			COALESCE(SUM(total_tax), 0)
		FROM credit_notes WHERE tenant_id = $1 AND status = 'issued'` + noteClause + `
		GROUP BY kind`

	args := append([]interface{}{tenantID}, append(invArgs, noteArgs...)...)
	var rows []domain.GSTSummaryRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("reportRepo.GSTSummary: %w", err)
	}
	return rows, nil
}
