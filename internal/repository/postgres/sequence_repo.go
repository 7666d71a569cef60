package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

type sequenceRepo struct {
	db *sqlx.DB
}

// NewSequenceRepo creates a new PostgreSQL-backed SequenceRepository.
func NewSequenceRepo(db *sqlx.DB) port.SequenceRepository {
	return &sequenceRepo{db: db}
}

// Next atomically increments and returns the counter for (tenant, kind,
// fiscal year). The upsert makes the first call for a new year start at 1.
func (r *sequenceRepo) Next(ctx context.Context, tenantID uuid.UUID, kind domain.DocumentKind, fiscalYear string) (int64, error) {
	query := `INSERT INTO document_sequences (tenant_id, kind, fiscal_year, counter)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (tenant_id, kind, fiscal_year)
		DO UPDATE SET counter = document_sequences.counter + 1
		RETURNING counter`

	var counter int64
	err := r.db.GetContext(ctx, &counter, query, tenantID, kind, fiscalYear)
	if err != nil {
		return 0, fmt.Errorf("sequenceRepo.Next: %w", err)
	}
	return counter, nil
}
