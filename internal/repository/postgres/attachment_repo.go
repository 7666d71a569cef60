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

type attachmentRepo struct {
	db *sqlx.DB
}

// NewAttachmentRepo creates a new PostgreSQL-backed AttachmentRepository.
func NewAttachmentRepo(db *sqlx.DB) port.AttachmentRepository {
	return &attachmentRepo{db: db}
}

func (r *attachmentRepo) Create(ctx context.Context, att *domain.Attachment) error {
	att.ID = uuid.New()
	att.CreatedAt = time.Now().UTC()

	query := `INSERT INTO attachments (id, tenant_id, document_id, file_name, original_name, content_type,
		file_size, storage_key, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query,
		att.ID, att.TenantID, att.DocumentID, att.FileName, att.OriginalName, att.ContentType,
		att.FileSize, att.StorageKey, att.UploadedBy, att.CreatedAt)
	if err != nil {
		return fmt.Errorf("attachmentRepo.Create: %w", err)
	}
	return nil
}

func (r *attachmentRepo) GetByID(ctx context.Context, tenantID, attachmentID uuid.UUID) (*domain.Attachment, error) {
	var att domain.Attachment
	err := r.db.GetContext(ctx, &att,
		"SELECT * FROM attachments WHERE tenant_id = $1 AND id = $2", tenantID, attachmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("attachmentRepo.GetByID: %w", err)
	}
	return &att, nil
}

func (r *attachmentRepo) ListByDocument(ctx context.Context, tenantID, documentID uuid.UUID) ([]domain.Attachment, error) {
	var atts []domain.Attachment
	err := r.db.SelectContext(ctx, &atts,
		"SELECT * FROM attachments WHERE tenant_id = $1 AND document_id = $2 ORDER BY created_at ASC",
		tenantID, documentID)
	if err != nil {
		return nil, fmt.Errorf("attachmentRepo.ListByDocument: %w", err)
	}
	return atts, nil
}

func (r *attachmentRepo) Delete(ctx context.Context, tenantID, attachmentID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM attachments WHERE tenant_id = $1 AND id = $2", tenantID, attachmentID)
	if err != nil {
		return fmt.Errorf("attachmentRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
