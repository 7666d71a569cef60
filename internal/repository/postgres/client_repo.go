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

type clientRepo struct {
	db *sqlx.DB
}

// NewClientRepo creates a new PostgreSQL-backed ClientRepository.
func NewClientRepo(db *sqlx.DB) port.ClientRepository {
	return &clientRepo{db: db}
}

func (r *clientRepo) Create(ctx context.Context, client *domain.Client) error {
	client.ID = uuid.New()
	now := time.Now().UTC()
	client.CreatedAt = now
	client.UpdatedAt = now

	query := `INSERT INTO clients (id, tenant_id, name, gstin, pan, state_code, address, email, phone, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		client.ID, client.TenantID, client.Name, client.GSTIN, client.PAN, client.StateCode,
		client.Address, client.Email, client.Phone, client.IsActive, client.CreatedAt, client.UpdatedAt)
	if err != nil {
		return fmt.Errorf("clientRepo.Create: %w", err)
	}
	return nil
}

func (r *clientRepo) GetByID(ctx context.Context, tenantID, clientID uuid.UUID) (*domain.Client, error) {
	var client domain.Client
	err := r.db.GetContext(ctx, &client,
		"SELECT * FROM clients WHERE tenant_id = $1 AND id = $2", tenantID, clientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("clientRepo.GetByID: %w", err)
	}
	return &client, nil
}

func (r *clientRepo) List(ctx context.Context, tenantID uuid.UUID, search string, offset, limit int) ([]domain.Client, int, error) {
	where := "WHERE tenant_id = $1"
	args := []interface{}{tenantID}
	if search != "" {
		where += " AND (name ILIKE $2 OR gstin ILIKE $2)"
		args = append(args, "%"+search+"%")
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM clients "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("clientRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM clients %s ORDER BY name ASC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var clients []domain.Client
	err = r.db.SelectContext(ctx, &clients, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("clientRepo.List: %w", err)
	}
	return clients, total, nil
}

func (r *clientRepo) Update(ctx context.Context, client *domain.Client) error {
	client.UpdatedAt = time.Now().UTC()
	query := `UPDATE clients SET name = $1, gstin = $2, pan = $3, state_code = $4, address = $5,
		email = $6, phone = $7, is_active = $8, updated_at = $9
		WHERE tenant_id = $10 AND id = $11`
	result, err := r.db.ExecContext(ctx, query,
		client.Name, client.GSTIN, client.PAN, client.StateCode, client.Address,
		client.Email, client.Phone, client.IsActive, client.UpdatedAt, client.TenantID, client.ID)
	if err != nil {
		return fmt.Errorf("clientRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func (r *clientRepo) Delete(ctx context.Context, tenantID, clientID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM clients WHERE tenant_id = $1 AND id = $2", tenantID, clientID)
	if err != nil {
		return fmt.Errorf("clientRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}
