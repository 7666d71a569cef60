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

type vendorRepo struct {
	db *sqlx.DB
}

// NewVendorRepo creates a new PostgreSQL-backed VendorRepository.
func NewVendorRepo(db *sqlx.DB) port.VendorRepository {
	return &vendorRepo{db: db}
}

func (r *vendorRepo) Create(ctx context.Context, vendor *domain.Vendor) error {
	vendor.ID = uuid.New()
	now := time.Now().UTC()
	vendor.CreatedAt = now
	vendor.UpdatedAt = now

	query := `INSERT INTO vendors (id, tenant_id, name, gstin, pan, state_code, address, email, phone,
		tds_section, tds_rate, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(ctx, query,
		vendor.ID, vendor.TenantID, vendor.Name, vendor.GSTIN, vendor.PAN, vendor.StateCode,
		vendor.Address, vendor.Email, vendor.Phone, vendor.TDSSection, vendor.TDSRate,
		vendor.IsActive, vendor.CreatedAt, vendor.UpdatedAt)
	if err != nil {
		return fmt.Errorf("vendorRepo.Create: %w", err)
	}
	return nil
}

func (r *vendorRepo) GetByID(ctx context.Context, tenantID, vendorID uuid.UUID) (*domain.Vendor, error) {
	var vendor domain.Vendor
	err := r.db.GetContext(ctx, &vendor,
		"SELECT * FROM vendors WHERE tenant_id = $1 AND id = $2", tenantID, vendorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVendorNotFound
		}
		return nil, fmt.Errorf("vendorRepo.GetByID: %w", err)
	}
	return &vendor, nil
}

func (r *vendorRepo) List(ctx context.Context, tenantID uuid.UUID, search string, offset, limit int) ([]domain.Vendor, int, error) {
	where := "WHERE tenant_id = $1"
	args := []interface{}{tenantID}
	if search != "" {
		where += " AND (name ILIKE $2 OR gstin ILIKE $2)"
		args = append(args, "%"+search+"%")
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM vendors "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("vendorRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM vendors %s ORDER BY name ASC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var vendors []domain.Vendor
	err = r.db.SelectContext(ctx, &vendors, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("vendorRepo.List: %w", err)
	}
	return vendors, total, nil
}

func (r *vendorRepo) Update(ctx context.Context, vendor *domain.Vendor) error {
	vendor.UpdatedAt = time.Now().UTC()
	query := `UPDATE vendors SET name = $1, gstin = $2, pan = $3, state_code = $4, address = $5,
		email = $6, phone = $7, tds_section = $8, tds_rate = $9, is_active = $10, updated_at = $11
		WHERE tenant_id = $12 AND id = $13`
	result, err := r.db.ExecContext(ctx, query,
		vendor.Name, vendor.GSTIN, vendor.PAN, vendor.StateCode, vendor.Address,
		vendor.Email, vendor.Phone, vendor.TDSSection, vendor.TDSRate, vendor.IsActive,
		vendor.UpdatedAt, vendor.TenantID, vendor.ID)
	if err != nil {
		return fmt.Errorf("vendorRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrVendorNotFound
	}
	return nil
}

func (r *vendorRepo) Delete(ctx context.Context, tenantID, vendorID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM vendors WHERE tenant_id = $1 AND id = $2", tenantID, vendorID)
	if err != nil {
		return fmt.Errorf("vendorRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrVendorNotFound
	}
	return nil
}
