package port

import (
	"context"

	"github.com/google/uuid"

	"gstbill/internal/domain"
)

// TenantRepository defines the contract for tenant persistence.
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
}

// UserRepository defines the contract for user persistence.
// All query methods include tenantID to enforce tenant isolation at the data layer.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, tenantID, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.User, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, tenantID, userID uuid.UUID) error
}

// ClientRepository defines the contract for client master data.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, tenantID, clientID uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, tenantID uuid.UUID, search string, offset, limit int) ([]domain.Client, int, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, tenantID, clientID uuid.UUID) error
}

// VendorRepository defines the contract for vendor master data.
type VendorRepository interface {
	Create(ctx context.Context, vendor *domain.Vendor) error
	GetByID(ctx context.Context, tenantID, vendorID uuid.UUID) (*domain.Vendor, error)
	List(ctx context.Context, tenantID uuid.UUID, search string, offset, limit int) ([]domain.Vendor, int, error)
	Update(ctx context.Context, vendor *domain.Vendor) error
	Delete(ctx context.Context, tenantID, vendorID uuid.UUID) error
}
