package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gstbill/internal/domain"
	"gstbill/internal/port"
	"gstbill/internal/tax"
)

// VendorInput is the DTO for creating or updating a vendor.
type VendorInput struct {
	Name       string  `json:"name" binding:"required"`
	GSTIN      string  `json:"gstin"`
	PAN        string  `json:"pan"`
	Address    string  `json:"address"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	TDSSection string  `json:"tds_section"`
	TDSRate    float64 `json:"tds_rate" binding:"gte=0,lte=30"`
}

// VendorService manages vendor master data.
type VendorService interface {
	Create(ctx context.Context, tenantID uuid.UUID, input VendorInput) (*domain.Vendor, error)
	GetByID(ctx context.Context, tenantID, vendorID uuid.UUID) (*domain.Vendor, error)
	List(ctx context.Context, tenantID uuid.UUID, search string, offset, limit int) ([]domain.Vendor, int, error)
	Update(ctx context.Context, tenantID, vendorID uuid.UUID, input VendorInput) (*domain.Vendor, error)
	Delete(ctx context.Context, tenantID, vendorID uuid.UUID) error
}

type vendorService struct {
	vendorRepo port.VendorRepository
}

// NewVendorService creates a new VendorService implementation.
func NewVendorService(vendorRepo port.VendorRepository) VendorService {
	return &vendorService{vendorRepo: vendorRepo}
}

func (s *vendorService) Create(ctx context.Context, tenantID uuid.UUID, input VendorInput) (*domain.Vendor, error) {
	if err := validateGSTIN(input.GSTIN); err != nil {
		return nil, err
	}
	if err := validatePAN(input.PAN); err != nil {
		return nil, err
	}

	vendor := &domain.Vendor{
		TenantID:   tenantID,
		Name:       input.Name,
		GSTIN:      input.GSTIN,
		PAN:        input.PAN,
		StateCode:  tax.StateCodeFromGSTIN(input.GSTIN),
		Address:    input.Address,
		Email:      input.Email,
		Phone:      input.Phone,
		TDSSection: input.TDSSection,
		TDSRate:    input.TDSRate,
		IsActive:   true,
	}
	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, fmt.Errorf("vendorService.Create: %w", err)
	}
	return vendor, nil
}

func (s *vendorService) GetByID(ctx context.Context, tenantID, vendorID uuid.UUID) (*domain.Vendor, error) {
	return s.vendorRepo.GetByID(ctx, tenantID, vendorID)
}

func (s *vendorService) List(ctx context.Context, tenantID uuid.UUID, search string, offset, limit int) ([]domain.Vendor, int, error) {
	return s.vendorRepo.List(ctx, tenantID, search, offset, limit)
}

func (s *vendorService) Update(ctx context.Context, tenantID, vendorID uuid.UUID, input VendorInput) (*domain.Vendor, error) {
	if err := validateGSTIN(input.GSTIN); err != nil {
		return nil, err
	}
	if err := validatePAN(input.PAN); err != nil {
		return nil, err
	}

	vendor, err := s.vendorRepo.GetByID(ctx, tenantID, vendorID)
	if err != nil {
		return nil, err
	}

	vendor.Name = input.Name
	vendor.GSTIN = input.GSTIN
	vendor.PAN = input.PAN
	vendor.StateCode = tax.StateCodeFromGSTIN(input.GSTIN)
	vendor.Address = input.Address
	vendor.Email = input.Email
	vendor.Phone = input.Phone
	vendor.TDSSection = input.TDSSection
	vendor.TDSRate = input.TDSRate

	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, fmt.Errorf("vendorService.Update: %w", err)
	}
	return vendor, nil
}

func (s *vendorService) Delete(ctx context.Context, tenantID, vendorID uuid.UUID) error {
	return s.vendorRepo.Delete(ctx, tenantID, vendorID)
}
