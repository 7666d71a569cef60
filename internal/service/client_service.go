package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gstbill/internal/domain"
	"gstbill/internal/port"
	"gstbill/internal/tax"
)

// ClientInput is the DTO for creating or updating a client.
type ClientInput struct {
	Name    string `json:"name" binding:"required"`
	GSTIN   string `json:"gstin"`
	PAN     string `json:"pan"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// ClientService manages client master data.
type ClientService interface {
	Create(ctx context.Context, tenantID uuid.UUID, input ClientInput) (*domain.Client, error)
	GetByID(ctx context.Context, tenantID, clientID uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, tenantID uuid.UUID, search string, offset, limit int) ([]domain.Client, int, error)
	Update(ctx context.Context, tenantID, clientID uuid.UUID, input ClientInput) (*domain.Client, error)
	Delete(ctx context.Context, tenantID, clientID uuid.UUID) error
}

type clientService struct {
	clientRepo port.ClientRepository
}

// NewClientService creates a new ClientService implementation.
func NewClientService(clientRepo port.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) Create(ctx context.Context, tenantID uuid.UUID, input ClientInput) (*domain.Client, error) {
	if err := validateGSTIN(input.GSTIN); err != nil {
		return nil, err
	}
	if err := validatePAN(input.PAN); err != nil {
		return nil, err
	}

	client := &domain.Client{
		TenantID: tenantID,
		Name:     input.Name,
		GSTIN:    input.GSTIN,
		PAN:      input.PAN,
		// State code follows the GSTIN prefix; empty when unregistered.
		StateCode: tax.StateCodeFromGSTIN(input.GSTIN),
		Address:   input.Address,
		Email:     input.Email,
		Phone:     input.Phone,
		IsActive:  true,
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("clientService.Create: %w", err)
	}
	return client, nil
}

func (s *clientService) GetByID(ctx context.Context, tenantID, clientID uuid.UUID) (*domain.Client, error) {
	return s.clientRepo.GetByID(ctx, tenantID, clientID)
}

func (s *clientService) List(ctx context.Context, tenantID uuid.UUID, search string, offset, limit int) ([]domain.Client, int, error) {
	return s.clientRepo.List(ctx, tenantID, search, offset, limit)
}

func (s *clientService) Update(ctx context.Context, tenantID, clientID uuid.UUID, input ClientInput) (*domain.Client, error) {
	if err := validateGSTIN(input.GSTIN); err != nil {
		return nil, err
	}
	if err := validatePAN(input.PAN); err != nil {
		return nil, err
	}

	client, err := s.clientRepo.GetByID(ctx, tenantID, clientID)
	if err != nil {
		return nil, err
	}

	client.Name = input.Name
	client.GSTIN = input.GSTIN
	client.PAN = input.PAN
	client.StateCode = tax.StateCodeFromGSTIN(input.GSTIN)
	client.Address = input.Address
	client.Email = input.Email
	client.Phone = input.Phone

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("clientService.Update: %w", err)
	}
	return client, nil
}

func (s *clientService) Delete(ctx context.Context, tenantID, clientID uuid.UUID) error {
	return s.clientRepo.Delete(ctx, tenantID, clientID)
}
