package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
	"gstbill/internal/service"
)

func TestClientCreate_DerivesStateFromGSTIN(t *testing.T) {
	repo := new(MockClientRepo)
	svc := service.NewClientService(repo)
	tenantID := uuid.New()

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Client")).Return(nil)

	client, err := svc.Create(context.Background(), tenantID, service.ClientInput{
		Name:  "Globex",
		GSTIN: "27ABCDE1234F1Z5",
		PAN:   "ABCDE1234F",
	})

	assert.NoError(t, err)
	assert.Equal(t, "27", client.StateCode)
	assert.True(t, client.IsActive)
}

func TestClientCreate_UnregisteredHasNoState(t *testing.T) {
	repo := new(MockClientRepo)
	svc := service.NewClientService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Client")).Return(nil)

	client, err := svc.Create(context.Background(), uuid.New(), service.ClientInput{Name: "Walk-in"})

	assert.NoError(t, err)
	assert.Empty(t, client.StateCode)
}

func TestClientCreate_RejectsBadIdentifiers(t *testing.T) {
	repo := new(MockClientRepo)
	svc := service.NewClientService(repo)

	_, err := svc.Create(context.Background(), uuid.New(), service.ClientInput{Name: "X", GSTIN: "not-a-gstin"})
	assert.ErrorIs(t, err, domain.ErrInvalidGSTIN)

	_, err = svc.Create(context.Background(), uuid.New(), service.ClientInput{Name: "X", PAN: "not-a-pan"})
	assert.ErrorIs(t, err, domain.ErrInvalidPAN)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestClientUpdate_RederivesState(t *testing.T) {
	repo := new(MockClientRepo)
	svc := service.NewClientService(repo)
	tenantID, clientID := uuid.New(), uuid.New()
	existing := &domain.Client{ID: clientID, TenantID: tenantID, Name: "Globex", GSTIN: "27ABCDE1234F1Z5", StateCode: "27"}

	repo.On("GetByID", mock.Anything, tenantID, clientID).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Client")).Return(nil)

	client, err := svc.Update(context.Background(), tenantID, clientID, service.ClientInput{
		Name:  "Globex Karnataka",
		GSTIN: "29ABCDE1234F1Z5",
	})

	assert.NoError(t, err)
	assert.Equal(t, "29", client.StateCode)
}
