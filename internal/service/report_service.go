package service

import (
	"context"

	"github.com/google/uuid"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

// ReportService exposes read-only reporting views over issued documents.
type ReportService interface {
	TDSSummary(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) ([]domain.TDSSummaryRow, error)
	InvoiceRegister(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) ([]domain.InvoiceRegisterRow, int, error)
	GSTSummary(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) ([]domain.GSTSummaryRow, error)
}

type reportService struct {
	reportRepo port.ReportRepository
}

// NewReportService creates a new ReportService implementation.
func NewReportService(reportRepo port.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) TDSSummary(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) ([]domain.TDSSummaryRow, error) {
	return s.reportRepo.TDSSummary(ctx, tenantID, filters)
}

func (s *reportService) InvoiceRegister(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) ([]domain.InvoiceRegisterRow, int, error) {
	return s.reportRepo.InvoiceRegister(ctx, tenantID, filters)
}

func (s *reportService) GSTSummary(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) ([]domain.GSTSummaryRow, error) {
	return s.reportRepo.GSTSummary(ctx, tenantID, filters)
}
