package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gstbill/internal/domain"
	"gstbill/internal/export"
	"gstbill/internal/service"
)

// ReportHandler handles report endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// parseReportFilters extracts common report filter parameters from query params.
func parseReportFilters(c *gin.Context) (*domain.ReportFilters, error) {
	filters := &domain.ReportFilters{
		Offset: 0,
		Limit:  100,
	}

	if fromStr := c.Query("from"); fromStr != "" {
		t, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return nil, fmt.Errorf("invalid 'from' date: must be YYYY-MM-DD")
		}
		filters.From = &t
	}
	if toStr := c.Query("to"); toStr != "" {
		t, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return nil, fmt.Errorf("invalid 'to' date: must be YYYY-MM-DD")
		}
		filters.To = &t
	}

	if offsetStr := c.Query("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return nil, fmt.Errorf("invalid 'offset': must be an integer")
		}
		filters.Offset = offset
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return nil, fmt.Errorf("invalid 'limit': must be an integer")
		}
		filters.Limit = limit
	}

	return filters, nil
}

// TDS handles GET /api/v1/reports/tds
// @Summary      TDS summary report
// @Description  Per-vendor tax-deducted-at-source totals; format=xlsx downloads a workbook
// @Tags         reports
// @Produce      json
// @Param        from query string false "Start date (YYYY-MM-DD)"
// @Param        to query string false "End date (YYYY-MM-DD)"
// @Param        format query string false "Output format" Enums(json, xlsx) default(json)
// @Success      200 {object} APIResponse{data=[]domain.TDSSummaryRow}
// @Failure      400 {object} APIResponse
// @Security     BearerAuth
// @Router       /reports/tds [get]
func (h *ReportHandler) TDS(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	filters, err := parseReportFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	rows, err := h.reportService.TDSSummary(c.Request.Context(), tenantID, filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	if c.Query("format") == "xlsx" {
		data, err := export.TDSSummaryXLSX(rows)
		if err != nil {
			HandleError(c, err)
			return
		}
		fileName := export.BuildFilename("tds_summary", "xlsx")
		c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
		return
	}

	RespondOK(c, rows)
}

// InvoiceRegister handles GET /api/v1/reports/invoice-register
// @Summary      Invoice register report
// @Description  Chronological register of issued invoices; format=xlsx or format=csv downloads a file
// @Tags         reports
// @Produce      json
// @Param        from query string false "Start date (YYYY-MM-DD)"
// @Param        to query string false "End date (YYYY-MM-DD)"
// @Param        format query string false "Output format" Enums(json, xlsx, csv) default(json)
// @Param        offset query int false "Pagination offset" default(0)
// @Param        limit query int false "Pagination limit" default(100)
// @Success      200 {object} APIResponse{data=[]domain.InvoiceRegisterRow,meta=PagMeta}
// @Failure      400 {object} APIResponse
// @Security     BearerAuth
// @Router       /reports/invoice-register [get]
func (h *ReportHandler) InvoiceRegister(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	filters, err := parseReportFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	format := c.Query("format")
	if format == "xlsx" || format == "csv" {
		// File exports cover the whole window, not one page.
		filters.Offset = 0
		filters.Limit = 10000
	}

	rows, total, err := h.reportService.InvoiceRegister(c.Request.Context(), tenantID, filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	switch format {
	case "xlsx":
		data, err := export.InvoiceRegisterXLSX(rows)
		if err != nil {
			HandleError(c, err)
			return
		}
		fileName := export.BuildFilename("invoice_register", "xlsx")
		c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	case "csv":
		data, err := export.InvoiceRegisterCSV(rows)
		if err != nil {
			HandleError(c, err)
			return
		}
		fileName := export.BuildFilename("invoice_register", "csv")
		c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
	default:
		RespondPaginated(c, rows, PagMeta{Total: total, Offset: filters.Offset, Limit: filters.Limit})
	}
}

// GSTSummary handles GET /api/v1/reports/gst-summary
// @Summary      GST summary report
// @Description  Output tax liability for the period, split by document type
// @Tags         reports
// @Produce      json
// @Param        from query string false "Start date (YYYY-MM-DD)"
// @Param        to query string false "End date (YYYY-MM-DD)"
// @Success      200 {object} APIResponse{data=[]domain.GSTSummaryRow}
// @Failure      400 {object} APIResponse
// @Security     BearerAuth
// @Router       /reports/gst-summary [get]
func (h *ReportHandler) GSTSummary(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	filters, err := parseReportFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	rows, err := h.reportService.GSTSummary(c.Request.Context(), tenantID, filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rows)
}
