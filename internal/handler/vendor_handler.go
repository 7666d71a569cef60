package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstbill/internal/service"
)

// VendorHandler handles vendor master data endpoints.
type VendorHandler struct {
	vendorService service.VendorService
}

// NewVendorHandler creates a new VendorHandler.
func NewVendorHandler(vendorService service.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// Create handles POST /api/v1/vendors
// @Summary Create a vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Param input body service.VendorInput true "Vendor details"
// @Success 201 {object} APIResponse{data=domain.Vendor} "Vendor created"
// @Failure 400 {object} APIResponse "Invalid GSTIN or PAN"
// @Security BearerAuth
// @Router /vendors [post]
func (h *VendorHandler) Create(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.VendorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	vendor, err := h.vendorService.Create(c.Request.Context(), tenantID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, vendor)
}

// List handles GET /api/v1/vendors
// @Summary List vendors
// @Tags vendors
// @Produce json
// @Param search query string false "Name substring filter"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} APIResponse{data=[]domain.Vendor,meta=PagMeta} "Vendors"
// @Security BearerAuth
// @Router /vendors [get]
func (h *VendorHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, limit := parsePagination(c)
	vendors, total, err := h.vendorService.List(c.Request.Context(), tenantID, c.Query("search"), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, vendors, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/vendors/:id
// @Summary Get vendor by ID
// @Tags vendors
// @Produce json
// @Param id path string true "Vendor ID (UUID)"
// @Success 200 {object} APIResponse{data=domain.Vendor} "Vendor"
// @Failure 404 {object} APIResponse "Vendor not found"
// @Security BearerAuth
// @Router /vendors/{id} [get]
func (h *VendorHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid vendor ID")
		return
	}

	vendor, err := h.vendorService.GetByID(c.Request.Context(), tenantID, vendorID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, vendor)
}

// Update handles PUT /api/v1/vendors/:id
// @Summary Update a vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Param id path string true "Vendor ID (UUID)"
// @Param input body service.VendorInput true "Vendor details"
// @Success 200 {object} APIResponse{data=domain.Vendor} "Vendor updated"
// @Failure 404 {object} APIResponse "Vendor not found"
// @Security BearerAuth
// @Router /vendors/{id} [put]
func (h *VendorHandler) Update(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid vendor ID")
		return
	}

	var input service.VendorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	vendor, err := h.vendorService.Update(c.Request.Context(), tenantID, vendorID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, vendor)
}

// Delete handles DELETE /api/v1/vendors/:id
// @Summary Deactivate a vendor
// @Tags vendors
// @Produce json
// @Param id path string true "Vendor ID (UUID)"
// @Success 200 {object} APIResponse "Vendor deactivated"
// @Failure 404 {object} APIResponse "Vendor not found"
// @Security BearerAuth
// @Router /vendors/{id} [delete]
func (h *VendorHandler) Delete(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid vendor ID")
		return
	}

	if err := h.vendorService.Delete(c.Request.Context(), tenantID, vendorID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "vendor deactivated"})
}
