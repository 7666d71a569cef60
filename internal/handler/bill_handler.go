package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstbill/internal/domain"
	"gstbill/internal/service"
)

// BillHandler handles vendor purchase bill endpoints.
type BillHandler struct {
	billService       service.BillService
	attachmentService service.AttachmentService
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(billService service.BillService, attachmentService service.AttachmentService) *BillHandler {
	return &BillHandler{billService: billService, attachmentService: attachmentService}
}

// Create handles POST /api/v1/bills
// @Summary Record a vendor bill
// @Description Record a purchase bill; tax amounts, TDS deduction, and net payable are computed server-side
// @Tags bills
// @Accept json
// @Produce json
// @Param input body service.BillInput true "Bill details"
// @Success 201 {object} APIResponse{data=domain.Bill} "Bill recorded"
// @Failure 404 {object} APIResponse "Vendor not found"
// @Security BearerAuth
// @Router /bills [post]
func (h *BillHandler) Create(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.BillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	bill, err := h.billService.Create(c.Request.Context(), tenantID, userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, bill)
}

// List handles GET /api/v1/bills
// @Summary List vendor bills
// @Tags bills
// @Produce json
// @Param status query string false "Status filter (unpaid, partially_paid, paid, cancelled)"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} APIResponse{data=[]domain.Bill,meta=PagMeta} "Bills"
// @Security BearerAuth
// @Router /bills [get]
func (h *BillHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, limit := parsePagination(c)
	status := domain.BillStatus(c.Query("status"))

	bills, total, err := h.billService.List(c.Request.Context(), tenantID, status, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, bills, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/bills/:id
// @Summary Get bill by ID
// @Tags bills
// @Produce json
// @Param id path string true "Bill ID (UUID)"
// @Success 200 {object} APIResponse{data=domain.Bill} "Bill with lines"
// @Failure 404 {object} APIResponse "Bill not found"
// @Security BearerAuth
// @Router /bills/{id} [get]
func (h *BillHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	billID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid bill ID")
		return
	}

	bill, err := h.billService.GetByID(c.Request.Context(), tenantID, billID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, bill)
}

// Update handles PUT /api/v1/bills/:id
// @Summary Update a vendor bill
// @Tags bills
// @Accept json
// @Produce json
// @Param id path string true "Bill ID (UUID)"
// @Param input body service.BillInput true "Bill details"
// @Success 200 {object} APIResponse{data=domain.Bill} "Bill updated"
// @Failure 409 {object} APIResponse "Bill is cancelled"
// @Security BearerAuth
// @Router /bills/{id} [put]
func (h *BillHandler) Update(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	billID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid bill ID")
		return
	}

	var input service.BillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	bill, err := h.billService.Update(c.Request.Context(), tenantID, billID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, bill)
}

// RecordPayment handles POST /api/v1/bills/:id/payments
// @Summary Record a payment against a bill
// @Description Record a payment and update the bill status based on the total paid
// @Tags bills
// @Accept json
// @Produce json
// @Param id path string true "Bill ID (UUID)"
// @Param input body service.PaymentInput true "Payment details"
// @Success 201 {object} APIResponse{data=domain.Payment} "Payment recorded"
// @Failure 409 {object} APIResponse "Bill is cancelled"
// @Security BearerAuth
// @Router /bills/{id}/payments [post]
func (h *BillHandler) RecordPayment(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	billID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid bill ID")
		return
	}

	var input service.PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	payment, err := h.billService.RecordPayment(c.Request.Context(), tenantID, userID, billID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, payment)
}

// Cancel handles POST /api/v1/bills/:id/cancel
// @Summary Cancel a vendor bill
// @Tags bills
// @Produce json
// @Param id path string true "Bill ID (UUID)"
// @Success 200 {object} APIResponse "Bill cancelled"
// @Failure 409 {object} APIResponse "Bill is already cancelled"
// @Security BearerAuth
// @Router /bills/{id}/cancel [post]
func (h *BillHandler) Cancel(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	billID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid bill ID")
		return
	}

	if err := h.billService.Cancel(c.Request.Context(), tenantID, billID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "bill cancelled"})
}

// UploadAttachment handles POST /api/v1/bills/:id/attachments
// @Summary Upload a supporting document for a bill
// @Tags bills
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Bill ID (UUID)"
// @Param file formData file true "File to upload (PDF, JPG, PNG, or XLSX)"
// @Success 201 {object} APIResponse{data=domain.Attachment} "Attachment stored"
// @Failure 413 {object} APIResponse "File too large"
// @Security BearerAuth
// @Router /bills/{id}/attachments [post]
func (h *BillHandler) UploadAttachment(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	billID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid bill ID")
		return
	}

	// The bill must exist in this tenant before anything is stored.
	if _, err := h.billService.GetByID(c.Request.Context(), tenantID, billID); err != nil {
		HandleError(c, err)
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FILE", "could not read uploaded file")
		return
	}

	att, err := h.attachmentService.Upload(c.Request.Context(), tenantID, userID, service.UploadAttachmentInput{
		DocumentID:   billID,
		OriginalName: header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
		Data:         data,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, att)
}

// ListAttachments handles GET /api/v1/bills/:id/attachments
// @Summary List supporting documents for a bill
// @Tags bills
// @Produce json
// @Param id path string true "Bill ID (UUID)"
// @Success 200 {object} APIResponse{data=[]domain.Attachment} "Attachments"
// @Security BearerAuth
// @Router /bills/{id}/attachments [get]
func (h *BillHandler) ListAttachments(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	billID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid bill ID")
		return
	}

	atts, err := h.attachmentService.ListByDocument(c.Request.Context(), tenantID, billID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, atts)
}
