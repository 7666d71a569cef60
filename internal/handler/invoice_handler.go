package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstbill/internal/domain"
	"gstbill/internal/service"
)

// InvoiceHandler handles invoice lifecycle endpoints.
type InvoiceHandler struct {
	invoiceService    service.InvoiceService
	attachmentService service.AttachmentService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService, attachmentService service.AttachmentService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService, attachmentService: attachmentService}
}

// Create handles POST /api/v1/invoices
// @Summary Create an invoice draft
// @Description Create a draft invoice; all tax amounts and totals are computed server-side
// @Tags invoices
// @Accept json
// @Produce json
// @Param input body service.InvoiceInput true "Invoice details"
// @Success 201 {object} APIResponse{data=domain.Invoice} "Invoice created"
// @Failure 400 {object} APIResponse "Validation error"
// @Security BearerAuth
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.InvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	inv, err := h.invoiceService.Create(c.Request.Context(), tenantID, userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, inv)
}

// List handles GET /api/v1/invoices
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Param status query string false "Status filter (draft, issued, cancelled)"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} APIResponse{data=[]domain.Invoice,meta=PagMeta} "Invoices"
// @Security BearerAuth
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, limit := parsePagination(c)
	status := domain.DocumentStatus(c.Query("status"))

	invoices, total, err := h.invoiceService.List(c.Request.Context(), tenantID, status, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, invoices, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/invoices/:id
// @Summary Get invoice by ID
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Success 200 {object} APIResponse{data=domain.Invoice} "Invoice with lines"
// @Failure 404 {object} APIResponse "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	inv, err := h.invoiceService.GetByID(c.Request.Context(), tenantID, invoiceID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, inv)
}

// Update handles PUT /api/v1/invoices/:id
// @Summary Update an invoice draft
// @Description Replace the draft's lines and details; amounts are recomputed
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Param input body service.InvoiceInput true "Invoice details"
// @Success 200 {object} APIResponse{data=domain.Invoice} "Invoice updated"
// @Failure 409 {object} APIResponse "Invoice is not a draft"
// @Security BearerAuth
// @Router /invoices/{id} [put]
func (h *InvoiceHandler) Update(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	var input service.InvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	inv, err := h.invoiceService.Update(c.Request.Context(), tenantID, invoiceID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, inv)
}

// Issue handles POST /api/v1/invoices/:id/issue
// @Summary Issue an invoice
// @Description Assign the next sequential number and move the draft to issued
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Success 200 {object} APIResponse{data=domain.Invoice} "Issued invoice"
// @Failure 409 {object} APIResponse "Invoice is not a draft"
// @Security BearerAuth
// @Router /invoices/{id}/issue [post]
func (h *InvoiceHandler) Issue(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	inv, err := h.invoiceService.Issue(c.Request.Context(), tenantID, invoiceID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, inv)
}

// Cancel handles POST /api/v1/invoices/:id/cancel
// @Summary Cancel an issued invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Success 200 {object} APIResponse "Invoice cancelled"
// @Failure 409 {object} APIResponse "Invoice is not issued"
// @Security BearerAuth
// @Router /invoices/{id}/cancel [post]
func (h *InvoiceHandler) Cancel(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	if err := h.invoiceService.Cancel(c.Request.Context(), tenantID, invoiceID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "invoice cancelled"})
}

// RecordPayment handles POST /api/v1/invoices/:id/payments
// @Summary Record a payment against an invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Param input body service.PaymentInput true "Payment details"
// @Success 201 {object} APIResponse{data=domain.Payment} "Payment recorded"
// @Failure 409 {object} APIResponse "Invoice is not issued"
// @Security BearerAuth
// @Router /invoices/{id}/payments [post]
func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	var input service.PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	payment, err := h.invoiceService.RecordPayment(c.Request.Context(), tenantID, userID, invoiceID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, payment)
}

// DownloadPDF handles GET /api/v1/invoices/:id/pdf
// @Summary Download the invoice PDF
// @Tags invoices
// @Produce application/pdf
// @Param id path string true "Invoice ID (UUID)"
// @Success 200 {file} binary "PDF document"
// @Failure 409 {object} APIResponse "Invoice is a draft"
// @Security BearerAuth
// @Router /invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	pdf, fileName, err := h.invoiceService.RenderPDF(c.Request.Context(), tenantID, invoiceID)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Email handles POST /api/v1/invoices/:id/email
// @Summary Email the invoice PDF to the client
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Success 200 {object} APIResponse "Email sent"
// @Failure 400 {object} APIResponse "Client has no email address"
// @Security BearerAuth
// @Router /invoices/{id}/email [post]
func (h *InvoiceHandler) Email(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	if err := h.invoiceService.EmailPDF(c.Request.Context(), tenantID, invoiceID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "invoice emailed"})
}

// UploadAttachment handles POST /api/v1/invoices/:id/attachments
// @Summary Upload a supporting document
// @Tags invoices
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Param file formData file true "File to upload (PDF, JPG, PNG, or XLSX)"
// @Success 201 {object} APIResponse{data=domain.Attachment} "Attachment stored"
// @Failure 413 {object} APIResponse "File too large"
// @Security BearerAuth
// @Router /invoices/{id}/attachments [post]
func (h *InvoiceHandler) UploadAttachment(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	// The invoice must exist in this tenant before anything is stored.
	if _, err := h.invoiceService.GetByID(c.Request.Context(), tenantID, invoiceID); err != nil {
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
		DocumentID:   invoiceID,
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

// ListAttachments handles GET /api/v1/invoices/:id/attachments
// @Summary List supporting documents
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Success 200 {object} APIResponse{data=[]domain.Attachment} "Attachments"
// @Security BearerAuth
// @Router /invoices/{id}/attachments [get]
func (h *InvoiceHandler) ListAttachments(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	atts, err := h.attachmentService.ListByDocument(c.Request.Context(), tenantID, invoiceID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, atts)
}

// DownloadAttachment handles GET /api/v1/invoices/:id/attachments/:attachmentId
// @Summary Get a time-limited download URL for an attachment
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Param attachmentId path string true "Attachment ID (UUID)"
// @Success 200 {object} APIResponse "Presigned URL"
// @Failure 404 {object} APIResponse "Attachment not found"
// @Security BearerAuth
// @Router /invoices/{id}/attachments/{attachmentId} [get]
func (h *InvoiceHandler) DownloadAttachment(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	attachmentID, err := uuid.Parse(c.Param("attachmentId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid attachment ID")
		return
	}

	url, err := h.attachmentService.DownloadURL(c.Request.Context(), tenantID, attachmentID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"url": url})
}

// DeleteAttachment handles DELETE /api/v1/invoices/:id/attachments/:attachmentId
// @Summary Delete an attachment
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Param attachmentId path string true "Attachment ID (UUID)"
// @Success 200 {object} APIResponse "Attachment deleted"
// @Failure 404 {object} APIResponse "Attachment not found"
// @Security BearerAuth
// @Router /invoices/{id}/attachments/{attachmentId} [delete]
func (h *InvoiceHandler) DeleteAttachment(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	attachmentID, err := uuid.Parse(c.Param("attachmentId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid attachment ID")
		return
	}

	if err := h.attachmentService.Delete(c.Request.Context(), tenantID, attachmentID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}
