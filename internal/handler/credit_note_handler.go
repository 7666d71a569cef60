package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstbill/internal/domain"
	"gstbill/internal/service"
)

// CreditNoteHandler handles credit and debit note endpoints.
type CreditNoteHandler struct {
	noteService service.CreditNoteService
}

// NewCreditNoteHandler creates a new CreditNoteHandler.
func NewCreditNoteHandler(noteService service.CreditNoteService) *CreditNoteHandler {
	return &CreditNoteHandler{noteService: noteService}
}

// Create handles POST /api/v1/notes
// @Summary Create a credit or debit note draft
// @Description Create a draft note against an issued invoice; amounts are computed server-side
// @Tags notes
// @Accept json
// @Produce json
// @Param input body service.NoteInput true "Note details"
// @Success 201 {object} APIResponse{data=domain.CreditNote} "Note created"
// @Failure 409 {object} APIResponse "Referenced invoice is not issued"
// @Security BearerAuth
// @Router /notes [post]
func (h *CreditNoteHandler) Create(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.NoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	note, err := h.noteService.Create(c.Request.Context(), tenantID, userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, note)
}

// List handles GET /api/v1/notes
// @Summary List credit and debit notes
// @Tags notes
// @Produce json
// @Param kind query string false "Kind filter (credit, debit)"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} APIResponse{data=[]domain.CreditNote,meta=PagMeta} "Notes"
// @Security BearerAuth
// @Router /notes [get]
func (h *CreditNoteHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, limit := parsePagination(c)
	kind := domain.NoteKind(c.Query("kind"))

	notes, total, err := h.noteService.List(c.Request.Context(), tenantID, kind, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, notes, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/notes/:id
// @Summary Get note by ID
// @Tags notes
// @Produce json
// @Param id path string true "Note ID (UUID)"
// @Success 200 {object} APIResponse{data=domain.CreditNote} "Note with lines"
// @Failure 404 {object} APIResponse "Note not found"
// @Security BearerAuth
// @Router /notes/{id} [get]
func (h *CreditNoteHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid note ID")
		return
	}

	note, err := h.noteService.GetByID(c.Request.Context(), tenantID, noteID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, note)
}

// Update handles PUT /api/v1/notes/:id
// @Summary Update a note draft
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID (UUID)"
// @Param input body service.NoteInput true "Note details"
// @Success 200 {object} APIResponse{data=domain.CreditNote} "Note updated"
// @Failure 409 {object} APIResponse "Note is not a draft"
// @Security BearerAuth
// @Router /notes/{id} [put]
func (h *CreditNoteHandler) Update(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid note ID")
		return
	}

	var input service.NoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	note, err := h.noteService.Update(c.Request.Context(), tenantID, noteID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, note)
}

// Issue handles POST /api/v1/notes/:id/issue
// @Summary Issue a note
// @Description Assign the next sequential number and move the draft to issued
// @Tags notes
// @Produce json
// @Param id path string true "Note ID (UUID)"
// @Success 200 {object} APIResponse{data=domain.CreditNote} "Issued note"
// @Failure 409 {object} APIResponse "Note is not a draft"
// @Security BearerAuth
// @Router /notes/{id}/issue [post]
func (h *CreditNoteHandler) Issue(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid note ID")
		return
	}

	note, err := h.noteService.Issue(c.Request.Context(), tenantID, noteID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, note)
}

// Cancel handles POST /api/v1/notes/:id/cancel
// @Summary Cancel an issued note
// @Tags notes
// @Produce json
// @Param id path string true "Note ID (UUID)"
// @Success 200 {object} APIResponse "Note cancelled"
// @Failure 409 {object} APIResponse "Note is not issued"
// @Security BearerAuth
// @Router /notes/{id}/cancel [post]
func (h *CreditNoteHandler) Cancel(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid note ID")
		return
	}

	if err := h.noteService.Cancel(c.Request.Context(), tenantID, noteID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "note cancelled"})
}
