package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstbill/internal/service"
)

// ClientHandler handles client master data endpoints.
type ClientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// Create handles POST /api/v1/clients
// @Summary Create a client
// @Tags clients
// @Accept json
// @Produce json
// @Param input body service.ClientInput true "Client details"
// @Success 201 {object} APIResponse{data=domain.Client} "Client created"
// @Failure 400 {object} APIResponse "Invalid GSTIN or PAN"
// @Security BearerAuth
// @Router /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), tenantID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, client)
}

// List handles GET /api/v1/clients
// @Summary List clients
// @Tags clients
// @Produce json
// @Param search query string false "Name substring filter"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} APIResponse{data=[]domain.Client,meta=PagMeta} "Clients"
// @Security BearerAuth
// @Router /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, limit := parsePagination(c)
	clients, total, err := h.clientService.List(c.Request.Context(), tenantID, c.Query("search"), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, clients, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/clients/:id
// @Summary Get client by ID
// @Tags clients
// @Produce json
// @Param id path string true "Client ID (UUID)"
// @Success 200 {object} APIResponse{data=domain.Client} "Client"
// @Failure 404 {object} APIResponse "Client not found"
// @Security BearerAuth
// @Router /clients/{id} [get]
func (h *ClientHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid client ID")
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), tenantID, clientID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, client)
}

// Update handles PUT /api/v1/clients/:id
// @Summary Update a client
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID (UUID)"
// @Param input body service.ClientInput true "Client details"
// @Success 200 {object} APIResponse{data=domain.Client} "Client updated"
// @Failure 404 {object} APIResponse "Client not found"
// @Security BearerAuth
// @Router /clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid client ID")
		return
	}

	var input service.ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), tenantID, clientID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, client)
}

// Delete handles DELETE /api/v1/clients/:id
// @Summary Deactivate a client
// @Tags clients
// @Produce json
// @Param id path string true "Client ID (UUID)"
// @Success 200 {object} APIResponse "Client deactivated"
// @Failure 404 {object} APIResponse "Client not found"
// @Security BearerAuth
// @Router /clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid client ID")
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), tenantID, clientID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "client deactivated"})
}
