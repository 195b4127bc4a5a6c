package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Adriel-Pezo-2004/PetKarMg/internal/audit"
	domain "github.com/Adriel-Pezo-2004/PetKarMg/internal/domain/client"
	"github.com/Adriel-Pezo-2004/PetKarMg/internal/httperr"
	"github.com/Adriel-Pezo-2004/PetKarMg/internal/httpresp"
	"github.com/Adriel-Pezo-2004/PetKarMg/internal/models"
	ucClient "github.com/Adriel-Pezo-2004/PetKarMg/internal/usecase/client"
)

// ======================================================
// HANDLER
// ======================================================

type ClientHandler struct {
	repo   domain.Repository
	create *ucClient.CreateClient
	audit  audit.Sink
}

func NewClientHandler(
	repo domain.Repository,
	create *ucClient.CreateClient,
	auditDispatcher audit.Sink,
) *ClientHandler {
	return &ClientHandler{
		repo:   repo,
		create: create,
		audit:  auditDispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateClientRequest struct {
	Name  string `json:"name"`
	DNI   string `json:"dni"`
	Phone string `json:"phone"`
}

type UpdateClientRequest struct {
	Name  *string `json:"name,omitempty"`
	DNI   *string `json:"dni,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// ======================================================
// LIST (con filtro opcional por DNI)
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	dni := c.Query("dni")

	if dni != "" {
		// El filtro se rechaza antes de consultar
		if len(dni) != 8 {
			httperr.BadRequest(c, "invalid_dni", "El DNI debe tener 8 dígitos.")
			return
		}

		client, err := h.repo.GetByDNI(c.Request.Context(), dni)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				httpresp.OK(c, []models.Client{})
				return
			}
			httperr.Internal(c, "failed_to_list_clients", "Error al obtener clientes.")
			return
		}

		httpresp.OK(c, []models.Client{*client})
		return
	}

	clients, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Error al obtener clientes.")
		return
	}

	if clients == nil {
		clients = []models.Client{}
	}

	httpresp.OK(c, clients)
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	client, err := h.create.Execute(c.Request.Context(), ucClient.CreateClientInput{
		Name:  req.Name,
		DNI:   req.DNI,
		Phone: req.Phone,
	})

	if err != nil {
		var verr *ucClient.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "validation_failed",
				"message": "Datos inválidos.",
				"details": verr.Messages,
			})
			return
		}

		var dup *domain.DuplicateDNIError
		if errors.As(err, &dup) {
			httperr.Conflict(c, "duplicate_dni", "Ya existe un cliente con este DNI.", gin.H{
				"existing_client": gin.H{
					"id":   dup.ExistingID,
					"name": dup.ExistingName,
				},
			})
			return
		}

		httperr.Internal(c, "failed_to_create_client", "Error interno al crear el cliente.")
		return
	}

	httpresp.Created(c, client)
}

// ======================================================
// GET BY ID
// ======================================================

func (h *ClientHandler) Get(c *gin.Context) {
	id := c.Param("id")

	client, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "client_not_found", "Cliente no encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_client", "Error interno al obtener el cliente.")
		return
	}

	httpresp.OK(c, client)
}

// ======================================================
// UPDATE (parcial, sin re-validación de campos)
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	id := c.Param("id")

	client, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "client_not_found", "Cliente no encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_client", "Error interno al obtener el cliente.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.DNI != nil {
		client.DNI = *req.DNI
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}

	if err := h.repo.Update(c.Request.Context(), client); err != nil {
		httperr.Internal(c, "failed_to_update_client", "Error interno al actualizar el cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &client.ID,
	})

	httpresp.OK(c, client)
}

// ======================================================
// DELETE (incondicional; las citas quedan colgantes)
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_delete_client", "Error interno al eliminar el cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &id,
	})

	httpresp.Message(c, "Cliente eliminado correctamente")
}
