package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Adriel-Pezo-2004/PetKarMg/internal/audit"
	domain "github.com/Adriel-Pezo-2004/PetKarMg/internal/domain/appointment"
	"github.com/Adriel-Pezo-2004/PetKarMg/internal/httperr"
	"github.com/Adriel-Pezo-2004/PetKarMg/internal/httpresp"
	"github.com/Adriel-Pezo-2004/PetKarMg/internal/models"
	ucAppointment "github.com/Adriel-Pezo-2004/PetKarMg/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	repo     domain.Repository
	create   *ucAppointment.CreateAppointment
	cancel   *ucAppointment.CancelAppointment
	complete *ucAppointment.CompleteAppointment
	audit    audit.Sink
}

func NewAppointmentHandler(
	repo domain.Repository,
	create *ucAppointment.CreateAppointment,
	cancel *ucAppointment.CancelAppointment,
	complete *ucAppointment.CompleteAppointment,
	auditDispatcher audit.Sink,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:     repo,
		create:   create,
		cancel:   cancel,
		complete: complete,
		audit:    auditDispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Address     string `json:"address"`
	Zone        string `json:"zone"`
	ClientID    string `json:"clientId"`
	DNI         string `json:"dni"`
}

type UpdateAppointmentRequest struct {
	Title       *string `json:"title,omitempty"`
	Type        *string `json:"type,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
	Time        *string `json:"time,omitempty"`
	Address     *string `json:"address,omitempty"`
	Zone        *string `json:"zone,omitempty"`
	Status      *string `json:"status,omitempty"`
	ClientID    *string `json:"clientId,omitempty"`
}

// ======================================================
// LIST (con filtro opcional por DNI)
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	dni := c.Query("dni")

	if dni != "" && len(dni) != 8 {
		httperr.BadRequest(c, "invalid_dni", "El DNI debe tener 8 dígitos.")
		return
	}

	var aps []models.Appointment
	var err error

	if dni != "" {
		aps, err = h.repo.ListByDNI(c.Request.Context(), dni)
	} else {
		aps, err = h.repo.List(c.Request.Context())
	}

	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Error al obtener citas.")
		return
	}

	if aps == nil {
		aps = []models.Appointment{}
	}

	httpresp.OK(c, aps)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		Title:       req.Title,
		Type:        req.Type,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Address:     req.Address,
		Zone:        req.Zone,
		ClientID:    req.ClientID,
		DNI:         req.DNI,
	})

	if err != nil {
		var missing *ucAppointment.MissingFieldsError
		switch {
		case errors.As(err, &missing):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "missing_required_fields",
				"message": "Faltan campos requeridos.",
				"details": missing.Fields,
			})
		case httperr.IsBusiness(err, "invalid_client_id"):
			httperr.BadRequest(c, "invalid_client_id", "ID de cliente inválido.")
		case httperr.IsBusiness(err, "invalid_dni"):
			httperr.BadRequest(c, "invalid_dni", "El DNI debe tener 8 dígitos.")
		case errors.Is(err, domain.ErrClientNotFound):
			httperr.NotFound(c, "client_not_found", "El cliente especificado no existe.")
		case httperr.IsBusiness(err, "dni_mismatch"):
			httperr.BadRequest(c, "dni_mismatch", "El DNI no coincide con el cliente registrado.")
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		default:
			httperr.Internal(c, "failed_to_create_appointment", "Error al crear la cita.")
		}
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// GET BY ID (incluye el cliente relacionado)
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id := c.Param("id")

	ap, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "Error al obtener la cita.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// UPDATE (parcial; cambiar clientId re-enlaza sin re-validar DNI)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id := c.Param("id")

	ap, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "Error al obtener la cita.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Title != nil {
		ap.Title = *req.Title
	}
	if req.Type != nil {
		ap.Type = *req.Type
	}
	if req.Description != nil {
		ap.Description = *req.Description
	}
	if req.Date != nil {
		date, perr := domain.ParseDate(*req.Date)
		if perr != nil {
			httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
			return
		}
		ap.Date = date
	}
	if req.Time != nil {
		ap.Time = *req.Time
	}
	if req.Address != nil {
		ap.Address = *req.Address
	}
	if req.Zone != nil {
		ap.Zone = *req.Zone
	}
	if req.Status != nil {
		ap.Status = *req.Status
	}
	if req.ClientID != nil {
		ap.ClientID = *req.ClientID
	}

	// El flujo de edición siempre recalcula start/end cuando cambia
	// la fecha o la hora.
	if req.Date != nil || req.Time != nil {
		ap.StartTime, ap.EndTime = domain.DeriveTimes(ap.Date, ap.Time)
	}

	if err := h.repo.Update(c.Request.Context(), ap); err != nil {
		httperr.Internal(c, "failed_to_update_appointment", "Error al actualizar la cita.")
		return
	}

	// Tras re-enlazar, el Client embebido sigue siendo el anterior;
	// se relee para responder con el cliente nuevo.
	if req.ClientID != nil {
		if fresh, err := h.repo.GetByID(c.Request.Context(), ap.ID); err == nil {
			ap = fresh
		}
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Error al eliminar la cita.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})

	httpresp.Success(c)
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id := c.Param("id")

	ap, err := h.cancel.Execute(c.Request.Context(), id)
	if err != nil {
		h.writeTransitionError(c, err, "cancelada")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id := c.Param("id")

	ap, err := h.complete.Execute(c.Request.Context(), id)
	if err != nil {
		h.writeTransitionError(c, err, "completada")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) writeTransitionError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "La cita no puede ser "+action+".")
	default:
		httperr.Internal(c, "failed_to_update_appointment", "Error al actualizar la cita.")
	}
}
