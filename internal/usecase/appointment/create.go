package appointment

import (
	"context"

	"github.com/Adriel-Pezo-2004/PetKarMg/internal/audit"
	domain "github.com/Adriel-Pezo-2004/PetKarMg/internal/domain/appointment"
	"github.com/Adriel-Pezo-2004/PetKarMg/internal/httperr"
	"github.com/Adriel-Pezo-2004/PetKarMg/internal/models"
	"github.com/Adriel-Pezo-2004/PetKarMg/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Title       string
	Type        string
	Description string

	Date string
	Time string

	Address string
	Zone    string

	ClientID string
	DNI      string
}

// MissingFieldsError nombra los campos requeridos ausentes.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing_required_fields"
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCreateAppointment(
	repo domain.Repository,
	audit audit.Sink,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Las validaciones corren en orden y la primera que falla corta el
// flujo: requeridos → forma del id → forma del DNI → existencia del
// cliente → coincidencia del DNI.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Campos requeridos (time y description son opcionales)
	// --------------------------------------------------
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"title", in.Title},
		{"type", in.Type},
		{"date", in.Date},
		{"address", in.Address},
		{"zone", in.Zone},
		{"clientId", in.ClientID},
		{"dni", in.DNI},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	// --------------------------------------------------
	// 2. Forma del identificador del cliente
	// --------------------------------------------------
	if !validators.IsValidClientID(in.ClientID) {
		return nil, httperr.ErrBusiness("invalid_client_id")
	}

	// --------------------------------------------------
	// 3. Forma del DNI (sólo longitud)
	// --------------------------------------------------
	if !validators.IsValidAppointmentDNI(in.DNI) {
		return nil, httperr.ErrBusiness("invalid_dni")
	}

	// --------------------------------------------------
	// 4. Existencia del cliente
	// --------------------------------------------------
	client, err := uc.repo.GetClientByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. El DNI enviado debe coincidir con el registrado
	// --------------------------------------------------
	if client.DNI != in.DNI {
		return nil, httperr.ErrBusiness("dni_mismatch")
	}

	// --------------------------------------------------
	// 6. Fecha y derivación de start/end
	// --------------------------------------------------
	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	start, end := domain.DeriveTimes(date, in.Time)

	ap := &models.Appointment{
		Title:       in.Title,
		Type:        in.Type,
		Description: in.Description,
		Date:        date,
		Time:        in.Time,
		Address:     in.Address,
		Zone:        in.Zone,
		DNI:         in.DNI,
		Status:      string(domain.InitialStatus()),
		ClientID:    client.ID,
		StartTime:   start,
		EndTime:     end,
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
