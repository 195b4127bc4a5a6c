package appointment

import (
	"context"

	"github.com/Adriel-Pezo-2004/PetKarMg/internal/audit"
	domain "github.com/Adriel-Pezo-2004/PetKarMg/internal/domain/appointment"
	"github.com/Adriel-Pezo-2004/PetKarMg/internal/models"
	"github.com/Adriel-Pezo-2004/PetKarMg/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCancelAppointment(
	repo domain.Repository,
	audit audit.Sink,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(ap, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
