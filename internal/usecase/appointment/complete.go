package appointment

import (
	"context"

	"github.com/Adriel-Pezo-2004/PetKarMg/internal/audit"
	domain "github.com/Adriel-Pezo-2004/PetKarMg/internal/domain/appointment"
	"github.com/Adriel-Pezo-2004/PetKarMg/internal/models"
	"github.com/Adriel-Pezo-2004/PetKarMg/internal/timezone"
)

type CompleteAppointment struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit audit.Sink,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.Complete(ap, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
