package appointment

import (
	"context"

	"github.com/Adriel-Pezo-2004/PetKarMg/internal/models"
)

type Repository interface {
	// -------- Client (para validar la referencia) --------
	GetClientByID(
		ctx context.Context,
		id string,
	) (*models.Client, error)

	// -------- Appointment (lectura) --------

	// GetByID precarga el cliente relacionado.
	GetByID(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	// List ordena por fecha ascendente.
	List(
		ctx context.Context,
	) ([]models.Appointment, error)

	// ListByDNI filtra por el DNI desnormalizado; cero-o-varias,
	// también por fecha ascendente.
	ListByDNI(
		ctx context.Context,
		dni string,
	) ([]models.Appointment, error)

	// -------- Appointment (escritura) --------
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Delete(
		ctx context.Context,
		id string,
	) error
}
