package client

import (
	"context"

	"github.com/Adriel-Pezo-2004/PetKarMg/internal/models"
)

type Repository interface {
	GetByID(
		ctx context.Context,
		id string,
	) (*models.Client, error)

	// GetByDNI usa el índice único; cero-o-uno.
	GetByDNI(
		ctx context.Context,
		dni string,
	) (*models.Client, error)

	// List ordena por nombre ascendente.
	List(
		ctx context.Context,
	) ([]models.Client, error)

	Create(
		ctx context.Context,
		client *models.Client,
	) error

	Update(
		ctx context.Context,
		client *models.Client,
	) error

	Delete(
		ctx context.Context,
		id string,
	) error
}
