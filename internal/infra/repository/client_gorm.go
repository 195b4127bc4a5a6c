package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/Adriel-Pezo-2004/PetKarMg/internal/domain/client"
	"github.com/Adriel-Pezo-2004/PetKarMg/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&client).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (r *ClientGormRepository) GetByDNI(
	ctx context.Context,
	dni string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("dni = ?", dni).
		First(&client).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (r *ClientGormRepository) List(
	ctx context.Context,
) ([]models.Client, error) {

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientGormRepository) Create(
	ctx context.Context,
	client *models.Client,
) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *ClientGormRepository) Update(
	ctx context.Context,
	client *models.Client,
) error {
	return r.db.WithContext(ctx).Save(client).Error
}

func (r *ClientGormRepository) Delete(
	ctx context.Context,
	id string,
) error {
	// Borrado incondicional; sin cascada, las citas del cliente quedan
	// con client_id colgante.
	return r.db.WithContext(ctx).
		Delete(&models.Client{}, "id = ?", id).Error
}

// Compile-time check
var _ domain.Repository = (*ClientGormRepository)(nil)
