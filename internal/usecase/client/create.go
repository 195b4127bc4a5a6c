package client

import (
	"context"
	"errors"
	"strings"

	"github.com/Adriel-Pezo-2004/PetKarMg/internal/audit"
	domain "github.com/Adriel-Pezo-2004/PetKarMg/internal/domain/client"
	"github.com/Adriel-Pezo-2004/PetKarMg/internal/models"
	"github.com/Adriel-Pezo-2004/PetKarMg/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateClientInput struct {
	Name  string
	DNI   string
	Phone string
}

// ValidationError agrega todos los campos inválidos en un solo rechazo;
// un mensaje por campo.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation_failed"
}

// ======================================================
// USE CASE
// ======================================================

type CreateClient struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCreateClient(
	repo domain.Repository,
	audit audit.Sink,
) *CreateClient {
	return &CreateClient{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateClient) Execute(
	ctx context.Context,
	in CreateClientInput,
) (*models.Client, error) {

	// --------------------------------------------------
	// 1. Validaciones de formato (independientes, agregadas)
	// --------------------------------------------------
	if msgs := validators.ClientErrors(in.Name, in.DNI, in.Phone); len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	// --------------------------------------------------
	// 2. Unicidad del DNI (resultado distinto: conflicto)
	// --------------------------------------------------
	existing, err := uc.repo.GetByDNI(ctx, in.DNI)
	if err == nil {
		return nil, &domain.DuplicateDNIError{
			ExistingID:   existing.ID,
			ExistingName: existing.Name,
		}
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Creación
	// --------------------------------------------------
	client := &models.Client{
		Name:  strings.TrimSpace(in.Name),
		DNI:   strings.TrimSpace(in.DNI),
		Phone: strings.TrimSpace(in.Phone),
	}

	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_created",
		Entity:   "client",
		EntityID: &client.ID,
	})

	return client, nil
}
