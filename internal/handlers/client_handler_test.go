package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientdomain "github.com/Adriel-Pezo-2004/PetKarMg/internal/domain/client"
	"github.com/Adriel-Pezo-2004/PetKarMg/internal/models"
)

func TestClientCreateRoundTrip(t *testing.T) {
	store := map[string]*models.Client{}

	repo := &mockClientRepo{
		createFn: func(ctx context.Context, c *models.Client) error {
			c.ID = "client-1"
			store[c.ID] = c
			return nil
		},
		getByIDFn: func(ctx context.Context, id string) (*models.Client, error) {
			if c, ok := store[id]; ok {
				return c, nil
			}
			return nil, clientdomain.ErrNotFound
		},
	}

	r := newClientRouter(repo, &captureSink{})

	w := doJSON(t, r, http.MethodPost, "/api/clients", map[string]string{
		"name":  "Ana Paz",
		"dni":   "12345678",
		"phone": "987654321",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// El registro creado se recupera idéntico por su id
	w = doJSON(t, r, http.MethodGet, "/api/clients/client-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "client-1", body["id"])
	assert.Equal(t, "Ana Paz", body["name"])
	assert.Equal(t, "12345678", body["dni"])
	assert.Equal(t, "987654321", body["phone"])
}

func TestClientCreateValidationDetails(t *testing.T) {
	r := newClientRouter(&mockClientRepo{}, &captureSink{})

	w := doJSON(t, r, http.MethodPost, "/api/clients", map[string]string{
		"name":  "",
		"dni":   "12",
		"phone": "12345",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "validation_failed", body["error"])

	details, ok := body["details"].([]any)
	require.True(t, ok)
	assert.Len(t, details, 3)
}

func TestClientCreateDuplicateDNI(t *testing.T) {
	repo := &mockClientRepo{
		getByDNIFn: func(ctx context.Context, dni string) (*models.Client, error) {
			return &models.Client{ID: "existing", Name: "Ana Paz", DNI: dni}, nil
		},
	}
	r := newClientRouter(repo, &captureSink{})

	w := doJSON(t, r, http.MethodPost, "/api/clients", map[string]string{
		"name": "Luis Soto",
		"dni":  "12345678",
	})
	require.Equal(t, http.StatusConflict, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "duplicate_dni", body["error"])

	existing, ok := body["existing_client"].(map[string]any)
	require.True(t, ok, "el conflicto incluye el resumen del cliente existente")
	assert.Equal(t, "existing", existing["id"])
	assert.Equal(t, "Ana Paz", existing["name"])
}

func TestClientListRejectsMalformedFilter(t *testing.T) {
	queried := false
	repo := &mockClientRepo{
		getByDNIFn: func(ctx context.Context, dni string) (*models.Client, error) {
			queried = true
			return nil, clientdomain.ErrNotFound
		},
	}
	r := newClientRouter(repo, &captureSink{})

	w := doJSON(t, r, http.MethodGet, "/api/clients?dni=123", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, queried, "el filtro se rechaza antes de consultar")
}

func TestClientListByDNI(t *testing.T) {
	repo := &mockClientRepo{
		getByDNIFn: func(ctx context.Context, dni string) (*models.Client, error) {
			return &models.Client{ID: "c1", Name: "Ana Paz", DNI: dni}, nil
		},
	}
	r := newClientRouter(repo, &captureSink{})

	w := doJSON(t, r, http.MethodGet, "/api/clients?dni=12345678", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []models.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "c1", list[0].ID)
}

func TestClientListByDNIEmpty(t *testing.T) {
	r := newClientRouter(&mockClientRepo{}, &captureSink{})

	w := doJSON(t, r, http.MethodGet, "/api/clients?dni=12345678", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestClientGetNotFound(t *testing.T) {
	r := newClientRouter(&mockClientRepo{}, &captureSink{})

	w := doJSON(t, r, http.MethodGet, "/api/clients/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClientPartialUpdate(t *testing.T) {
	var saved *models.Client
	repo := &mockClientRepo{
		getByIDFn: func(ctx context.Context, id string) (*models.Client, error) {
			return &models.Client{ID: id, Name: "Ana Paz", DNI: "12345678", Phone: "987654321"}, nil
		},
		updateFn: func(ctx context.Context, c *models.Client) error {
			saved = c
			return nil
		},
	}
	sink := &captureSink{}
	r := newClientRouter(repo, sink)

	w := doJSON(t, r, http.MethodPut, "/api/clients/c1", map[string]string{
		"phone": "912345678",
	})
	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, saved)
	assert.Equal(t, "912345678", saved.Phone)
	assert.Equal(t, "Ana Paz", saved.Name, "los campos ausentes no se tocan")
	assert.Equal(t, "12345678", saved.DNI)

	require.Len(t, sink.events, 1)
	assert.Equal(t, "client_updated", sink.events[0].Action)
}

func TestClientDelete(t *testing.T) {
	deleted := ""
	repo := &mockClientRepo{
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	sink := &captureSink{}
	r := newClientRouter(repo, sink)

	w := doJSON(t, r, http.MethodDelete, "/api/clients/c1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "c1", deleted)

	body := decodeBody(t, w)
	assert.NotEmpty(t, body["message"])

	require.Len(t, sink.events, 1)
	assert.Equal(t, "client_deleted", sink.events[0].Action)
}
