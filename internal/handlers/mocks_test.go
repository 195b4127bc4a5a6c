package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Adriel-Pezo-2004/PetKarMg/internal/audit"
	apdomain "github.com/Adriel-Pezo-2004/PetKarMg/internal/domain/appointment"
	clientdomain "github.com/Adriel-Pezo-2004/PetKarMg/internal/domain/client"
	"github.com/Adriel-Pezo-2004/PetKarMg/internal/models"
	ucAppointment "github.com/Adriel-Pezo-2004/PetKarMg/internal/usecase/appointment"
	ucClient "github.com/Adriel-Pezo-2004/PetKarMg/internal/usecase/client"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- mocks ---

type mockClientRepo struct {
	getByIDFn  func(ctx context.Context, id string) (*models.Client, error)
	getByDNIFn func(ctx context.Context, dni string) (*models.Client, error)
	listFn     func(ctx context.Context) ([]models.Client, error)
	createFn   func(ctx context.Context, c *models.Client) error
	updateFn   func(ctx context.Context, c *models.Client) error
	deleteFn   func(ctx context.Context, id string) error
}

func (m *mockClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, clientdomain.ErrNotFound
}

func (m *mockClientRepo) GetByDNI(ctx context.Context, dni string) (*models.Client, error) {
	if m.getByDNIFn != nil {
		return m.getByDNIFn(ctx, dni)
	}
	return nil, clientdomain.ErrNotFound
}

func (m *mockClientRepo) List(ctx context.Context) ([]models.Client, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockClientRepo) Create(ctx context.Context, c *models.Client) error {
	if m.createFn != nil {
		return m.createFn(ctx, c)
	}
	return nil
}

func (m *mockClientRepo) Update(ctx context.Context, c *models.Client) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, c)
	}
	return nil
}

func (m *mockClientRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockAppointmentRepo struct {
	getClientByIDFn func(ctx context.Context, id string) (*models.Client, error)
	getByIDFn       func(ctx context.Context, id string) (*models.Appointment, error)
	listFn          func(ctx context.Context) ([]models.Appointment, error)
	listByDNIFn     func(ctx context.Context, dni string) ([]models.Appointment, error)
	createFn        func(ctx context.Context, ap *models.Appointment) error
	updateFn        func(ctx context.Context, ap *models.Appointment) error
	deleteFn        func(ctx context.Context, id string) error
}

func (m *mockAppointmentRepo) GetClientByID(ctx context.Context, id string) (*models.Client, error) {
	if m.getClientByIDFn != nil {
		return m.getClientByIDFn(ctx, id)
	}
	return nil, apdomain.ErrClientNotFound
}

func (m *mockAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, apdomain.ErrNotFound
}

func (m *mockAppointmentRepo) List(ctx context.Context) ([]models.Appointment, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) ListByDNI(ctx context.Context, dni string) ([]models.Appointment, error) {
	if m.listByDNIFn != nil {
		return m.listByDNIFn(ctx, dni)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) Create(ctx context.Context, ap *models.Appointment) error {
	if m.createFn != nil {
		return m.createFn(ctx, ap)
	}
	return nil
}

func (m *mockAppointmentRepo) Update(ctx context.Context, ap *models.Appointment) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, ap)
	}
	return nil
}

func (m *mockAppointmentRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type captureSink struct {
	events []audit.Event
}

func (s *captureSink) Dispatch(ev audit.Event) {
	s.events = append(s.events, ev)
}

// --- helpers ---

func newClientRouter(repo clientdomain.Repository, sink audit.Sink) *gin.Engine {
	h := NewClientHandler(repo, ucClient.NewCreateClient(repo, sink), sink)

	r := gin.New()
	r.GET("/api/clients", h.List)
	r.POST("/api/clients", h.Create)
	r.GET("/api/clients/:id", h.Get)
	r.PUT("/api/clients/:id", h.Update)
	r.DELETE("/api/clients/:id", h.Delete)
	return r
}

func newAppointmentRouter(repo apdomain.Repository, sink audit.Sink) *gin.Engine {
	h := NewAppointmentHandler(
		repo,
		ucAppointment.NewCreateAppointment(repo, sink),
		ucAppointment.NewCancelAppointment(repo, sink),
		ucAppointment.NewCompleteAppointment(repo, sink),
		sink,
	)

	r := gin.New()
	r.GET("/api/appointments", h.List)
	r.POST("/api/appointments", h.Create)
	r.GET("/api/appointments/:id", h.Get)
	r.PUT("/api/appointments/:id", h.Update)
	r.DELETE("/api/appointments/:id", h.Delete)
	r.PATCH("/api/appointments/:id/cancel", h.Cancel)
	r.PATCH("/api/appointments/:id/complete", h.Complete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req, err := http.NewRequest(method, path, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v (%s)", err, w.Body.String())
	}
	return out
}
