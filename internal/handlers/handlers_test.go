package handlers

import (
	"context"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Lis-Kacper/BeautySaloon/internal/config"
	domain "github.com/Lis-Kacper/BeautySaloon/internal/domain/appointment"
	"github.com/Lis-Kacper/BeautySaloon/internal/httperr"
	"github.com/Lis-Kacper/BeautySaloon/internal/middleware"
	"github.com/Lis-Kacper/BeautySaloon/internal/models"
	"github.com/Lis-Kacper/BeautySaloon/internal/notifier"
	"github.com/Lis-Kacper/BeautySaloon/internal/slotlock"
	ucAppointment "github.com/Lis-Kacper/BeautySaloon/internal/usecase/appointment"
)

// memRepo is an in-memory Repository with the same overlap semantics
// as the Postgres implementation.
type memRepo struct {
	nextID uint
	items  []models.Appointment
	admins []models.Admin
}

func newMemRepo() *memRepo {
	return &memRepo{nextID: 1}
}

func (r *memRepo) CreateIfFree(ctx context.Context, ap *models.Appointment) error {
	if domain.HasConflict(ap.StartTime, ap.EndTime, r.items) {
		return httperr.ErrBusiness("slot_unavailable")
	}
	ap.ID = r.nextID
	r.nextID++
	r.items = append(r.items, *ap)
	return nil
}

func (r *memRepo) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, len(r.items))
	copy(out, r.items)
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *memRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	for _, ap := range r.items {
		if ap.ID == id {
			cp := ap
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memRepo) SaveIfFree(ctx context.Context, ap *models.Appointment) error {
	if domain.HasConflictExcluding(ap.StartTime, ap.EndTime, r.items, ap.ID) {
		return httperr.ErrBusiness("slot_unavailable")
	}
	for i := range r.items {
		if r.items[i].ID == ap.ID {
			r.items[i] = *ap
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memRepo) DeleteAppointment(ctx context.Context, id uint) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memRepo) ListAppointmentsForRange(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.items {
		if ap.StartTime.Before(end) && ap.EndTime.After(start) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *memRepo) GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	for _, a := range r.admins {
		if a.Username == username {
			cp := a
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

var _ domain.Repository = (*memRepo)(nil)

// ------------------------------------------------------
// test server wiring
// ------------------------------------------------------

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:   "test-secret",
		Timezone:    "Europe/Warsaw",
		OpenHour:    9,
		CloseHour:   17,
		SlotMinutes: 30,
	}
}

type recordingSender struct {
	sent []string
}

func (s *recordingSender) Send(to, subject, body string) error {
	s.sent = append(s.sent, to)
	return nil
}

func newTestServer(t *testing.T, repo *memRepo) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	window := domain.Window{Open: "09:00", Close: "17:00", Slot: 30 * time.Minute}

	dispatcher := notifier.NewDispatcher(&recordingSender{})

	availabilityUC := ucAppointment.NewGetAvailability(repo, window)
	createUC := ucAppointment.NewCreateAppointment(repo, dispatcher, slotlock.NopLocker{})
	listUC := ucAppointment.NewListAppointments(repo)
	updateUC := ucAppointment.NewUpdateAppointment(repo)
	deleteUC := ucAppointment.NewDeleteAppointment(repo)

	authHandler := NewAuthHandler(repo, cfg)
	bookingHandler := NewBookingHandler(cfg, availabilityUC, createUC)
	adminHandler := NewAdminHandler(cfg, listUC, updateUC, deleteUC)

	r := gin.New()
	api := r.Group("/api")
	{
		api.GET("/availability", bookingHandler.Availability)
		api.POST("/appointments", bookingHandler.Create)
		api.POST("/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/appointments", adminHandler.List)
			secured.PATCH("/appointments/:id", adminHandler.Update)
			secured.DELETE("/appointments/:id", adminHandler.Delete)
		}
	}

	return r, cfg
}

func addAdmin(t *testing.T, repo *memRepo, username, password string) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	// Stored normalized, the way the createadmin CLI writes accounts.
	repo.admins = append(repo.admins, models.Admin{
		ID:           uint(len(repo.admins) + 1),
		Username:     models.NormalizeUsername(username),
		PasswordHash: string(hashed),
	})
}

func doRequest(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
