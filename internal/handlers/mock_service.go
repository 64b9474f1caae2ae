package handlers

import (
	"context"

	"eventsite/internal/models"
	"eventsite/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerUser *models.User
	registerErr  error
	loginToken   string
	loginErr     error
	verifyUser   *models.User
	verifyErr    error

	lastRegisterName     string
	lastRegisterUsername string
	lastLoginUsername    string
	lastLoginPassword    string
	lastVerifyToken      string
}

func (m *mockAuth) Register(name, username, password string) (*models.User, error) {
	m.lastRegisterName = name
	m.lastRegisterUsername = username
	return m.registerUser, m.registerErr
}

func (m *mockAuth) Login(username, password string) (string, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginToken, m.loginErr
}

func (m *mockAuth) VerifyToken(token string) (*models.User, error) {
	m.lastVerifyToken = token
	return m.verifyUser, m.verifyErr
}

type mockUsers struct {
	list    []models.User
	listErr error
	user    *models.User
	userErr error

	lastGetID int
}

func (m *mockUsers) List() ([]models.User, error) { return m.list, m.listErr }

func (m *mockUsers) GetByID(id int) (*models.User, error) {
	m.lastGetID = id
	return m.user, m.userErr
}

type mockEvents struct {
	events     []models.Event
	listErr    error
	bySlug     map[string]*models.Event
	slugErr    error
	registered []models.Registration
	regErr     error

	lastSlug string
}

func (m *mockEvents) List(ctx context.Context) ([]models.Event, error) {
	return m.events, m.listErr
}

func (m *mockEvents) GetBySlug(ctx context.Context, slug string) (*models.Event, error) {
	m.lastSlug = slug
	return m.bySlug[slug], m.slugErr
}

func (m *mockEvents) Registered(ctx context.Context, eventID int) ([]models.Registration, error) {
	return m.registered, m.regErr
}

// mockRegRepo implements repository.Registrations so handler tests can run
// the real validation/sanitization pipeline and inspect what got persisted.
type mockRegRepo struct {
	inserted  []models.Registration
	insertErr error
}

func (m *mockRegRepo) Insert(ctx context.Context, r models.Registration) (models.Registration, error) {
	if m.insertErr != nil {
		return models.Registration{}, m.insertErr
	}
	m.inserted = append(m.inserted, r)
	return r, nil
}

func (m *mockRegRepo) ListByEvent(ctx context.Context, eventID int) ([]models.Registration, error) {
	return m.inserted, nil
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
