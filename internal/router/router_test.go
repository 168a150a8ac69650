package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"devconnect/internal/auth"
	"devconnect/internal/handler"
	"devconnect/internal/model"
	"devconnect/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	args := m.Called(ctx, name, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockProfileService is a mock implementation of service.ProfileService.
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileService) GetByHandle(ctx context.Context, handle string) (*model.Profile, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileService) List(ctx context.Context) ([]model.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Profile), args.Error(1)
}

func (m *MockProfileService) Upsert(ctx context.Context, userID uuid.UUID, input service.ProfileInput) (*model.Profile, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockPostService is a mock implementation of service.PostService.
type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) List(ctx context.Context) ([]model.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostService) Get(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) Create(ctx context.Context, claims *auth.Claims, input service.PostInput) (*model.Post, error) {
	args := m.Called(ctx, claims, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) Delete(ctx context.Context, claims *auth.Claims, id uuid.UUID) error {
	args := m.Called(ctx, claims, id)
	return args.Error(0)
}

func (m *MockPostService) Like(ctx context.Context, claims *auth.Claims, id uuid.UUID) (*model.Post, error) {
	args := m.Called(ctx, claims, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) Unlike(ctx context.Context, claims *auth.Claims, id uuid.UUID) (*model.Post, error) {
	args := m.Called(ctx, claims, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) AddComment(ctx context.Context, claims *auth.Claims, id uuid.UUID, input service.PostInput) (*model.Post, error) {
	args := m.Called(ctx, claims, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) DeleteComment(ctx context.Context, claims *auth.Claims, id, commentID uuid.UUID) (*model.Post, error) {
	args := m.Called(ctx, claims, id, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

type testEnv struct {
	echo       *echo.Echo
	jwtService *auth.JWTService
	authSvc    *MockAuthService
	profileSvc *MockProfileService
	postSvc    *MockPostService
}

func newTestEnv() *testEnv {
	jwtService := auth.NewJWTService("test-secret")

	authSvc := new(MockAuthService)
	profileSvc := new(MockProfileService)
	postSvc := new(MockPostService)

	e := echo.New()
	Register(
		e,
		jwtService,
		handler.NewUserHandler(authSvc),
		handler.NewProfileHandler(profileSvc),
		handler.NewPostHandler(postSvc),
	)
	return &testEnv{
		echo:       e,
		jwtService: jwtService,
		authSvc:    authSvc,
		profileSvc: profileSvc,
		postSvc:    postSvc,
	}
}

func (env *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)
	return rec
}

func TestAuthGate_MissingToken(t *testing.T) {
	env := newTestEnv()

	req := httptest.NewRequest(http.MethodGet, "/api/users/current", nil)
	rec := env.do(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "no token, authorization denied")
	env.authSvc.AssertNotCalled(t, "CurrentUser", mock.Anything, mock.Anything)
}

func TestAuthGate_InvalidToken(t *testing.T) {
	env := newTestEnv()

	req := httptest.NewRequest(http.MethodGet, "/api/users/current", nil)
	req.Header.Set(TokenHeader, "not-a-real-token")
	rec := env.do(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "token is not valid")
	env.authSvc.AssertNotCalled(t, "CurrentUser", mock.Anything, mock.Anything)
}

func TestAuthGate_TamperedToken(t *testing.T) {
	env := newTestEnv()

	token, err := env.jwtService.Generate(&model.User{ID: uuid.New(), Email: "a@x.com"})
	assert.NoError(t, err)
	tampered := token[:len(token)-2] + "xx"

	req := httptest.NewRequest(http.MethodGet, "/api/users/current", nil)
	req.Header.Set(TokenHeader, tampered)
	rec := env.do(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "token is not valid")
}

func TestAuthGate_ValidTokenReachesHandler(t *testing.T) {
	env := newTestEnv()
	user := &model.User{
		ID:           uuid.New(),
		Name:         "A",
		Email:        "a@x.com",
		PasswordHash: "bcrypt-hash-never-serialized",
	}
	env.authSvc.On("CurrentUser", mock.Anything, user.ID).Return(user, nil)

	token, err := env.jwtService.Generate(user)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/users/current", nil)
	req.Header.Set(TokenHeader, token)
	rec := env.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "A", body["name"])
	assert.Equal(t, "a@x.com", body["email"])
	// The password hash must never appear in the response.
	assert.NotContains(t, rec.Body.String(), "bcrypt-hash-never-serialized")
	assert.NotContains(t, body, "password")

	env.authSvc.AssertExpectations(t)
}

func TestPublicRoutesBypassAuthGate(t *testing.T) {
	env := newTestEnv()
	env.postSvc.On("List", mock.Anything).Return([]model.Post{}, nil)
	env.profileSvc.On("List", mock.Anything).Return([]model.Profile{}, nil)

	for _, path := range []string{"/api/posts", "/api/profile/all"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := env.do(req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRegisterIssuesToken(t *testing.T) {
	env := newTestEnv()
	env.authSvc.On("Register", mock.Anything, "A", "a@x.com", "secret1").Return("signed-token", nil)

	body := `{"name":"A","email":"a@x.com","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := env.do(req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp["token"])
	env.authSvc.AssertExpectations(t)
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv()

	// Short password and malformed email produce per-field messages.
	body := `{"name":"A","email":"not-an-email","password":"123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := env.do(req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email")
	assert.Contains(t, rec.Body.String(), "password")
	env.authSvc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
