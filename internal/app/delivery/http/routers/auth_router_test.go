package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"bizsuite-service/internal/app/config"
	"bizsuite-service/internal/app/delivery/http/middlewares"
	"bizsuite-service/internal/app/models"
	"bizsuite-service/internal/app/services/core/auth"
	"bizsuite-service/internal/pkg/dto/requests"
	"bizsuite-service/internal/pkg/dto/responses"
	"bizsuite-service/internal/pkg/exceptions"
	"bizsuite-service/internal/pkg/utils"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.AuthResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.AuthResponse), args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.AuthResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.AuthResponse), args.Error(1)
}

func (m *MockAuthUsecase) Me(ctx context.Context, session *models.Session) (*responses.AuthResponse, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.AuthResponse), args.Error(1)
}

func (m *MockAuthUsecase) Refresh(ctx context.Context, request *requests.RefreshToken) (*responses.RefreshResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.RefreshResponse), args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

const testJWTSecret = "test-jwt-secret-12345"

func newAuthTestRouter(authUsecase *MockAuthUsecase, sessionService *MockSessionService) *chi.Mux {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: testJWTSecret},
	}

	authController := auth.NewAuthController(logger, authUsecase, internalConfig)
	middlewareInstance := middlewares.NewMiddlewares(logger, sessionService, internalConfig)

	router := chi.NewRouter()
	attachAuthRoutes(router, middlewareInstance, authController)
	return router
}

func TestAuthRouter_Login(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		router := newAuthTestRouter(mockAuthUsecase, new(MockSessionService))

		mockAuthUsecase.On("Login", mock.Anything, mock.AnythingOfType("*requests.LoginUser")).Return(&responses.AuthResponse{
			User:        responses.UserResponse{ID: "user1", Email: "demo@example.com"},
			Company:     responses.CompanyResponse{ID: "company1", Slug: "barbearia-demo"},
			AccessToken: "access-token",
		}, nil)

		body, _ := json.Marshal(requests.LoginUser{Email: "demo@example.com", Password: "demo123"})
		req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.True(t, response.Success)
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		router := newAuthTestRouter(mockAuthUsecase, new(MockSessionService))

		mockAuthUsecase.On("Login", mock.Anything, mock.Anything).Return(nil, exceptions.ErrInvalidEmailOrPassword(nil))

		body, _ := json.Marshal(requests.LoginUser{Email: "demo@example.com", Password: "wrong"})
		req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("malformed email never reaches the usecase", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		router := newAuthTestRouter(mockAuthUsecase, new(MockSessionService))

		body, _ := json.Marshal(requests.LoginUser{Email: "not-an-email", Password: "demo123"})
		req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockAuthUsecase.AssertNotCalled(t, "Login")
	})
}

func TestAuthRouter_Me(t *testing.T) {
	t.Run("without token", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		router := newAuthTestRouter(mockAuthUsecase, new(MockSessionService))

		req := httptest.NewRequest("GET", "/me", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockAuthUsecase.AssertNotCalled(t, "Me")
	})

	t.Run("with a valid token and a live session", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		mockSessionService := new(MockSessionService)
		router := newAuthTestRouter(mockAuthUsecase, mockSessionService)

		token, err := utils.GenerateJWT("session1", utils.TokenTypeAccess, testJWTSecret, time.Minute)
		assert.NoError(t, err)

		session := &models.Session{SessionID: "session1", UserID: "user1", CompanyID: "company1"}
		mockSessionService.On("GetSession", mock.Anything, "session1").Return(session, nil)
		mockAuthUsecase.On("Me", mock.Anything, session).Return(&responses.AuthResponse{
			User: responses.UserResponse{ID: "user1"},
		}, nil)

		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("valid token whose session was logged out", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		mockSessionService := new(MockSessionService)
		router := newAuthTestRouter(mockAuthUsecase, mockSessionService)

		token, err := utils.GenerateJWT("session-gone", utils.TokenTypeAccess, testJWTSecret, time.Minute)
		assert.NoError(t, err)

		mockSessionService.On("GetSession", mock.Anything, "session-gone").Return(nil, nil)

		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockAuthUsecase.AssertNotCalled(t, "Me")
	})

	t.Run("refresh token cannot be used as an access token", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		router := newAuthTestRouter(mockAuthUsecase, new(MockSessionService))

		token, err := utils.GenerateJWT("session1", utils.TokenTypeRefresh, testJWTSecret, time.Minute)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
