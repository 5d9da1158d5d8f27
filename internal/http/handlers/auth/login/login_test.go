package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/learning-user-api/internal/http/middlewarectx"
	"github.com/magabrotheeeer/learning-user-api/internal/models"
	services "github.com/magabrotheeeer/learning-user-api/internal/services/accounts"
)

// MockService реализует интерфейс login.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	args := m.Called(ctx, email, password)
	var user *models.User
	if args.Get(1) != nil {
		user = args.Get(1).(*models.User)
	}
	return args.String(0), user, args.Error(2)
}

func TestLoginHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешный вход",
			body: `{"email":"test@example.com","password":"password123"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "test@example.com", "password123").
					Return("jwt-token", &models.User{Username: "testuser"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"username":"testuser"`,
		},
		{
			name:           "некорректный JSON",
			body:           `not json`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"invalid request body"`,
		},
		{
			name:           "отсутствует пароль",
			body:           `{"email":"test@example.com"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "field Password is a required field",
		},
		{
			name: "неверные учетные данные",
			body: `{"email":"test@example.com","password":"wrong"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "test@example.com", "wrong").
					Return("", nil, services.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   "Email or password is incorrect.",
		},
		{
			name: "внутренняя ошибка сервиса",
			body: `{"email":"test@example.com","password":"password123"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "test@example.com", "password123").
					Return("", nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"failed to create session"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/user_api/v1/account/login_session", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}

func TestLoginHandler_SessionCookie(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name          string
		body          string
		wantPersisted bool
	}{
		{
			name:          "сессионная cookie без remember",
			body:          `{"email":"test@example.com","password":"password123"}`,
			wantPersisted: false,
		},
		{
			name:          "долгоживущая cookie с remember",
			body:          `{"email":"test@example.com","password":"password123","remember":true}`,
			wantPersisted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			mockService.On("Login", mock.Anything, "test@example.com", "password123").
				Return("jwt-token", &models.User{Username: "testuser"}, nil)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/user_api/v1/account/login_session", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			var session *http.Cookie
			for _, c := range w.Result().Cookies() {
				if c.Name == middlewarectx.SessionCookieName {
					session = c
				}
			}
			if assert.NotNil(t, session, "session cookie must be set") {
				assert.Equal(t, "jwt-token", session.Value)
				assert.True(t, session.HttpOnly)
				assert.Equal(t, tt.wantPersisted, !session.Expires.IsZero())
			}

			mockService.AssertExpectations(t)
		})
	}
}
