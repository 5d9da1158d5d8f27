package passwordreset

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockService реализует интерфейс passwordreset.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) RequestPasswordReset(ctx context.Context, email string, channel *amqp.Channel) error {
	args := m.Called(ctx, email, channel)
	return args.Error(0)
}

func TestPasswordResetHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "известный email",
			body: `{"email":"known@example.com"}`,
			setupMock: func(m *MockService) {
				m.On("RequestPasswordReset", mock.Anything, "known@example.com", mock.Anything).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "password reset email sent if the account exists",
		},
		{
			// сервис возвращает nil и для неизвестного email — ответ тот же
			name: "неизвестный email дает тот же ответ",
			body: `{"email":"unknown@example.com"}`,
			setupMock: func(m *MockService) {
				m.On("RequestPasswordReset", mock.Anything, "unknown@example.com", mock.Anything).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "password reset email sent if the account exists",
		},
		{
			name:           "некорректный email",
			body:           `{"email":"not-an-email"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "field Email must be a valid email address",
		},
		{
			name:           "некорректный JSON",
			body:           `not json`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"invalid request body"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService, nil)

			req := httptest.NewRequest(http.MethodPost, "/user_api/v1/account/password_reset", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
