package timezones

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

	"github.com/magabrotheeeer/learning-user-api/internal/models"
)

// MockService реализует интерфейс timezones.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) ListTimeZones(ctx context.Context, countryCode string) ([]*models.TimeZone, error) {
	args := m.Called(ctx, countryCode)
	var zones []*models.TimeZone
	if args.Get(0) != nil {
		zones = args.Get(0).([]*models.TimeZone)
	}
	return zones, args.Error(1)
}

func TestTimeZonesHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		url            string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "список без фильтра",
			url:  "/user_api/v1/preferences/time_zones",
			setupMock: func(m *MockService) {
				m.On("ListTimeZones", mock.Anything, "").Return([]*models.TimeZone{
					{Name: "Europe/Paris", Description: "Paris (Europe)"},
					{Name: "Pacific/Auckland", Description: "Auckland (Pacific)"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"time_zone":"Europe/Paris"`,
		},
		{
			name: "фильтр по стране",
			url:  "/user_api/v1/preferences/time_zones?country_code=fr",
			setupMock: func(m *MockService) {
				m.On("ListTimeZones", mock.Anything, "fr").Return([]*models.TimeZone{
					{Name: "Europe/Paris", Description: "Paris (Europe)"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"description":"Paris (Europe)"`,
		},
		{
			name: "неизвестная страна дает пустой список",
			url:  "/user_api/v1/preferences/time_zones?country_code=ZZ",
			setupMock: func(m *MockService) {
				m.On("ListTimeZones", mock.Anything, "ZZ").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "внутренняя ошибка сервиса",
			url:  "/user_api/v1/preferences/time_zones",
			setupMock: func(m *MockService) {
				m.On("ListTimeZones", mock.Anything, "").Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"failed to list time zones"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
