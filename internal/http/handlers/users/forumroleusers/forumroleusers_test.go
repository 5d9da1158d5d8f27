package forumroleusers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	services "github.com/magabrotheeeer/learning-user-api/internal/services/preferences"
)

// MockService реализует интерфейс forumroleusers.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) ListForumRoleUsers(ctx context.Context, rawCourseID, roleName string) ([]services.UserSummary, error) {
	args := m.Called(ctx, rawCourseID, roleName)
	var users []services.UserSummary
	if args.Get(0) != nil {
		users = args.Get(0).([]services.UserSummary)
	}
	return users, args.Error(1)
}

func TestForumRoleUsersHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		roleName       string
		courseID       string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "успешная выборка",
			roleName: "Moderator",
			courseID: "course-v1:Org+Course+Run",
			setupMock: func(m *MockService) {
				m.On("ListForumRoleUsers", mock.Anything, "course-v1:Org+Course+Run", "Moderator").
					Return([]services.UserSummary{
						{
							Username:    "moderator1",
							Email:       "mod@example.com",
							Name:        "Mod One",
							Preferences: map[string]string{"pref-lang": "en"},
						},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"username":"moderator1"`,
		},
		{
			name:     "роль без пользователей дает пустой список",
			roleName: "Administrator",
			courseID: "course-v1:Org+Course+Run",
			setupMock: func(m *MockService) {
				m.On("ListForumRoleUsers", mock.Anything, "course-v1:Org+Course+Run", "Administrator").
					Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:     "некорректный идентификатор курса",
			roleName: "Moderator",
			courseID: "garbage",
			setupMock: func(m *MockService) {
				m.On("ListForumRoleUsers", mock.Anything, "garbage", "Moderator").
					Return(nil, &services.InvalidCourseError{ID: "garbage"})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "No course 'garbage' found",
		},
		{
			name:     "внутренняя ошибка сервиса",
			roleName: "Moderator",
			courseID: "course-v1:Org+Course+Run",
			setupMock: func(m *MockService) {
				m.On("ListForumRoleUsers", mock.Anything, "course-v1:Org+Course+Run", "Moderator").
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"failed to list users"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet,
				"/user_api/v1/forum_roles/"+tt.roleName+"/users?course_id="+tt.courseID, nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("name", tt.roleName)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
