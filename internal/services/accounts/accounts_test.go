package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/learning-user-api/internal/config"
	customjwt "github.com/magabrotheeeer/learning-user-api/internal/lib/jwt"
	"github.com/magabrotheeeer/learning-user-api/internal/lib/password"
	"github.com/magabrotheeeer/learning-user-api/internal/models"
	services "github.com/magabrotheeeer/learning-user-api/internal/services/accounts"
)

// Мок для UserRepository
type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) CreateUser(ctx context.Context, user models.User, profile models.Profile,
	prefs []models.Preference) (string, error) {
	args := m.Called(ctx, user, profile, prefs)
	return args.String(0), args.Error(1)
}

func (m *UserRepoMock) FindConflicts(ctx context.Context, email, username string) ([]string, error) {
	args := m.Called(ctx, email, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *UserRepoMock) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// Мок для MarketingRepository
type MarketingRepoMock struct {
	mock.Mock
}

func (m *MarketingRepoMock) GetEmailMarketingConfig(ctx context.Context) (*models.EmailMarketingConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EmailMarketingConfig), args.Error(1)
}

// Мок для jwt.Maker
type JwtMakerMock struct {
	mock.Mock
}

func (m *JwtMakerMock) GenerateToken(username, useruid string) (string, error) {
	args := m.Called(username, useruid)
	return args.String(0), args.Error(1)
}

func (m *JwtMakerMock) ParseToken(token string) (*customjwt.CustomClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customjwt.CustomClaims), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newTestConfig(allowCreation bool) *config.Config {
	return &config.Config{
		PlatformName: "Open Learning",
		Registration: config.Registration{
			AllowPublicAccountCreation: allowCreation,
			DefaultLanguage:            "en",
			DefaultTimeZone:            "UTC",
		},
	}
}

func TestAccountsService_Register(t *testing.T) {
	data := services.RegistrationData{
		Email:    "test@example.com",
		Name:     "Test User",
		Username: "testuser",
		Password: "password123",
		Country:  "FR",
	}

	tests := []struct {
		name        string
		data        services.RegistrationData
		allow       bool
		setupMocks  func(r *UserRepoMock)
		wantUserUID string
		wantErr     error
		errMsg      string
	}{
		{
			name:  "successful registration",
			data:  data,
			allow: true,
			setupMocks: func(r *UserRepoMock) {
				r.On("FindConflicts", mock.Anything, "test@example.com", "testuser").
					Return(nil, nil).Once()
				r.On("CreateUser", mock.Anything, mock.MatchedBy(func(user models.User) bool {
					return user.Email == "test@example.com" &&
						user.Username == "testuser" &&
						user.PasswordHash != "" &&
						user.PasswordHash != "password123" &&
						user.IsActive
				}), mock.MatchedBy(func(profile models.Profile) bool {
					return profile.Name == "Test User" && profile.Country == "FR"
				}), mock.MatchedBy(func(prefs []models.Preference) bool {
					return len(prefs) == 2 &&
						prefs[0].Key == models.PrefKeyLanguage && prefs[0].Value == "en" &&
						prefs[1].Key == models.PrefKeyTimeZone && prefs[1].Value == "UTC"
				})).Return("some-uuid-string", nil).Once()
			},
			wantUserUID: "some-uuid-string",
		},
		{
			name:       "account creation disabled",
			data:       data,
			allow:      false,
			setupMocks: func(_ *UserRepoMock) {},
			wantErr:    services.ErrAccountCreationNotAllowed,
		},
		{
			name:  "email already taken",
			data:  data,
			allow: true,
			setupMocks: func(r *UserRepoMock) {
				r.On("FindConflicts", mock.Anything, "test@example.com", "testuser").
					Return([]string{"email"}, nil).Once()
			},
			errMsg: "already in use",
		},
		{
			name:  "repository error",
			data:  data,
			allow: true,
			setupMocks: func(r *UserRepoMock) {
				r.On("FindConflicts", mock.Anything, "test@example.com", "testuser").
					Return(nil, nil).Once()
				r.On("CreateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return("", errors.New("db error")).Once()
			},
			errMsg: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			marketing := new(MarketingRepoMock)
			jwtMock := new(JwtMakerMock)
			svc := services.NewAccountsService(repo, marketing, jwtMock, newTestConfig(tt.allow), newNoopLogger())

			tt.setupMocks(repo)

			got, err := svc.Register(context.Background(), tt.data, nil)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.wantUserUID, got)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestAccountsService_Register_ConflictFields(t *testing.T) {
	repo := new(UserRepoMock)
	marketing := new(MarketingRepoMock)
	jwtMock := new(JwtMakerMock)
	svc := services.NewAccountsService(repo, marketing, jwtMock, newTestConfig(true), newNoopLogger())

	repo.On("FindConflicts", mock.Anything, "taken@example.com", "takenuser").
		Return([]string{"email", "username"}, nil).Once()

	_, err := svc.Register(context.Background(), services.RegistrationData{
		Email:    "taken@example.com",
		Username: "takenuser",
		Password: "password123",
	}, nil)

	var conflictErr *services.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, []string{"email", "username"}, conflictErr.Fields)
	repo.AssertExpectations(t)
}

func TestAccountsService_Login(t *testing.T) {
	rawPassword := "correctpassword"

	hashedPassword, err := password.GetHash(rawPassword)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	testUser := &models.User{
		UID:          "uid-123",
		Email:        "test@example.com",
		Username:     "testuser",
		PasswordHash: hashedPassword,
		IsActive:     true,
	}

	tests := []struct {
		name       string
		email      string
		password   string
		setupMocks func(r *UserRepoMock, j *JwtMakerMock)
		wantToken  string
		wantErr    bool
		errMsg     string
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: rawPassword,
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "test@example.com").Return(testUser, nil).Once()
				j.On("GenerateToken", "testuser", "uid-123").Return("jwt-token-123", nil).Once()
			},
			wantToken: "jwt-token-123",
		},
		{
			name:     "user not found",
			email:    "missing@example.com",
			password: "password",
			setupMocks: func(r *UserRepoMock, _ *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "missing@example.com").
					Return(nil, errors.New("user not found")).Once()
			},
			wantErr: true,
			errMsg:  "invalid credentials",
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "wrongpassword",
			setupMocks: func(r *UserRepoMock, _ *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "test@example.com").Return(testUser, nil).Once()
			},
			wantErr: true,
			errMsg:  "invalid credentials",
		},
		{
			name:     "token generation error",
			email:    "test@example.com",
			password: rawPassword,
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "test@example.com").Return(testUser, nil).Once()
				j.On("GenerateToken", "testuser", "uid-123").Return("", errors.New("token error")).Once()
			},
			wantErr: true,
			errMsg:  "token error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			marketing := new(MarketingRepoMock)
			jwtMock := new(JwtMakerMock)
			svc := services.NewAccountsService(repo, marketing, jwtMock, newTestConfig(true), newNoopLogger())

			tt.setupMocks(repo, jwtMock)

			token, user, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
				assert.Equal(t, "testuser", user.Username)
			}

			repo.AssertExpectations(t)
			jwtMock.AssertExpectations(t)
		})
	}
}

func TestAccountsService_ValidateToken(t *testing.T) {
	validClaims := &customjwt.CustomClaims{
		Username: "testuser",
		UserUID:  "uid-123",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	tests := []struct {
		name       string
		token      string
		setupMocks func(j *JwtMakerMock)
		wantUser   *models.User
		wantValid  bool
		wantErr    bool
	}{
		{
			name:  "valid token",
			token: "valid-token",
			setupMocks: func(j *JwtMakerMock) {
				j.On("ParseToken", "valid-token").Return(validClaims, nil).Once()
			},
			wantUser: &models.User{
				Username: "testuser",
				UID:      "uid-123",
			},
			wantValid: true,
		},
		{
			name:  "invalid token",
			token: "invalid-token",
			setupMocks: func(j *JwtMakerMock) {
				j.On("ParseToken", "invalid-token").Return(nil, errors.New("invalid token")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			marketing := new(MarketingRepoMock)
			jwtMock := new(JwtMakerMock)
			svc := services.NewAccountsService(repo, marketing, jwtMock, newTestConfig(true), newNoopLogger())

			tt.setupMocks(jwtMock)

			user, valid, err := svc.ValidateToken(context.Background(), tt.token)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.wantUser, user)
			assert.Equal(t, tt.wantValid, valid)

			jwtMock.AssertExpectations(t)
		})
	}
}
