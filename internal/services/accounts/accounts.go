// Package services содержит логику бизнес-уровня для регистрации и
// аутентификации пользователей.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/learning-user-api/internal/config"
	"github.com/magabrotheeeer/learning-user-api/internal/lib/jwt"
	"github.com/magabrotheeeer/learning-user-api/internal/lib/password"
	"github.com/magabrotheeeer/learning-user-api/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/learning-user-api/internal/lib/sl"
	"github.com/magabrotheeeer/learning-user-api/internal/models"
)

// ErrAccountCreationNotAllowed возвращается, когда публичная регистрация
// выключена в конфигурации платформы.
var ErrAccountCreationNotAllowed = errors.New("account creation not allowed")

// ErrInvalidCredentials возвращается при неверной паре email/пароль.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ConflictError перечисляет поля формы регистрации, значения которых уже
// заняты другими учетными записями.
type ConflictError struct {
	Fields []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("account fields already in use: %s", strings.Join(e.Fields, ", "))
}

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет пользователя с анкетой и настройками, возвращает UID.
	CreateUser(ctx context.Context, user models.User, profile models.Profile,
		prefs []models.Preference) (string, error)

	// FindConflicts возвращает имена полей, значения которых уже заняты.
	FindConflicts(ctx context.Context, email, username string) ([]string, error)

	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// MarketingRepository читает настройки маркетинговых рассылок.
type MarketingRepository interface {
	GetEmailMarketingConfig(ctx context.Context) (*models.EmailMarketingConfig, error)
}

// RegistrationData данные формы регистрации после валидации на уровне HTTP.
type RegistrationData struct {
	Email            string
	Name             string
	Username         string
	Password         string
	FirstName        string
	LastName         string
	Gender           string
	YearOfBirth      *int
	LevelOfEducation string
	Country          string
	City             string
	State            string
	Company          string
	Title            string
	MailingAddress   string
	Goals            string
}

// AccountsService отвечает за создание учетных записей, вход и валидацию JWT.
type AccountsService struct {
	users     UserRepository
	marketing MarketingRepository
	jwtMaker  jwt.Maker
	cfg       *config.Config
	log       *slog.Logger
}

// NewAccountsService создает новый экземпляр AccountsService.
func NewAccountsService(users UserRepository, marketing MarketingRepository,
	jwtMaker jwt.Maker, cfg *config.Config, log *slog.Logger) *AccountsService {
	return &AccountsService{
		users:     users,
		marketing: marketing,
		jwtMaker:  jwtMaker,
		cfg:       cfg,
		log:       log,
	}
}

// Register создает нового пользователя: проверяет конфликты email/username,
// хэширует пароль, сохраняет учетную запись с анкетой и настройками по
// умолчанию и ставит в очередь приветственное письмо.
func (s *AccountsService) Register(ctx context.Context, data RegistrationData,
	channel *amqp.Channel) (string, error) {
	if !s.cfg.Registration.AllowPublicAccountCreation {
		return "", ErrAccountCreationNotAllowed
	}

	conflicts, err := s.users.FindConflicts(ctx, data.Email, data.Username)
	if err != nil {
		return "", err
	}
	if len(conflicts) > 0 {
		return "", &ConflictError{Fields: conflicts}
	}

	hashed, err := password.GetHash(data.Password)
	if err != nil {
		return "", err
	}

	user := models.User{
		UID:          uuid.New().String(),
		Email:        data.Email,
		Username:     data.Username,
		PasswordHash: hashed,
		IsActive:     true,
	}
	profile := models.Profile{
		Name:             data.Name,
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		Gender:           data.Gender,
		YearOfBirth:      data.YearOfBirth,
		LevelOfEducation: data.LevelOfEducation,
		Country:          data.Country,
		City:             data.City,
		State:            data.State,
		Company:          data.Company,
		Title:            data.Title,
		MailingAddress:   data.MailingAddress,
		Goals:            data.Goals,
	}
	prefs := []models.Preference{
		{Key: models.PrefKeyLanguage, Value: s.cfg.Registration.DefaultLanguage},
		{Key: models.PrefKeyTimeZone, Value: s.cfg.Registration.DefaultTimeZone},
	}

	uid, err := s.users.CreateUser(ctx, user, profile, prefs)
	if err != nil {
		return "", err
	}

	s.log.Info("registered new user", slog.String("username", user.Username))

	if channel != nil {
		s.queueWelcomeEmail(ctx, channel, user)
	}
	return uid, nil
}

// queueWelcomeEmail публикует задачу на приветственное письмо. Шаблон и
// задержка отправки берутся из настроек маркетинговых рассылок. Ошибка
// постановки в очередь не отменяет регистрацию.
func (s *AccountsService) queueWelcomeEmail(ctx context.Context, channel *amqp.Channel, user models.User) {
	marketingCfg, err := s.marketing.GetEmailMarketingConfig(ctx)
	if err != nil {
		s.log.Warn("failed to load email marketing config", sl.Err(err))
		return
	}
	if !marketingCfg.Enabled {
		return
	}

	task := models.WelcomeEmailTask{
		Email:    user.Email,
		Username: user.Username,
		Template: marketingCfg.SailthruWelcomeTemplate,
		SendAt:   time.Now().UTC().Add(time.Duration(marketingCfg.WelcomeEmailSendDelay) * time.Second),
	}
	if err := rabbitmq.PublishMessage(channel, rabbitmq.EmailExchange, "welcome", task); err != nil {
		s.log.Warn("failed to queue welcome email", sl.Err(err))
		return
	}
	s.log.Info("queued welcome email", slog.String("username", user.Username))
}

// Login проверяет пароль пользователя и генерирует JWT для сессии.
func (s *AccountsService) Login(ctx context.Context, email, rawPassword string) (string, *models.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	token, err := s.jwtMaker.GenerateToken(user.Username, user.UID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// RequestPasswordReset ставит в очередь письмо для сброса пароля. Для
// неизвестного email задача не публикуется, но ошибка не возвращается.
func (s *AccountsService) RequestPasswordReset(ctx context.Context, email string, channel *amqp.Channel) error {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		s.log.Info("password reset requested for unknown email")
		return nil
	}

	task := models.PasswordResetEmailTask{
		Email:    user.Email,
		Username: user.Username,
	}
	if err := rabbitmq.PublishMessage(channel, rabbitmq.EmailExchange, "password_reset", task); err != nil {
		return err
	}
	s.log.Info("queued password reset email", slog.String("username", user.Username))
	return nil
}

// ValidateToken проверяет JWT и возвращает имя пользователя и его UID.
func (s *AccountsService) ValidateToken(_ context.Context, token string) (*models.User, bool, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, false, err
	}
	user := &models.User{
		Username: claims.Username,
		UID:      claims.UserUID,
	}
	return user, true, nil
}
