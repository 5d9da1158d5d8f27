// Package services содержит бизнес-логику пользовательских настроек:
// согласие на рассылку, часовые пояса и выборки пользователей.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/learning-user-api/internal/lib/courseid"
	"github.com/magabrotheeeer/learning-user-api/internal/lib/sl"
	"github.com/magabrotheeeer/learning-user-api/internal/models"
)

// InvalidCourseError возвращается, когда идентификатор курса не разбирается.
type InvalidCourseError struct {
	ID string
}

func (e *InvalidCourseError) Error() string {
	return fmt.Sprintf("no course '%s' found", e.ID)
}

// PreferenceRepository определяет методы для работы с настройками в хранилище.
type PreferenceRepository interface {
	// UpsertPreference создает или обновляет настройку пользователя.
	UpsertPreference(ctx context.Context, userUID, key, value string) error
	// ListPreferences возвращает настройки по фильтрам ключа и имени пользователя.
	ListPreferences(ctx context.Context, key, username string) ([]*models.Preference, error)
	// GetPreferencesForUsers возвращает настройки группы пользователей по UID.
	GetPreferencesForUsers(ctx context.Context, userUIDs []string) (map[string]map[string]string, error)
}

// UserRepository определяет выборки пользователей для read-only эндпоинтов.
type UserRepository interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	ListUsersByForumRole(ctx context.Context, courseID, roleName string) ([]*models.User, error)
	ListUsersByPreferenceKey(ctx context.Context, prefKey string) ([]*models.User, error)
}

// TimeZoneRepository читает справочник часовых поясов.
type TimeZoneRepository interface {
	ListTimeZones(ctx context.Context, countryCode string) ([]*models.TimeZone, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// UserSummary представление пользователя в ответах read-only эндпоинтов.
type UserSummary struct {
	Username    string            `json:"username"`
	Email       string            `json:"email"`
	Name        string            `json:"name"`
	Preferences map[string]string `json:"preferences"`
}

// PreferencesService реализует работу с настройками и выборками пользователей.
type PreferencesService struct {
	prefs     PreferenceRepository
	users     UserRepository
	timezones TimeZoneRepository
	cache     Cache
	log       *slog.Logger
}

// NewPreferencesService создает новый экземпляр PreferencesService.
func NewPreferencesService(prefs PreferenceRepository, users UserRepository,
	timezones TimeZoneRepository, cache Cache, log *slog.Logger) *PreferencesService {
	return &PreferencesService{
		prefs:     prefs,
		users:     users,
		timezones: timezones,
		cache:     cache,
		log:       log,
	}
}

// UpdateEmailOptIn записывает согласие пользователя на рассылку организации
// курса. Значением True считается только строка "true" без учета регистра,
// любое другое значение трактуется как отказ.
func (s *PreferencesService) UpdateEmailOptIn(ctx context.Context, username, rawCourseID, optIn string) error {
	key, err := courseid.Parse(rawCourseID)
	if err != nil {
		return &InvalidCourseError{ID: rawCourseID}
	}

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}

	value := "False"
	if strings.EqualFold(optIn, "true") {
		value = "True"
	}

	if err := s.prefs.UpsertPreference(ctx, user.UID, models.EmailOptInKey(key.Org), value); err != nil {
		return err
	}
	s.log.Info("updated email opt-in",
		slog.String("username", username), slog.String("org", key.Org), slog.String("value", value))
	return nil
}

// ListTimeZones возвращает часовые пояса, опционально отфильтрованные по коду
// страны, используя кеш или справочник.
func (s *PreferencesService) ListTimeZones(ctx context.Context, countryCode string) ([]*models.TimeZone, error) {
	cacheKey := "timezones:all"
	if countryCode != "" {
		cacheKey = "timezones:" + strings.ToUpper(countryCode)
	}

	var result []*models.TimeZone
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read time zones from cache", sl.Err(err))
	}
	if found {
		return result, nil
	}

	result, err = s.timezones.ListTimeZones(ctx, countryCode)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache time zones", slog.String("key", cacheKey), sl.Err(err))
	}
	return result, nil
}

// ListPreferences возвращает настройки, отфильтрованные по ключу и/или имени
// пользователя.
func (s *PreferencesService) ListPreferences(ctx context.Context, key, username string) ([]*models.Preference, error) {
	return s.prefs.ListPreferences(ctx, key, username)
}

// ListForumRoleUsers возвращает пользователей с заданной ролью форума в курсе
// вместе с их настройками.
func (s *PreferencesService) ListForumRoleUsers(ctx context.Context, rawCourseID, roleName string) ([]UserSummary, error) {
	key, err := courseid.Parse(rawCourseID)
	if err != nil {
		return nil, &InvalidCourseError{ID: rawCourseID}
	}

	users, err := s.users.ListUsersByForumRole(ctx, key.String(), roleName)
	if err != nil {
		return nil, err
	}
	return s.buildSummaries(ctx, users)
}

// ListAccounts возвращает всех пользователей вместе с их настройками.
func (s *PreferencesService) ListAccounts(ctx context.Context) ([]UserSummary, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return s.buildSummaries(ctx, users)
}

// ListPreferenceUsers возвращает пользователей, у которых задана настройка с
// указанным ключом, вместе с их настройками.
func (s *PreferencesService) ListPreferenceUsers(ctx context.Context, prefKey string) ([]UserSummary, error) {
	users, err := s.users.ListUsersByPreferenceKey(ctx, prefKey)
	if err != nil {
		return nil, err
	}
	return s.buildSummaries(ctx, users)
}

func (s *PreferencesService) buildSummaries(ctx context.Context, users []*models.User) ([]UserSummary, error) {
	uids := make([]string, 0, len(users))
	for _, u := range users {
		uids = append(uids, u.UID)
	}

	prefsByUID, err := s.prefs.GetPreferencesForUsers(ctx, uids)
	if err != nil {
		return nil, err
	}

	result := make([]UserSummary, 0, len(users))
	for _, u := range users {
		summary := UserSummary{
			Username:    u.Username,
			Email:       u.Email,
			Preferences: prefsByUID[u.UID],
		}
		if u.Profile != nil {
			summary.Name = u.Profile.Name
		}
		if summary.Preferences == nil {
			summary.Preferences = map[string]string{}
		}
		result = append(result, summary)
	}
	return result, nil
}
