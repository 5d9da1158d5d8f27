package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/learning-user-api/internal/models"
)

// UpsertPreference создает или обновляет настройку пользователя.
func (s *Storage) UpsertPreference(ctx context.Context, userUID, key, value string) error {
	const op = "storage.UpsertPreference"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO user_preferences (user_uid, key, value)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (user_uid, key) DO UPDATE SET value = EXCLUDED.value;`
	if _, err := s.DB.ExecContext(ctx, query, userUID, key, value); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListPreferences возвращает настройки, отфильтрованные по ключу и/или
// имени пользователя. Пустое значение фильтра означает его отсутствие.
func (s *Storage) ListPreferences(ctx context.Context, key, username string) ([]*models.Preference, error) {
	const op = "storage.ListPreferences"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT up.id, up.user_uid, u.username, up.key, up.value
			  FROM user_preferences up
			  JOIN users u ON u.uid = up.user_uid
			  WHERE ($1 = '' OR up.key = $1)
			    AND ($2 = '' OR u.username = $2)
			  ORDER BY up.id`
	rows, err := s.DB.QueryContext(ctx, query, key, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Preference
	for rows.Next() {
		var item models.Preference
		if err := rows.Scan(&item.ID, &item.UserUID, &item.Username, &item.Key, &item.Value); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetPreferencesForUsers возвращает настройки группы пользователей,
// сгруппированные по UID пользователя.
func (s *Storage) GetPreferencesForUsers(ctx context.Context, userUIDs []string) (map[string]map[string]string, error) {
	const op = "storage.GetPreferencesForUsers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result := make(map[string]map[string]string, len(userUIDs))
	if len(userUIDs) == 0 {
		return result, nil
	}

	query := `SELECT user_uid, key, value
			  FROM user_preferences
			  WHERE user_uid = ANY($1)`
	rows, err := s.DB.QueryContext(ctx, query, userUIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var uid, key, value string
		if err := rows.Scan(&uid, &key, &value); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if result[uid] == nil {
			result[uid] = make(map[string]string)
		}
		result[uid][key] = value
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
