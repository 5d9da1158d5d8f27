package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/learning-user-api/internal/models"
)

// GetOrCreateForumRole возвращает роль форума для пары (курс, имя),
// создавая ее при отсутствии.
func (s *Storage) GetOrCreateForumRole(ctx context.Context, courseID, name string) (*models.ForumRole, error) {
	const op = "storage.GetOrCreateForumRole"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	role := &models.ForumRole{CourseID: courseID, Name: name}
	query := `INSERT INTO forum_roles (course_id, name)
			  VALUES ($1, $2)
			  ON CONFLICT (course_id, name) DO UPDATE SET name = EXCLUDED.name
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query, courseID, name).Scan(&role.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return role, nil
}

// AddUserToForumRole привязывает пользователя к роли форума.
func (s *Storage) AddUserToForumRole(ctx context.Context, roleID int, userUID string) error {
	const op = "storage.AddUserToForumRole"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO forum_role_users (role_id, user_uid)
			  VALUES ($1, $2)
			  ON CONFLICT DO NOTHING;`
	if _, err := s.DB.ExecContext(ctx, query, roleID, userUID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
