package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/learning-user-api/internal/models"
)

// CreateUser сохраняет нового пользователя вместе с анкетой и настройками
// по умолчанию в одной транзакции и возвращает его UID.
func (s *Storage) CreateUser(ctx context.Context, user models.User, profile models.Profile,
	prefs []models.Preference) (string, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var newUID string
	query := `INSERT INTO users (uid, email, username, password_hash, is_active)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING uid;`
	if err := tx.QueryRowContext(ctx, query,
		user.UID, user.Email, user.Username, user.PasswordHash, user.IsActive).Scan(&newUID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	query = `INSERT INTO user_profiles (user_uid, name, first_name, last_name, gender,
			     year_of_birth, level_of_education, country, city, state, company, title,
			     mailing_address, goals)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`
	if _, err := tx.ExecContext(ctx, query,
		newUID, profile.Name, profile.FirstName, profile.LastName, profile.Gender,
		profile.YearOfBirth, profile.LevelOfEducation, profile.Country, profile.City,
		profile.State, profile.Company, profile.Title, profile.MailingAddress,
		profile.Goals); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	for _, pref := range prefs {
		query = `INSERT INTO user_preferences (user_uid, key, value)
				 VALUES ($1, $2, $3);`
		if _, err := tx.ExecContext(ctx, query, newUID, pref.Key, pref.Value); err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// FindConflicts возвращает имена полей ("email", "username"), значения которых
// уже заняты существующими учетными записями.
func (s *Storage) FindConflicts(ctx context.Context, email, username string) ([]string, error) {
	const op = "storage.FindConflicts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var emailTaken, usernameTaken bool
	query := `SELECT
			      EXISTS(SELECT 1 FROM users WHERE email = $1),
			      EXISTS(SELECT 1 FROM users WHERE username = $2)`
	if err := s.DB.QueryRowContext(ctx, query, email, username).Scan(&emailTaken, &usernameTaken); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var conflicts []string
	if emailTaken {
		conflicts = append(conflicts, "email")
	}
	if usernameTaken {
		conflicts = append(conflicts, "username")
	}
	return conflicts, nil
}

// GetUserByEmail возвращает пользователя по email или ErrUserNotFound.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	return s.getUser(ctx, op, `WHERE email = $1`, email)
}

// GetUserByUsername возвращает пользователя по username или ErrUserNotFound.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.GetUserByUsername"
	return s.getUser(ctx, op, `WHERE username = $1`, username)
}

func (s *Storage) getUser(ctx context.Context, op, where string, arg any) (*models.User, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, email, username, password_hash, is_active, created_at
			  FROM users ` + where
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, arg)
	if err := row.Scan(&u.UID, &u.Email, &u.Username, &u.PasswordHash,
		&u.IsActive, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// ListUsers возвращает всех пользователей с анкетами.
func (s *Storage) ListUsers(ctx context.Context) ([]*models.User, error) {
	const op = "storage.ListUsers"

	query := usersWithProfilesQuery(``)
	return s.listUsers(ctx, op, query)
}

// ListUsersByForumRole возвращает пользователей с заданной ролью в курсе.
func (s *Storage) ListUsersByForumRole(ctx context.Context, courseID, roleName string) ([]*models.User, error) {
	const op = "storage.ListUsersByForumRole"

	query := usersWithProfilesQuery(`
		JOIN forum_role_users fru ON fru.user_uid = u.uid
		JOIN forum_roles fr ON fr.id = fru.role_id
		WHERE fr.course_id = $1 AND fr.name = $2`)
	return s.listUsers(ctx, op, query, courseID, roleName)
}

// ListUsersByPreferenceKey возвращает пользователей, у которых задана настройка
// с указанным ключом.
func (s *Storage) ListUsersByPreferenceKey(ctx context.Context, prefKey string) ([]*models.User, error) {
	const op = "storage.ListUsersByPreferenceKey"

	query := usersWithProfilesQuery(`
		JOIN user_preferences up ON up.user_uid = u.uid
		WHERE up.key = $1`)
	return s.listUsers(ctx, op, query, prefKey)
}

func usersWithProfilesQuery(joinAndWhere string) string {
	return `SELECT u.uid, u.email, u.username, u.is_active, u.created_at,
			    p.name, p.first_name, p.last_name, p.gender, p.year_of_birth,
			    p.level_of_education, p.country, p.city, p.state, p.company,
			    p.title, p.mailing_address, p.goals
			FROM users u
			LEFT JOIN user_profiles p ON p.user_uid = u.uid ` +
		joinAndWhere + `
			ORDER BY u.username`
}

func (s *Storage) listUsers(ctx context.Context, op, query string, args ...any) ([]*models.User, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.User
	for rows.Next() {
		var u models.User
		var p models.Profile
		var name, firstName, lastName, gender, levelOfEducation sql.NullString
		var country, city, state, company, title, mailingAddress, goals sql.NullString
		var yearOfBirth sql.NullInt64
		if err = rows.Scan(&u.UID, &u.Email, &u.Username, &u.IsActive, &u.CreatedAt,
			&name, &firstName, &lastName, &gender, &yearOfBirth,
			&levelOfEducation, &country, &city, &state, &company,
			&title, &mailingAddress, &goals,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		p.UserUID = u.UID
		p.Name = name.String
		p.FirstName = firstName.String
		p.LastName = lastName.String
		p.Gender = gender.String
		p.LevelOfEducation = levelOfEducation.String
		p.Country = country.String
		p.City = city.String
		p.State = state.String
		p.Company = company.String
		p.Title = title.String
		p.MailingAddress = mailingAddress.String
		p.Goals = goals.String
		if yearOfBirth.Valid {
			year := int(yearOfBirth.Int64)
			p.YearOfBirth = &year
		}
		u.Profile = &p
		result = append(result, &u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
