package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/learning-user-api/internal/models"
)

// ListTimeZones возвращает часовые пояса. При непустом countryCode — только
// характерные для страны (код сравнивается без учета регистра), иначе все.
func (s *Storage) ListTimeZones(ctx context.Context, countryCode string) ([]*models.TimeZone, error) {
	const op = "storage.ListTimeZones"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT name, country_code
			  FROM time_zones
			  WHERE ($1 = '' OR country_code = $1)
			  ORDER BY name`
	rows, err := s.DB.QueryContext(ctx, query, strings.ToUpper(countryCode))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.TimeZone
	for rows.Next() {
		var item models.TimeZone
		if err := rows.Scan(&item.Name, &item.CountryCode); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		item.Description = describeTimeZone(item.Name)
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// describeTimeZone строит отображаемое название зоны: "Europe/Paris" ->
// "Paris (Europe)".
func describeTimeZone(name string) string {
	parts := strings.SplitN(name, "/", 2)
	if len(parts) != 2 {
		return name
	}
	city := strings.ReplaceAll(parts[1], "_", " ")
	return fmt.Sprintf("%s (%s)", city, parts[0])
}
