package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/learning-user-api/internal/models"
)

// GetEmailMarketingConfig возвращает актуальные настройки маркетинговых
// рассылок. Если конфигурация не заведена, возвращает выключенную.
func (s *Storage) GetEmailMarketingConfig(ctx context.Context) (*models.EmailMarketingConfig, error) {
	const op = "storage.GetEmailMarketingConfig"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	cfg := &models.EmailMarketingConfig{}
	query := `SELECT enabled, sailthru_welcome_template, welcome_email_send_delay
			  FROM email_marketing_config
			  ORDER BY id DESC
			  LIMIT 1`
	err := s.DB.QueryRowContext(ctx, query).Scan(
		&cfg.Enabled, &cfg.SailthruWelcomeTemplate, &cfg.WelcomeEmailSendDelay)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.EmailMarketingConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cfg, nil
}
