// Package services содержит почтовый воркер: обработку задач на приветственные
// письма и письма для сброса пароля.
package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/learning-user-api/internal/config"
	"github.com/magabrotheeeer/learning-user-api/internal/lib/sl"
	"github.com/magabrotheeeer/learning-user-api/internal/lib/smtp"
	"github.com/magabrotheeeer/learning-user-api/internal/models"
)

// SenderService отправляет письма по задачам из очередей.
type SenderService struct {
	transport smtp.TransportInterface
	cfg       *config.Config
	log       *slog.Logger
}

// NewSenderService создает новый экземпляр SenderService.
func NewSenderService(cfg *config.Config, log *slog.Logger, transport smtp.TransportInterface) *SenderService {
	return &SenderService{
		transport: transport,
		cfg:       cfg,
		log:       log,
	}
}

// SendWelcomeEmail обрабатывает задачу на приветственное письмо. Если время
// отправки еще не наступило, ожидает его.
func (s *SenderService) SendWelcomeEmail(body []byte) error {
	var task models.WelcomeEmailTask
	if err := json.Unmarshal(body, &task); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	if delay := time.Until(task.SendAt); delay > 0 {
		s.log.Info("delaying welcome email",
			slog.String("username", task.Username), slog.Duration("delay", delay))
		time.Sleep(delay)
	}

	to := []string{task.Email}
	subject := fmt.Sprintf("Welcome to %s", s.cfg.PlatformName)
	bodyText := fmt.Sprintf("Hello, %s!\n\nYour %s account has been created.\n\nStart learning: %s",
		task.Username, s.cfg.PlatformName, s.cfg.MarketingLinks.Root)

	return s.sendEmail(to, subject, bodyText)
}

// SendPasswordResetEmail обрабатывает задачу на письмо для сброса пароля.
func (s *SenderService) SendPasswordResetEmail(body []byte) error {
	var task models.PasswordResetEmailTask
	if err := json.Unmarshal(body, &task); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	to := []string{task.Email}
	subject := fmt.Sprintf("Password reset on %s", s.cfg.PlatformName)
	bodyText := fmt.Sprintf("Hello, %s!\n\nWe received a request to reset the password for your account.\nIf you made this request, follow the link: %s\n\nIf you did not request a reset, ignore this message.",
		task.Username, s.cfg.MarketingLinks.PasswordReset)

	return s.sendEmail(to, subject, bodyText)
}

func (s *SenderService) sendEmail(to []string, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.GetSMTPUser(),
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer client.Close()

	if err := client.Mail(s.transport.GetSMTPUser()); err != nil {
		s.log.Error("failed to set MAIL FROM", slog.String("from", s.transport.GetSMTPUser()), sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("failed to set RCPT TO", slog.String("recipient", addr), sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get data writer", sl.Err(err))
		return err
	}

	_, err = wc.Write([]byte(msg))
	if err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return err
	}

	if err = wc.Close(); err != nil {
		s.log.Error("failed to close data writer", sl.Err(err))
		return err
	}

	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return err
	}

	s.log.Info("email sent", slog.Any("to", to))
	return nil
}
