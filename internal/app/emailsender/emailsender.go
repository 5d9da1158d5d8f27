// Package emailsender собирает почтовый воркер: подключение к брокеру
// сообщений, SMTP-транспорт и потребителей очередей почтовых задач.
package emailsender

import (
	"context"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/learning-user-api/internal/config"
	"github.com/magabrotheeeer/learning-user-api/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/learning-user-api/internal/lib/smtp"
	senderservice "github.com/magabrotheeeer/learning-user-api/internal/services/emailsender"
)

type App struct {
	conn          *amqp.Connection
	ch            *amqp.Channel
	senderService *senderservice.SenderService
	logger        *slog.Logger
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}

	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetEmailQueues())
	if err != nil {
		conn.Close()
		return nil, err
	}

	newTransport := smtp.NewTransport(cfg, logger)
	senderService := senderservice.NewSenderService(cfg, logger, newTransport)

	return &App{
		conn:          conn,
		ch:            ch,
		senderService: senderService,
		logger:        logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	err := rabbitmq.ConsumerMessage(ctx, a.ch, "user.welcome", a.senderService.SendWelcomeEmail)
	if err != nil {
		a.logger.Error("failed to start user.welcome consumer", slog.Any("err", err))
		return err
	}

	err = rabbitmq.ConsumerMessage(ctx, a.ch, "user.password_reset", a.senderService.SendPasswordResetEmail)
	if err != nil {
		a.logger.Error("failed to start user.password_reset consumer", slog.Any("err", err))
		return err
	}

	<-ctx.Done()
	a.logger.Info("email sender service shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}

	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}

	return nil
}
