package models

// EmailMarketingConfig настройки маркетинговых рассылок платформы.
// Хранится одной строкой в базе данных.
type EmailMarketingConfig struct {
	Enabled                 bool
	SailthruWelcomeTemplate string // Шаблон Sailthru для приветственного письма
	WelcomeEmailSendDelay   int    // Задержка отправки приветственного письма, секунды
}
