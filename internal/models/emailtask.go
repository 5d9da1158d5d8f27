package models

import "time"

// WelcomeEmailTask задача на отправку приветственного письма новому пользователю.
// Публикуется сервисом регистрации и обрабатывается почтовым воркером.
type WelcomeEmailTask struct {
	Email    string    `json:"email"`
	Username string    `json:"username"`
	Template string    `json:"template"`
	SendAt   time.Time `json:"send_at"`
}

// PasswordResetEmailTask задача на отправку письма для сброса пароля.
type PasswordResetEmailTask struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}
