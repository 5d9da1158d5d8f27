// Package models содержит доменные модели сервиса: учетная запись пользователя,
// анкета, пользовательские настройки и роли форума.
package models

import "time"

// User представляет зарегистрированного пользователя платформы.
type User struct {
	UID          string    // Уникальный идентификатор пользователя
	Email        string    // Электронная почта (уникальная)
	Username     string    // Имя пользователя (уникальное)
	PasswordHash string    // Хэш пароля пользователя
	IsActive     bool      // Активирована ли учетная запись
	CreatedAt    time.Time // Дата создания учетной записи
	Profile      *Profile  // Анкета пользователя (может отсутствовать)
}

// Profile анкета пользователя: демографические данные, собираемые при регистрации.
type Profile struct {
	UserUID          string
	Name             string
	FirstName        string
	LastName         string
	Gender           string
	YearOfBirth      *int
	LevelOfEducation string
	Country          string
	City             string
	State            string
	Company          string
	Title            string
	MailingAddress   string
	Goals            string
}
