package models

// ForumRole роль пользователя на форуме курса, например "Moderator".
// Пара (CourseID, Name) уникальна; пользователи привязываются через таблицу связи.
type ForumRole struct {
	ID       int
	CourseID string
	Name     string
}
