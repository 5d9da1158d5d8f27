package models

// TimeZone часовой пояс с кодом страны, для которой он характерен.
type TimeZone struct {
	Name        string `json:"time_zone"`   // Имя зоны из базы tz, например "Europe/Paris"
	Description string `json:"description"` // Отображаемое название
	CountryCode string `json:"-"`
}
