package models

// Ключи пользовательских настроек, создаваемых при регистрации.
const (
	PrefKeyLanguage = "pref-lang"
	PrefKeyTimeZone = "time_zone"
)

// EmailOptInKeyPrefix префикс ключа настройки согласия на рассылку;
// полный ключ дополняется кодом организации курса.
const EmailOptInKeyPrefix = "email-optin-"

// Preference одна пользовательская настройка вида ключ/значение.
// Пара (UserUID, Key) уникальна.
type Preference struct {
	ID       int
	UserUID  string
	Username string
	Key      string
	Value    string
}

// EmailOptInKey возвращает ключ настройки согласия на рассылку организации.
func EmailOptInKey(org string) string {
	return EmailOptInKeyPrefix + org
}
