// Package accounts содержит константы учетных записей: ограничения длины полей
// и тексты сообщений об ошибках, используемые формами и обработчиками.
package accounts

// Ограничения длины полей учетной записи.
const (
	EmailMinLength = 3
	EmailMaxLength = 254

	UsernameMinLength = 2
	UsernameMaxLength = 30

	PasswordMinLength = 2
	PasswordMaxLength = 75

	NameMaxLength = 255
)

// Сообщения о конфликте уникальности при регистрации.
// Подставляются через fmt.Sprintf c email или username соответственно.
const (
	EmailConflictMsg    = "It looks like %s belongs to an existing account. Try again with a different email address."
	UsernameConflictMsg = "It looks like %s belongs to an existing account. Try again with a different username."
)

// Сообщения об отсутствии обязательных полей формы регистрации.
const (
	RequiredFieldConfirmEmailMsg     = "The email addresses do not match."
	RequiredFieldLevelOfEducationMsg = "Please select your highest level of education completed."
	RequiredFieldMailingAddressMsg   = "Please enter your mailing address."
	RequiredFieldGoalsMsg            = "Please tell us your goals."
	RequiredFieldCityMsg             = "Please enter your city."
	RequiredFieldCountryMsg          = "Please select your country."
)
