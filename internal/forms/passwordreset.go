package forms

import (
	"fmt"

	"github.com/magabrotheeeer/learning-user-api/internal/accounts"
	"github.com/magabrotheeeer/learning-user-api/internal/config"
)

// PasswordResetForm возвращает описание формы сброса пароля: только email.
func PasswordResetForm(cfg *config.Config) *Description {
	desc := NewDescription("post", "/user_api/v1/account/password_reset")

	desc.AddField(Field{
		Name:        "email",
		Type:        FieldTypeEmail,
		Label:       "Email",
		Placeholder: "username@domain.com",
		Instructions: fmt.Sprintf(
			"The email address you used to register with %s", cfg.PlatformName),
		Restrictions: Restrictions{
			MinLength: accounts.EmailMinLength,
			MaxLength: accounts.EmailMaxLength,
		},
		Required: true,
	})

	return desc
}
