package forms

import (
	"fmt"

	"github.com/magabrotheeeer/learning-user-api/internal/accounts"
	"github.com/magabrotheeeer/learning-user-api/internal/config"
)

// LoginForm возвращает описание формы входа: email, пароль и чекбокс
// "запомнить меня".
func LoginForm(cfg *config.Config) *Description {
	desc := NewDescription("post", "/user_api/v1/account/login_session")

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

	desc.AddField(Field{
		Name:  "password",
		Type:  FieldTypePassword,
		Label: "Password",
		Restrictions: Restrictions{
			MinLength: accounts.PasswordMinLength,
			MaxLength: accounts.PasswordMaxLength,
		},
		Required: true,
	})

	desc.AddField(Field{
		Name:         "remember",
		Type:         FieldTypeCheckbox,
		Label:        "Remember me",
		DefaultValue: false,
		Required:     false,
	})

	return desc
}
