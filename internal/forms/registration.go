package forms

import (
	"fmt"
	"strings"

	"github.com/magabrotheeeer/learning-user-api/internal/accounts"
	"github.com/magabrotheeeer/learning-user-api/internal/config"
)

// Видимость дополнительного поля регистрации.
const (
	VisibilityRequired = "required"
	VisibilityOptional = "optional"
	VisibilityHidden   = "hidden"
)

// DefaultFields поля, которые всегда присутствуют в форме и обязательны.
var DefaultFields = []string{"email", "name", "username", "password"}

// ExtraFields дополнительные поля, видимость которых задается конфигурацией.
var ExtraFields = []string{
	"confirm_email",
	"first_name",
	"last_name",
	"city",
	"state",
	"country",
	"gender",
	"year_of_birth",
	"level_of_education",
	"company",
	"title",
	"mailing_address",
	"goals",
	"honor_code",
	"terms_of_service",
}

// extensionFieldTypeMap отображает класс поля формы расширения в тип поля описания.
var extensionFieldTypeMap = map[string]string{
	"CharField":        FieldTypeText,
	"EmailField":       FieldTypeEmail,
	"ChoiceField":      FieldTypeSelect,
	"TypedChoiceField": FieldTypeSelect,
	"BooleanField":     FieldTypeCheckbox,
	"TextField":        FieldTypeTextarea,
	"IntegerField":     FieldTypeText,
	"DateField":        FieldTypeText,
	"HiddenField":      FieldTypeHidden,
}

// ThirdPartyContext состояние активного пайплайна сторонней аутентификации,
// данные которого предзаполняют форму регистрации.
type ThirdPartyContext struct {
	ProviderName         string
	SkipRegistrationForm bool
	Enterprise           bool
	FieldOverrides       map[string]string
}

type fieldHandler func(d *Description, required bool)

// RegistrationBuilder строит описание формы регистрации по конфигурации
// деплоймента и, опционально, по данным стороннего провайдера аутентификации.
type RegistrationBuilder struct {
	cfg         *config.Config
	extraFields map[string]string
	fieldOrder  []string
	handlers    map[string]fieldHandler
	extension   []extensionField
}

type extensionField struct {
	config.ExtensionField
	fieldType string
}

// NewRegistrationBuilder валидирует конфигурацию формы регистрации и создает
// построитель. Недопустимое значение видимости или неизвестный класс поля
// формы расширения — фатальная ошибка конфигурации.
func NewRegistrationBuilder(cfg *config.Config) (*RegistrationBuilder, error) {
	const op = "forms.NewRegistrationBuilder"

	extraFields := make(map[string]string, len(cfg.Registration.ExtraFields))
	for name, visibility := range cfg.Registration.ExtraFields {
		extraFields[name] = visibility
	}
	// Обратная совместимость: honor_code обязателен, если явно не настроен иначе.
	if _, ok := extraFields["honor_code"]; !ok {
		extraFields["honor_code"] = VisibilityRequired
	}

	for _, name := range ExtraFields {
		visibility, ok := extraFields[name]
		if !ok {
			continue
		}
		switch visibility {
		case VisibilityRequired, VisibilityOptional, VisibilityHidden:
		default:
			return nil, fmt.Errorf(
				"%s: registration extra field %q visibility must be required, optional, or hidden, got %q",
				op, name, visibility)
		}
	}

	b := &RegistrationBuilder{
		cfg:         cfg,
		extraFields: extraFields,
	}
	b.handlers = map[string]fieldHandler{
		"email":              b.addEmailField,
		"name":               b.addNameField,
		"username":           b.addUsernameField,
		"password":           b.addPasswordField,
		"confirm_email":      b.addConfirmEmailField,
		"first_name":         b.addFirstNameField,
		"last_name":          b.addLastNameField,
		"city":               b.addCityField,
		"state":              b.addStateField,
		"country":            b.addCountryField,
		"gender":             b.addGenderField,
		"year_of_birth":      b.addYearOfBirthField,
		"level_of_education": b.addLevelOfEducationField,
		"company":            b.addCompanyField,
		"title":              b.addTitleField,
		"mailing_address":    b.addMailingAddressField,
		"goals":              b.addGoalsField,
		"honor_code":         b.addHonorCodeField,
		"terms_of_service":   b.addTermsOfServiceField,
	}

	validFields := append(append([]string{}, DefaultFields...), ExtraFields...)
	fieldOrder := cfg.Registration.FieldOrder
	if len(fieldOrder) == 0 || !sameFieldSet(validFields, fieldOrder) {
		fieldOrder = validFields
	}
	b.fieldOrder = fieldOrder

	for _, ext := range cfg.Registration.ExtensionForm {
		fieldType := ext.FieldType
		if fieldType == "" {
			fieldType = extensionFieldTypeMap[ext.Class]
		}
		if fieldType == "" {
			return nil, fmt.Errorf(
				"%s: field type not recognized for registration extension field %q of class %q",
				op, ext.Name, ext.Class)
		}
		if _, ok := allowedFieldTypes[fieldType]; !ok {
			return nil, fmt.Errorf(
				"%s: field type %q not allowed for registration extension field %q",
				op, fieldType, ext.Name)
		}
		b.extension = append(b.extension, extensionField{ExtensionField: ext, fieldType: fieldType})
	}

	return b, nil
}

// Build возвращает описание формы регистрации. tpa может быть nil, если
// активного пайплайна сторонней аутентификации нет.
func (b *RegistrationBuilder) Build(tpa *ThirdPartyContext) *Description {
	desc := NewDescription("post", "/user_api/v1/account/registration/")
	b.applyThirdPartyOverrides(desc, tpa)

	if len(b.extension) > 0 {
		// Поля по умолчанию всегда обязательны
		for _, name := range DefaultFields {
			b.handlers[name](desc, true)
		}
		for _, ext := range b.extension {
			b.addExtensionField(desc, ext)
		}
		for _, name := range ExtraFields {
			if b.isFieldVisible(name) {
				b.handlers[name](desc, b.isFieldRequired(name))
			}
		}
		return desc
	}

	for _, name := range b.fieldOrder {
		if isDefaultField(name) {
			b.handlers[name](desc, true)
		} else if b.isFieldVisible(name) {
			b.handlers[name](desc, b.isFieldRequired(name))
		}
	}
	return desc
}

func (b *RegistrationBuilder) isFieldVisible(name string) bool {
	v := b.extraFields[name]
	return v == VisibilityRequired || v == VisibilityOptional
}

func (b *RegistrationBuilder) isFieldRequired(name string) bool {
	return b.extraFields[name] == VisibilityRequired
}

func isDefaultField(name string) bool {
	for _, d := range DefaultFields {
		if d == name {
			return true
		}
	}
	return false
}

func sameFieldSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, s := range a {
		set[s] = struct{}{}
	}
	for _, s := range b {
		if _, ok := set[s]; !ok {
			return false
		}
	}
	return true
}

func (b *RegistrationBuilder) applyThirdPartyOverrides(desc *Description, tpa *ThirdPartyContext) {
	if tpa == nil {
		return
	}

	// Провайдер настроен пропускать форму регистрации в корпоративном
	// контексте: скрываем все поля, кроме чекбоксов соглашений.
	hideAllButTerms := tpa.SkipRegistrationForm && tpa.Enterprise

	for _, name := range append(append([]string{}, DefaultFields...), ExtraFields...) {
		value, ok := tpa.FieldOverrides[name]
		if !ok {
			continue
		}
		desc.OverrideField(name, Override{DefaultValue: value})

		if hideAllButTerms && value != "" && name != "terms_of_service" && name != "honor_code" {
			desc.OverrideField(name, Override{
				Type:         strptr(FieldTypeHidden),
				Label:        strptr(""),
				Instructions: strptr(""),
			})
		}
	}

	// Пароль при сторонней аутентификации не запрашивается: пользователю
	// назначается случайный пароль, вход выполняется через провайдера.
	desc.OverrideField("password", Override{
		DefaultValue:      "",
		Type:              strptr(FieldTypeHidden),
		Required:          boolptr(false),
		Label:             strptr(""),
		Instructions:      strptr(""),
		ClearRestrictions: true,
	})

	providerName := tpa.ProviderName
	if providerName == "" {
		providerName = "Third Party"
	}
	desc.AddField(Field{
		Name:         "social_auth_provider",
		Type:         FieldTypeHidden,
		DefaultValue: providerName,
		Required:     false,
	})
}

func (b *RegistrationBuilder) addExtensionField(desc *Description, ext extensionField) {
	var options []Option
	for _, opt := range ext.Options {
		options = append(options, Option{Value: opt, Name: opt})
	}
	if len(options) > 0 && ext.WithBlank {
		options = withDefaultOption(options)
	}
	errorMessages := map[string]string{}
	if ext.ErrorMsg != "" {
		errorMessages["required"] = ext.ErrorMsg
	}
	desc.AddField(Field{
		Name:          ext.Name,
		Label:         ext.Label,
		Type:          ext.fieldType,
		DefaultValue:  ext.Default,
		Placeholder:   ext.Initial,
		Instructions:  ext.HelpText,
		Required:      ext.Required,
		Restrictions:  Restrictions{MinLength: ext.MinLength, MaxLength: ext.MaxLength},
		ErrorMessages: errorMessages,
		Options:       options,
	})
}

// withDefaultOption добавляет в начало списка пустой пункт "--".
func withDefaultOption(options []Option) []Option {
	result := make([]Option, 0, len(options)+1)
	result = append(result, Option{Value: "", Name: "--", Default: true})
	return append(result, options...)
}

func (b *RegistrationBuilder) addEmailField(desc *Description, required bool) {
	desc.AddField(Field{
		Name:         "email",
		Type:         FieldTypeEmail,
		Label:        "Email",
		Placeholder:  "username@domain.com",
		Instructions: "This is what you will use to login.",
		Restrictions: Restrictions{
			MinLength: accounts.EmailMinLength,
			MaxLength: accounts.EmailMaxLength,
		},
		Required: required,
	})
}

func (b *RegistrationBuilder) addConfirmEmailField(desc *Description, required bool) {
	desc.AddField(Field{
		Name:     "confirm_email",
		Label:    "Confirm Email",
		Required: required,
		ErrorMessages: map[string]string{
			"required": accounts.RequiredFieldConfirmEmailMsg,
		},
	})
}

func (b *RegistrationBuilder) addNameField(desc *Description, required bool) {
	desc.AddField(Field{
		Name:         "name",
		Label:        "Full Name",
		Placeholder:  "Jane Q. Learner",
		Instructions: "This name will be used on any certificates that you earn.",
		Restrictions: Restrictions{
			MaxLength: accounts.NameMaxLength,
		},
		Required: required,
	})
}

func (b *RegistrationBuilder) addUsernameField(desc *Description, required bool) {
	desc.AddField(Field{
		Name:         "username",
		Label:        "Public Username",
		Placeholder:  "Jane_Q_Learner",
		Instructions: "The name that will identify you in your courses. It cannot be changed later.",
		Restrictions: Restrictions{
			MinLength: accounts.UsernameMinLength,
			MaxLength: accounts.UsernameMaxLength,
		},
		Required: required,
	})
}

func (b *RegistrationBuilder) addPasswordField(desc *Description, required bool) {
	desc.AddField(Field{
		Name:  "password",
		Type:  FieldTypePassword,
		Label: "Password",
		Restrictions: Restrictions{
			MinLength: accounts.PasswordMinLength,
			MaxLength: accounts.PasswordMaxLength,
		},
		Required: required,
	})
}

func (b *RegistrationBuilder) addLevelOfEducationField(desc *Description, required bool) {
	desc.AddField(Field{
		Name:     "level_of_education",
		Type:     FieldTypeSelect,
		Label:    "Highest level of education completed",
		Options:  withDefaultOption(LevelOfEducationChoices),
		Required: required,
		ErrorMessages: map[string]string{
			"required": accounts.RequiredFieldLevelOfEducationMsg,
		},
	})
}

func (b *RegistrationBuilder) addGenderField(desc *Description, required bool) {
	desc.AddField(Field{
		Name:     "gender",
		Type:     FieldTypeSelect,
		Label:    "Gender",
		Options:  withDefaultOption(GenderChoices),
		Required: required,
	})
}

func (b *RegistrationBuilder) addYearOfBirthField(desc *Description, required bool) {
	desc.AddField(Field{
		Name:     "year_of_birth",
		Type:     FieldTypeSelect,
		Label:    "Year of birth",
		Options:  withDefaultOption(YearOfBirthOptions()),
		Required: required,
	})
}

func (b *RegistrationBuilder) addMailingAddressField(desc *Description, required bool) {
	desc.AddField(Field{
		Name:     "mailing_address",
		Type:     FieldTypeTextarea,
		Label:    "Mailing address",
		Required: required,
		ErrorMessages: map[string]string{
			"required": accounts.RequiredFieldMailingAddressMsg,
		},
	})
}

func (b *RegistrationBuilder) addGoalsField(desc *Description, required bool) {
	desc.AddField(Field{
		Name:     "goals",
		Type:     FieldTypeTextarea,
		Label:    fmt.Sprintf("Tell us why you're interested in %s", b.cfg.PlatformName),
		Required: required,
		ErrorMessages: map[string]string{
			"required": accounts.RequiredFieldGoalsMsg,
		},
	})
}

func (b *RegistrationBuilder) addCityField(desc *Description, required bool) {
	desc.AddField(Field{
		Name:     "city",
		Label:    "City",
		Required: required,
		ErrorMessages: map[string]string{
			"required": accounts.RequiredFieldCityMsg,
		},
	})
}

func (b *RegistrationBuilder) addStateField(desc *Description, required bool) {
	desc.AddField(Field{
		Name:     "state",
		Label:    "State/Province/Region",
		Required: required,
	})
}

func (b *RegistrationBuilder) addCompanyField(desc *Description, required bool) {
	desc.AddField(Field{
		Name:     "company",
		Label:    "Company",
		Required: required,
	})
}

func (b *RegistrationBuilder) addTitleField(desc *Description, required bool) {
	desc.AddField(Field{
		Name:     "title",
		Label:    "Title",
		Required: required,
	})
}

func (b *RegistrationBuilder) addFirstNameField(desc *Description, required bool) {
	desc.AddField(Field{
		Name:     "first_name",
		Label:    "First Name",
		Required: required,
	})
}

func (b *RegistrationBuilder) addLastNameField(desc *Description, required bool) {
	desc.AddField(Field{
		Name:     "last_name",
		Label:    "Last Name",
		Required: required,
	})
}

func (b *RegistrationBuilder) addCountryField(desc *Description, required bool) {
	// Код страны от стороннего провайдера приводится к верхнему регистру.
	if def, ok := desc.PendingDefault("country"); ok {
		desc.OverrideField("country", Override{DefaultValue: strings.ToUpper(def)})
	}

	desc.AddField(Field{
		Name:     "country",
		Type:     FieldTypeSelect,
		Label:    "Country",
		Options:  withDefaultOption(CountryChoices),
		Required: required,
		ErrorMessages: map[string]string{
			"required": accounts.RequiredFieldCountryMsg,
		},
	})
}

func (b *RegistrationBuilder) addHonorCodeField(desc *Description, required bool) {
	var termsLabel, termsLink, termsText string
	if b.isFieldVisible("terms_of_service") {
		// Отдельные чекбоксы: кодекс чести и пользовательское соглашение
		termsLabel = "Honor Code"
		termsLink = b.cfg.MarketingLinks.HonorCode
		termsText = "Review the Honor Code"
	} else {
		// Объединенный чекбокс
		termsLabel = "Terms of Service and Honor Code"
		termsLink = b.cfg.MarketingLinks.HonorCode
		termsText = "Review the Terms of Service and Honor Code"
	}

	desc.AddField(Field{
		Name:         "honor_code",
		Type:         FieldTypeCheckbox,
		Label:        fmt.Sprintf("I agree to the %s %s", b.cfg.PlatformName, termsLabel),
		DefaultValue: false,
		Required:     required,
		ErrorMessages: map[string]string{
			"required": fmt.Sprintf("You must agree to the %s %s", b.cfg.PlatformName, termsLabel),
		},
		SupplementalLink: termsLink,
		SupplementalText: termsText,
	})
}

func (b *RegistrationBuilder) addTermsOfServiceField(desc *Description, required bool) {
	const termsLabel = "Terms of Service"

	desc.AddField(Field{
		Name:         "terms_of_service",
		Type:         FieldTypeCheckbox,
		Label:        fmt.Sprintf("I agree to the %s %s", b.cfg.PlatformName, termsLabel),
		DefaultValue: false,
		Required:     required,
		ErrorMessages: map[string]string{
			"required": fmt.Sprintf("You must agree to the %s %s", b.cfg.PlatformName, termsLabel),
		},
		SupplementalLink: b.cfg.MarketingLinks.TermsOfService,
		SupplementalText: "Review the Terms of Service",
	})
}
