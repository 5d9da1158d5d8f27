// Package forms реализует построение JSON-описаний веб-форм сервиса:
// регистрации, входа и сброса пароля.
//
// Описание формы отделяет клиентский UI от серверных правил валидации:
// клиент рендерит форму по описанию и не зависит от изменений набора полей.
package forms

import "encoding/json"

// Типы полей, допустимые в описании формы.
const (
	FieldTypeText     = "text"
	FieldTypeEmail    = "email"
	FieldTypeSelect   = "select"
	FieldTypeTextarea = "textarea"
	FieldTypeCheckbox = "checkbox"
	FieldTypePassword = "password"
	FieldTypeHidden   = "hidden"
)

var allowedFieldTypes = map[string]struct{}{
	FieldTypeText:     {},
	FieldTypeEmail:    {},
	FieldTypeSelect:   {},
	FieldTypeTextarea: {},
	FieldTypeCheckbox: {},
	FieldTypePassword: {},
	FieldTypeHidden:   {},
}

// Option один пункт выпадающего списка поля типа select.
type Option struct {
	Value   string `json:"value"`
	Name    string `json:"name"`
	Default bool   `json:"default,omitempty"`
}

// Restrictions ограничения значения поля.
type Restrictions struct {
	MinLength int `json:"min_length,omitempty"`
	MaxLength int `json:"max_length,omitempty"`
}

// Field описывает одно поле формы.
//
// DefaultValue может быть строкой (текстовые поля) или bool (чекбоксы).
type Field struct {
	Name             string            `json:"name"`
	Label            string            `json:"label"`
	Type             string            `json:"type"`
	DefaultValue     any               `json:"defaultValue"`
	Placeholder      string            `json:"placeholder"`
	Instructions     string            `json:"instructions"`
	Required         bool              `json:"required"`
	Restrictions     Restrictions      `json:"restrictions"`
	ErrorMessages    map[string]string `json:"errorMessages"`
	Options          []Option          `json:"options,omitempty"`
	SupplementalLink string            `json:"supplementalLink"`
	SupplementalText string            `json:"supplementalText"`
}

// Override набор свойств поля, переопределяемых поверх значений по умолчанию.
// nil-поля остаются без изменений. ClearRestrictions сбрасывает ограничения.
type Override struct {
	DefaultValue      any
	Type              *string
	Required          *bool
	Label             *string
	Instructions      *string
	ClearRestrictions bool
}

// Description описание формы целиком: метод, адрес отправки и список полей.
type Description struct {
	Method    string  `json:"method"`
	SubmitURL string  `json:"submit_url"`
	Fields    []Field `json:"fields"`

	// Переопределения для полей, которые еще не добавлены в форму.
	pending map[string][]Override
}

// NewDescription создает пустое описание формы.
func NewDescription(method, submitURL string) *Description {
	return &Description{
		Method:    method,
		SubmitURL: submitURL,
		pending:   make(map[string][]Override),
	}
}

// AddField добавляет поле в форму, применяя накопленные переопределения.
// Пустой тип трактуется как текстовое поле.
func (d *Description) AddField(f Field) {
	if f.Type == "" {
		f.Type = FieldTypeText
	}
	if f.DefaultValue == nil {
		f.DefaultValue = ""
	}
	if f.ErrorMessages == nil {
		f.ErrorMessages = map[string]string{}
	}
	for _, o := range d.pending[f.Name] {
		applyOverride(&f, o)
	}
	delete(d.pending, f.Name)
	d.Fields = append(d.Fields, f)
}

// OverrideField переопределяет свойства поля. Если поле уже добавлено,
// изменение применяется немедленно, иначе откладывается до AddField.
func (d *Description) OverrideField(name string, o Override) {
	for i := range d.Fields {
		if d.Fields[i].Name == name {
			applyOverride(&d.Fields[i], o)
			return
		}
	}
	d.pending[name] = append(d.pending[name], o)
}

// PendingDefault возвращает отложенное значение по умолчанию для поля,
// если оно было переопределено до добавления поля в форму.
func (d *Description) PendingDefault(name string) (string, bool) {
	for _, o := range d.pending[name] {
		if s, ok := o.DefaultValue.(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// ToJSON сериализует описание формы.
func (d *Description) ToJSON() ([]byte, error) {
	if d.Fields == nil {
		d.Fields = []Field{}
	}
	return json.Marshal(d)
}

func applyOverride(f *Field, o Override) {
	if o.DefaultValue != nil {
		f.DefaultValue = o.DefaultValue
	}
	if o.Type != nil {
		f.Type = *o.Type
	}
	if o.Required != nil {
		f.Required = *o.Required
	}
	if o.Label != nil {
		f.Label = *o.Label
	}
	if o.Instructions != nil {
		f.Instructions = *o.Instructions
	}
	if o.ClearRestrictions {
		f.Restrictions = Restrictions{}
	}
}

func strptr(s string) *string { return &s }

func boolptr(b bool) *bool { return &b }
