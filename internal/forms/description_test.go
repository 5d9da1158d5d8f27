package forms

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/learning-user-api/internal/config"
)

func TestDescription_ToJSON(t *testing.T) {
	desc := NewDescription("post", "/user_api/v1/account/login_session")
	desc.AddField(Field{
		Name:  "email",
		Type:  FieldTypeEmail,
		Label: "Email",
		Restrictions: Restrictions{
			MinLength: 3,
			MaxLength: 254,
		},
		Required: true,
	})

	raw, err := desc.ToJSON()
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.Equal(t, "post", got["method"])
	assert.Equal(t, "/user_api/v1/account/login_session", got["submit_url"])

	fields, ok := got["fields"].([]any)
	require.True(t, ok)
	require.Len(t, fields, 1)

	field := fields[0].(map[string]any)
	assert.Equal(t, "email", field["name"])
	assert.Equal(t, "email", field["type"])
	assert.Equal(t, "", field["defaultValue"])
	assert.Equal(t, true, field["required"])

	restrictions := field["restrictions"].(map[string]any)
	assert.Equal(t, float64(3), restrictions["min_length"])
	assert.Equal(t, float64(254), restrictions["max_length"])
}

func TestDescription_OverrideBeforeAdd(t *testing.T) {
	desc := NewDescription("post", "/submit")
	desc.OverrideField("email", Override{DefaultValue: "jane@provider.example"})
	desc.AddField(Field{Name: "email", Type: FieldTypeEmail, Label: "Email"})

	assert.Equal(t, "jane@provider.example", desc.Fields[0].DefaultValue)
}

func TestDescription_OverrideAfterAdd(t *testing.T) {
	desc := NewDescription("post", "/submit")
	desc.AddField(Field{Name: "password", Type: FieldTypePassword, Label: "Password", Required: true})
	desc.OverrideField("password", Override{
		Type:     strptr(FieldTypeHidden),
		Required: boolptr(false),
		Label:    strptr(""),
	})

	field := desc.Fields[0]
	assert.Equal(t, FieldTypeHidden, field.Type)
	assert.False(t, field.Required)
	assert.Empty(t, field.Label)
}

func TestDescription_PendingDefault(t *testing.T) {
	desc := NewDescription("post", "/submit")

	_, ok := desc.PendingDefault("country")
	assert.False(t, ok)

	desc.OverrideField("country", Override{DefaultValue: "fr"})
	got, ok := desc.PendingDefault("country")
	assert.True(t, ok)
	assert.Equal(t, "fr", got)
}

func TestLoginForm(t *testing.T) {
	cfg := &config.Config{PlatformName: "OpenLearn"}
	desc := LoginForm(cfg)

	require.Len(t, desc.Fields, 3)
	assert.Equal(t, "email", desc.Fields[0].Name)
	assert.Equal(t, "password", desc.Fields[1].Name)
	assert.Equal(t, "remember", desc.Fields[2].Name)

	assert.Contains(t, desc.Fields[0].Instructions, "OpenLearn")
	assert.Equal(t, false, desc.Fields[2].DefaultValue)
	assert.False(t, desc.Fields[2].Required)
}

func TestPasswordResetForm(t *testing.T) {
	cfg := &config.Config{PlatformName: "OpenLearn"}
	desc := PasswordResetForm(cfg)

	require.Len(t, desc.Fields, 1)
	assert.Equal(t, "email", desc.Fields[0].Name)
	assert.Equal(t, FieldTypeEmail, desc.Fields[0].Type)
	assert.True(t, desc.Fields[0].Required)
}
