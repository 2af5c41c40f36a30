package validator

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required,min=2"`
	Card  string `validate:"required,min=16"`
}

func TestValidate_Valid(t *testing.T) {
	form := sampleForm{Email: "a@example.com", Name: "Ada", Card: "4111111111111111"}
	assert.NoError(t, Validate(form))
}

func TestValidate_CollectsFieldErrors(t *testing.T) {
	form := sampleForm{Email: "not-an-email", Name: "", Card: "123"}
	err := Validate(form)
	require.Error(t, err)

	valErr, ok := err.(*ValidationError)
	require.True(t, ok)

	fields := valErr.Fields()
	assert.Equal(t, "must be a valid email address", fields["Email"])
	assert.Equal(t, "is required", fields["Name"])
	assert.Equal(t, "must be at least 16 characters", fields["Card"])
}

func TestValidationError_Message(t *testing.T) {
	err := Validate(sampleForm{Email: "x", Name: "Ada", Card: "4111111111111111"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Email")
	assert.Contains(t, err.Error(), "valid email")
}

func TestDecodeAndValidate(t *testing.T) {
	body := `{"Email":"a@example.com","Name":"Ada","Card":"4111111111111111"}`
	r := httptest.NewRequest("POST", "/", strings.NewReader(body))

	var form sampleForm
	assert.NoError(t, DecodeAndValidate(r, &form))
	assert.Equal(t, "Ada", form.Name)
}

func TestDecodeAndValidate_BadJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader("{{"))

	var form sampleForm
	err := DecodeAndValidate(r, &form)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode request body")
}
