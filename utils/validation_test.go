package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testForm struct {
	Email   string `validate:"required,email"`
	Phone   string `validate:"required,phone10"`
	Address string `validate:"required,min=10"`
}

var testMessages = map[string]string{
	"Email.required":   "Email is required",
	"Email.email":      "Invalid email address",
	"Phone.required":   "Phone number is required",
	"Phone.phone10":    "Please enter a valid 10-digit phone number",
	"Address.required": "Address is required",
	"Address.min":      "Address must be at least 10 characters",
}

func TestValidateAcceptsValidForm(t *testing.T) {
	form := testForm{Email: "clinic@example.com", Phone: "9876543210", Address: "12 MG Road, Bengaluru"}
	assert.Nil(t, Validate(form, testMessages))
}

func TestValidateMapsMessages(t *testing.T) {
	form := testForm{Email: "not-an-email", Phone: "12345", Address: "short"}

	errs := Validate(form, testMessages)
	assert.Equal(t, "Invalid email address", errs["Email"])
	assert.Equal(t, "Please enter a valid 10-digit phone number", errs["Phone"])
	assert.Equal(t, "Address must be at least 10 characters", errs["Address"])
}

func TestValidateRequiredMessages(t *testing.T) {
	errs := Validate(testForm{}, testMessages)
	assert.Equal(t, "Email is required", errs["Email"])
	assert.Equal(t, "Phone number is required", errs["Phone"])
	assert.Equal(t, "Address is required", errs["Address"])
}

func TestPhoneRule(t *testing.T) {
	valid := testForm{Email: "a@b.com", Address: "12 MG Road, Bengaluru"}

	for phone, want := range map[string]bool{
		"9876543210":  true,
		"987654321":   false, // 9 digits
		"98765432101": false, // 11 digits
		"98765abc10":  false,
		"+9198765432": false,
	} {
		valid.Phone = phone
		errs := Validate(valid, testMessages)
		if want {
			assert.Nil(t, errs, "phone %q should validate", phone)
		} else {
			assert.Equal(t, "Please enter a valid 10-digit phone number", errs["Phone"], "phone %q", phone)
		}
	}
}

func TestValidateUnmappedFieldGetsGenericMessage(t *testing.T) {
	type stray struct {
		Name string `validate:"required"`
	}
	errs := Validate(stray{}, map[string]string{})
	assert.Equal(t, "Invalid value", errs["Name"])
}
