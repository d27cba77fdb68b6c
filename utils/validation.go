package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

func init() {
	validate.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
}

// Validate runs struct validation and maps failures to per-field messages.
// The messages map is keyed by "Field.tag"; fields without a mapped message
// get a generic one. Returns nil when the form is valid.
func Validate(form any, messages map[string]string) map[string]string {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"form": "Invalid input"}
	}
	errs := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, seen := errs[fe.Field()]; seen {
			continue
		}
		if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
			errs[fe.Field()] = msg
		} else {
			errs[fe.Field()] = "Invalid value"
		}
	}
	return errs
}
