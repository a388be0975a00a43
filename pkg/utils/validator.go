package utils

import (
	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// Custom validations
	v.RegisterValidation("qrcolor", validateQrColor)

	return &Validator{
		validate: v,
	}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateQrColor accepts only the #rgb and #rrggbb forms the renderer can
// parse. The builtin hexcolor tag also admits #rgba and #rrggbbaa, which the
// renderer rejects at image time.
func validateQrColor(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if (len(s) != 4 && len(s) != 7) || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
