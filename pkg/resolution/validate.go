package resolution

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

// ValidationTag is the struct tag registered by RegisterValidation.
const ValidationTag = "resolution_preset"

// RegisterValidation adds the "resolution_preset" tag to v. It accepts
// string and Preset fields holding a catalog identifier.
func RegisterValidation(v *validator.Validate) error {
	return v.RegisterValidation(ValidationTag, validatePreset)
}

func validatePreset(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return Preset(field.String()).Known()
}
