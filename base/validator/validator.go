package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// TagBackgroundColor validates a six-digit hex color without a leading '#'
const TagBackgroundColor = "bgcolor"

var backgroundColorRegex = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// IsValidBackgroundColor returns is a background color valid or not
func IsValidBackgroundColor(color string) bool {
	return backgroundColorRegex.MatchString(color)
}

// New returns a validator with the metadata specific tags registered
func New() *validator.Validate {
	v := validator.New()
	// registration only fails on an empty tag or a nil func
	_ = v.RegisterValidation(TagBackgroundColor, func(fl validator.FieldLevel) bool {
		return IsValidBackgroundColor(fl.Field().String())
	})
	return v
}

func NewCustomValidator(v *validator.Validate) *CustomValidator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
