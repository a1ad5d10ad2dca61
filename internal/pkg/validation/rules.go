package validation

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Validation rule settings
var (
	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// Custom validator tags registered by Register
const (
	TagStrongPassword = "strongpassword"
	TagNotBlank       = "notblank"
)

// PasswordProblem describes why a password is too weak, or returns "" when it is acceptable
func PasswordProblem(password string) string {
	if len(password) < PasswordMinLength {
		return fmt.Sprintf("Password must be at least %d characters long", PasswordMinLength)
	}

	var hasLetter, hasDigit bool
	for _, char := range password {
		switch {
		case unicode.IsLetter(char):
			hasLetter = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return "Password must contain at least one letter and one digit"
	}
	return ""
}

// NotBlank reports whether s has any non-space content
func NotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Register installs the custom tags on v and makes field errors report json names
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(JSONFieldName)

	if err := v.RegisterValidation(TagStrongPassword, func(fl validator.FieldLevel) bool {
		return PasswordProblem(fl.Field().String()) == ""
	}); err != nil {
		return fmt.Errorf("register %s: %w", TagStrongPassword, err)
	}

	if err := v.RegisterValidation(TagNotBlank, func(fl validator.FieldLevel) bool {
		return NotBlank(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("register %s: %w", TagNotBlank, err)
	}
	return nil
}

// JSONFieldName returns the json name of a struct field, falling back to the form name
func JSONFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}
