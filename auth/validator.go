package auth

import (
	"unicode"

	"github.com/go-playground/validator/v10"

	"courier/errors"
)

var validate = validator.New()

func init() {
	// username: 3-32 chars, lowercase letters, digits and underscores.
	_ = validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		if len(name) < 3 || len(name) > 32 {
			return false
		}
		for _, r := range name {
			if !unicode.IsLower(r) && !unicode.IsDigit(r) && r != '_' {
				return false
			}
		}
		return true
	})
}

type RegisterRequest struct {
	Username    string `validate:"required,username"`
	DisplayName string `validate:"required,max=64"`
	Password    string `validate:"required,min=12,max=72"`
}

func ValidateRegister(req RegisterRequest) error {
	if err := validate.Struct(req); err != nil {
		return errors.Wrap(errors.CodeInvalidContent, "invalid registration request", err)
	}
	if !isPasswordComplex(req.Password) {
		return errors.InvalidContent("password must mix upper, lower, digit and special characters")
	}
	return nil
}

func isPasswordComplex(s string) bool {
	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, char := range s {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasNumber && hasSpecial
}
