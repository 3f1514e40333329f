package dto

import (
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Symbols accepted by the password complexity rule.
const passwordSymbols = "@$!%*#?&"

// RegisterValidations adds the custom "password" rule to gin's binding
// engine. Call once before the routes are registered.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("password", validPassword)
	}
}

func validPassword(fl validator.FieldLevel) bool {
	return PasswordOK(fl.Field().String())
}

// PasswordOK reports whether s contains at least one letter, one digit
// and one symbol from the allowed set. Length is covered by min=8.
func PasswordOK(s string) bool {
	var letter, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	return letter && digit && symbol
}
