package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// currencyCodeValidator accepts a 3-letter alphabetic currency code in either
// case; codes are uppercased before storage.
func currencyCodeValidator(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// RegisterValidators installs the custom binding validators used by the
// request DTOs. Call once at startup before serving.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currencycode", currencyCodeValidator)
	}
}
