package middleware

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SetupValidator configures the validator with custom tags
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// Use JSON tag names for field names in errors
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})
	}
}

// FormatValidationError turns a binding error into a user-facing message
func FormatValidationError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return "Dados da requisição inválidos"
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, validationMessage(e))
	}
	return strings.Join(messages, "; ")
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("O campo %s é obrigatório", e.Field())
	case "email":
		return fmt.Sprintf("O campo %s deve ser um email válido", e.Field())
	case "min":
		return fmt.Sprintf("O campo %s deve ter no mínimo %s caracteres", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("O campo %s deve ter no máximo %s caracteres", e.Field(), e.Param())
	case "oneof":
		return fmt.Sprintf("O campo %s possui um valor inválido", e.Field())
	case "uuid":
		return fmt.Sprintf("O campo %s deve ser um identificador válido", e.Field())
	default:
		return fmt.Sprintf("O campo %s é inválido", e.Field())
	}
}
