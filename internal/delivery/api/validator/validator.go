// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "gestor/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator. Failures are returned as
// ErrValidationFailed carrying every field message joined by "; ".
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: v}
}

func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domainerrors.ErrValidationFailed
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fmt.Sprintf("%s: %s", fe.Field(), describe(fe)))
	}

	return domainerrors.ErrValidationFailed.WithMessage(strings.Join(messages, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without", "required_without_all":
		return "es obligatorio"
	case "email":
		return "correo inválido"
	case "url":
		return "URL inválida"
	case "min":
		return "debe tener mínimo " + fe.Param() + " caracteres"
	case "max":
		return "debe tener máximo " + fe.Param() + " caracteres"
	default:
		return "valor inválido"
	}
}
