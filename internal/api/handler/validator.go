package handler

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/gestorlabs/gestor/pkg/brdoc"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to
// echo.Echo.Validator. It registers the custom document and password
// tags used by the request schemas.
func NewValidator() *echoValidator {
	v := validator.New()
	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return brdoc.ValidCPF(fl.Field().String())
	})
	_ = v.RegisterValidation("brdoc", func(fl validator.FieldLevel) bool {
		return brdoc.ValidDocument(fl.Field().String())
	})
	_ = v.RegisterValidation("senha", func(fl validator.FieldLevel) bool {
		return strongPassword(fl.Field().String())
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// strongPassword enforces the minimum-strength pattern: at least 8
// characters, one digit and one non-alphanumeric character.
func strongPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsLetter(r):
			symbol = true
		}
	}
	return digit && symbol
}

// fieldError converts a single ValidationError into the user-facing
// pt-BR message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("O campo %s é obrigatório!", field)
	case "email":
		return fmt.Sprintf("O campo %s deve ser um e-mail válido!", field)
	case "cpf":
		return "CPF inválido!"
	case "brdoc":
		return "Documento inválido!"
	case "senha":
		return "A senha deve ter no mínimo 8 caracteres, um número e um caractere especial!"
	case "min":
		return fmt.Sprintf("O campo %s deve ter no mínimo %s caracteres!", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("O campo %s deve ser um de: %s!", field, fe.Param())
	case "gt":
		return fmt.Sprintf("O campo %s deve ser maior que %s!", field, fe.Param())
	default:
		return fmt.Sprintf("O campo %s é inválido (%s)!", field, fe.Tag())
	}
}
