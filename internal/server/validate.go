package server

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = newValidator()

var cpfPattern = regexp.MustCompile(`^\d{3}\.?\d{3}\.?\d{3}-?\d{2}$`)

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// report fields by the name clients send
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	err := validate.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return cpfPattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Errorf("register cpf validation: %w", err))
	}

	return validate
}

// validateBody runs the struct tags of body and renders a 422 listing
// every failing field.
func (s *Service) validateBody(w http.ResponseWriter, body any) bool {
	err := v.Struct(body)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		s.renderDetail(w, http.StatusUnprocessableEntity, err.Error())
		return false
	}

	s.renderJSON(w, http.StatusUnprocessableEntity, errorResponse{
		Detail: "dados inválidos",
		Errors: fieldErrors(verrs),
	})
	return false
}

func fieldErrors(verrs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "oneof":
		return "deve ser um de: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "gte":
		return "deve ser maior ou igual a " + fe.Param()
	case "gt":
		return "deve ser maior que " + fe.Param()
	case "cpf":
		return "CPF inválido"
	default:
		return fmt.Sprintf("falhou na regra %q", fe.Tag())
	}
}
