package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/resellhub/reseller-api/internal/application/dto"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// decimal.Decimal se valida como float (min/max sobre el valor numérico).
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Reportar los campos con su nombre de wire (tag json o query).
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

type defaulter interface{ Defaults() }

// parseBody parsea el cuerpo JSON, aplica defaults y valida. Si falla, escribe
// la respuesta 400 (con todas las violaciones, no solo la primera) y devuelve false.
func parseBody(c *fiber.Ctx, dst any) bool {
	if err := c.BodyParser(dst); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
		return false
	}
	return validateStruct(c, dst)
}

// parseQuery parsea la query string, aplica defaults y valida.
func parseQuery(c *fiber.Ctx, dst any) bool {
	if err := c.QueryParser(dst); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "parámetros inválidos"})
		return false
	}
	return validateStruct(c, dst)
}

func validateStruct(c *fiber.Ctx, dst any) bool {
	if d, ok := dst.(defaulter); ok {
		d.Defaults()
	}
	err := validate.Struct(dst)
	if err == nil {
		return true
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make([]dto.FieldError, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, dto.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
		}
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Error:  "validación fallida",
			Errors: fields,
		})
		return false
	}
	_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "entrada inválida"})
	return false
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "min":
		return fmt.Sprintf("debe ser como mínimo %s", fe.Param())
	case "max":
		return fmt.Sprintf("debe ser como máximo %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("debe ser uno de: %s", fe.Param())
	case "uuid4":
		return "debe ser un UUID válido"
	case "email":
		return "debe ser un email válido"
	case "url":
		return "debe ser una URL válida"
	default:
		return fmt.Sprintf("no cumple la regla %s", fe.Tag())
	}
}
