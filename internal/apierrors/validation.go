package apierrors

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// ValidationError builds a 400 APIError from validator failures. Fields are
// named the way the JSON body names them.
func ValidationError(validationErrs validator.ValidationErrors) *APIError {
	if len(validationErrs) == 0 {
		return BadRequest(CodeInvalidInput, "Invalid request")
	}
	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, fieldMessage(fieldErr))
	}
	if len(messages) == 1 {
		return BadRequest(CodeInvalidInput, messages[0])
	}
	return BadRequest(CodeInvalidInput, "Validation failed: "+strings.Join(messages, "; "))
}

func fieldMessage(fieldErr validator.FieldError) string {
	field := jsonName(fieldErr.Field())
	param := fieldErr.Param()

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min", "max":
		return boundMessage(field, fieldErr.Tag(), param, fieldErr.Kind())
	case "gte":
		return fmt.Sprintf("%s must be %s or more", field, param)
	case "lte":
		return fmt.Sprintf("%s must be %s or less", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(param, " ", ", "))
	case "uuid":
		return fmt.Sprintf("%s must be a valid id", field)
	case "url":
		return fmt.Sprintf("%s must be a valid link", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// boundMessage words min/max by what is being bounded: text length, list
// size or a number.
func boundMessage(field, tag, param string, kind reflect.Kind) string {
	word := "at least"
	if tag == "max" {
		word = "at most"
	}
	switch kind {
	case reflect.String:
		return fmt.Sprintf("%s must have %s %s characters", field, word, param)
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf("%s must have %s %s items", field, word, param)
	default:
		return fmt.Sprintf("%s must be %s %s", field, word, param)
	}
}

// jsonName turns a Go field name such as AllowedPages or TTLHours into its
// snake_case body key.
func jsonName(field string) string {
	runes := []rune(field)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && !unicode.IsUpper(runes[i-1])
			nextLower := i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
