package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// BindData binds the JSON body of the request to data.
//
// Empty and syntactically broken bodies return ErrRequestBodyEmpty and
// ErrInvalidBody. Bodies that parse but do not satisfy the binding
// rules of data return an error wrapping ErrValidation.
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindJSON(data)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return ErrRequestBodyEmpty
	}

	var syntaxError *json.SyntaxError
	if errors.As(err, &syntaxError) || errors.Is(err, io.ErrUnexpectedEOF) {
		log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		texts := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			texts = append(texts, ValidationErrorToText(e))
		}
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(texts, ", "))
	}

	var typeError *json.UnmarshalTypeError
	if errors.As(err, &typeError) {
		return fmt.Errorf("%w: %s must be of type %s", ErrValidation, typeError.Field, typeError.Type)
	}

	// Errors returned by json.Unmarshaler implementations of field types
	return fmt.Errorf("%w: %s", ErrValidation, err.Error())
}

// ValidationErrorToText returns a human readable message for a failed
// validation of a field.
func ValidationErrorToText(e validator.FieldError) string {
	field := jsonName(e)

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must not be longer than %s", field, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s long", field, e.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	}
	return fmt.Sprintf("%s is not valid", field)
}

// jsonName returns the field name as used in requests
func jsonName(e validator.FieldError) string {
	name := e.Field()
	if name == "" {
		return e.StructField()
	}

	return strings.ToLower(name[:1]) + name[1:]
}
