package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// bindError reports a request body that could not be decoded at all:
// malformed JSON or a field outside the declared schema.
type bindError struct {
	message string
}

func (e *bindError) Error() string { return e.message }

// validationError reports a decoded body that failed field validation,
// carrying one message per offending field.
type validationError struct {
	fields []string
}

func (e *validationError) Error() string {
	return "invalid input: " + strings.Join(e.fields, "; ")
}

// bindStrictJSON decodes the request body into obj, rejecting unknown
// fields, then runs the configured validator. Decoding into a strict
// structure is the schema check: any key outside obj's fields fails the
// request instead of being silently dropped.
func bindStrictJSON(c *gin.Context, obj any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(obj); err != nil {
		if field, ok := unknownFieldName(err); ok {
			return &bindError{message: "Request contains undefined field: " + field}
		}
		return &bindError{message: "Malformed JSON request"}
	}

	if binding.Validator == nil {
		return nil
	}
	if err := binding.Validator.ValidateStruct(obj); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, len(verrs))
			for i, fe := range verrs {
				fields[i] = fmt.Sprintf("%s %s", jsonFieldName(fe.Field()), tagMessage(fe.Tag()))
			}
			return &validationError{fields: fields}
		}
		return &bindError{message: "Malformed JSON request"}
	}
	return nil
}

// unknownFieldName extracts the offending key from an encoding/json
// "unknown field" error.
func unknownFieldName(err error) (string, bool) {
	const marker = `unknown field "`
	msg := err.Error()
	idx := strings.Index(msg, marker)
	if idx < 0 {
		return "", false
	}
	rest := msg[idx+len(marker):]
	end := strings.Index(rest, `"`)
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

// jsonFieldName converts a Go struct field name to its JSON counterpart
// ("DisplayName" -> "displayName", "ID" -> "id").
func jsonFieldName(structField string) string {
	if structField == strings.ToUpper(structField) {
		return strings.ToLower(structField)
	}
	runes := []rune(structField)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// tagMessage maps a validator tag to its user-facing message.
func tagMessage(tag string) string {
	if tag == "required" {
		return "is required"
	}
	return "is invalid"
}
