// Package validation turns validator.v10 errors into field-keyed violation
// maps. Callers always receive every violation at once, never just the first.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Violations maps a wire field name to one human-readable message.
type Violations map[string]string

func (v Violations) Add(field, message string) {
	// first violation per field wins, mirroring how the rules are ordered
	if _, exists := v[field]; !exists {
		v[field] = message
	}
}

func (v Violations) Merge(other Violations) {
	for field, msg := range other {
		v.Add(field, msg)
	}
}

func (v Violations) Empty() bool { return len(v) == 0 }

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// Collect converts a binding/validation error into a Violations map. Non
// validator errors collapse into a single "payload" entry so the handler can
// still answer with the 422 shape.
func Collect(err error) Violations {
	out := Violations{}
	if err == nil {
		return out
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		out.Add("payload", "The request body is malformed")
		return out
	}

	for _, e := range errs {
		field := e.Field()
		human := formatFieldName(field)

		switch e.Tag() {
		case "required":
			out.Add(field, fmt.Sprintf("%s is required", human))
		case "email":
			out.Add(field, fmt.Sprintf("%s must be a valid email address", human))
		case "min":
			out.Add(field, fmt.Sprintf("%s must be at least %s characters", human, e.Param()))
		case "max":
			out.Add(field, fmt.Sprintf("%s may not be greater than %s characters", human, e.Param()))
		case "eqfield":
			out.Add(field, fmt.Sprintf("%s confirmation does not match", human))
		case "oneof":
			out.Add(field, fmt.Sprintf("%s must be one of: %s", human, strings.ReplaceAll(e.Param(), " ", ", ")))
		case "datetime":
			out.Add(field, fmt.Sprintf("%s must be a valid date (%s)", human, e.Param()))
		default:
			out.Add(field, fmt.Sprintf("%s is invalid", human))
		}
	}

	return out
}
