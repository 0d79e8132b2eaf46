package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/expenso/expense-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how
// to validate themselves.
//
// Typical pattern: define a request struct, implement Validate() so
// it runs all checks and returns CustomValidationErrors (or
// validator.ValidationErrors when using struct tags) collecting every
// failure, not just the first.
type Validatable interface {
	Validate() error
}

// BindErrorMapper is optionally implemented by request types that
// need to reclassify bind failures (malformed bodies, unreadable
// payloads) instead of the default 400 response.
type BindErrorMapper interface {
	MapBindError(err error) error
}

// CustomValidationError represents a single validation issue.
// Message is the full human-readable sentence returned to the client.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that
// satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation Failed"
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the request struct from the incoming body.
//  2. payload.Validate() runs every validation rule.
//  3. Failures become a 400 *errs.HTTPError listing all failed constraints.
//
// Bind failures default to 400; payload types implementing
// BindErrorMapper decide their own error instead.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		if mapper, ok := payload.(BindErrorMapper); ok {
			return mapper.MapBindError(err)
		}
		return errs.NewBadRequestError("Malformed request body")
	}

	if err := payload.Validate(); err != nil {
		return extractValidationError(err)
	}

	return nil
}

// extractValidationError converts a validation failure into the 400
// error envelope, preserving one detail message per failed constraint.
func extractValidationError(err error) *errs.HTTPError {
	var details []string

	switch verr := err.(type) {
	case CustomValidationErrors:
		for _, e := range verr {
			details = append(details, e.Message)
		}

	case validator.ValidationErrors:
		for _, e := range verr {
			details = append(details, tagMessage(e))
		}

	default:
		details = append(details, err.Error())
	}

	return errs.NewValidationError(details)
}

// tagMessage renders a struct-tag validation failure as a
// human-readable sentence.
func tagMessage(err validator.FieldError) string {
	field := strings.ToLower(err.Field())

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, err.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s", field, err.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, err.Param())
	default:
		if err.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
		}
		return fmt.Sprintf("%s: %s", field, err.Tag())
	}
}

// dateRegex matches the exact YYYY-MM-DD shape: four digits, hyphen,
// two digits, hyphen, two digits. It deliberately does NOT check
// calendar correctness; "2025-02-30" passes.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidDateFormat checks whether a string matches the YYYY-MM-DD
// shape. Format only; impossible calendar dates are accepted.
func IsValidDateFormat(date string) bool {
	return dateRegex.MatchString(date)
}
