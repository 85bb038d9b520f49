// Package validator wires go-playground/validator into echo and carries the
// field rule set shared by every write endpoint.
package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"wholesale/internal/delivery/http/response"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Fixed patterns for string fields. These are the exact rules enforced on
// every write endpoint.
var (
	alphanumSpaceRegex = regexp.MustCompile(`^[a-zA-Z0-9\s]+$`)
	alphaSpaceRegex    = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	phoneRegex         = regexp.MustCompile(`^[0-9]{10,12}$`)
	nationalIDRegex    = regexp.MustCompile(`^[A-Z0-9]{10,15}$`)
	time24hRegex       = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)
)

const isoDateLayout = "2006-01-02"

// ValidationError carries the complete, ordered list of field violations for
// one request. Violations are never returned one at a time; the caller gets
// the whole set in a single round trip.
type ValidationError struct {
	Violations []response.FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for _, violation := range e.Violations {
		fields = append(fields, violation.Field)
	}

	return "validation failed: " + strings.Join(fields, ", ")
}

// CustomValidator implements echo.Validator on top of go-playground/validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New constructs the validator with the domain's custom rules registered.
func New() *CustomValidator {
	validate := validator.New()

	// Report violations under the json field name clients actually sent.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	mustRegister(validate, "alphanum_space", regexRule(alphanumSpaceRegex))
	mustRegister(validate, "alpha_space", regexRule(alphaSpaceRegex))
	mustRegister(validate, "ug_phone", regexRule(phoneRegex))
	mustRegister(validate, "national_id", regexRule(nationalIDRegex))
	mustRegister(validate, "time_24h", regexRule(time24hRegex))
	mustRegister(validate, "iso_date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(isoDateLayout, fl.Field().String())

		return err == nil
	})

	return &CustomValidator{validate: validate}
}

// Validate checks a bound request struct. On rule violations it returns a
// *ValidationError holding every violation; any other error is surfaced
// unchanged.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errors.Wrap(err, "validator rejected the input structure")
	}

	violations := make([]response.FieldError, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		violations = append(violations, response.FieldError{
			Field:   fieldError.Field(),
			Message: messageFor(fieldError),
		})
	}

	return &ValidationError{Violations: violations}
}

// ParseISODate parses a value previously validated with the iso_date rule.
func ParseISODate(value string) (time.Time, error) {
	parsed, err := time.Parse(isoDateLayout, value)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "failed to parse ISO date")
	}

	return parsed, nil
}

func mustRegister(validate *validator.Validate, tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func regexRule(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}

// messageFor renders a human-readable reason for one violation.
func messageFor(fieldError validator.FieldError) string {
	field := fieldError.Field()

	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fieldError.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fieldError.Param())
		}

		return fmt.Sprintf("%s must be at least %s", field, fieldError.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fieldError.Param(), " ", ", "))
	case "alphanum_space":
		return fmt.Sprintf("%s may only contain letters, numbers and spaces", field)
	case "alpha_space":
		return fmt.Sprintf("%s may only contain letters and spaces", field)
	case "ug_phone":
		return fmt.Sprintf("%s must be 10 to 12 digits", field)
	case "national_id":
		return fmt.Sprintf("%s must be 10 to 15 uppercase letters or digits", field)
	case "time_24h":
		return fmt.Sprintf("%s must be a valid 24-hour time (HH:MM)", field)
	case "iso_date":
		return fmt.Sprintf("%s must be a valid date (YYYY-MM-DD)", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
