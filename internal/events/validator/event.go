package validator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"eventbook/pkg/logger"
	"eventbook/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// EventValidator checks catalog records before they reach the store.
type EventValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewEventValidator(log *logger.Logger) *EventValidator {
	return &EventValidator{
		validate: validator.New(),
		logger:   log,
	}
}

// ParseDate parses an event date in the application's dd.mm.yyyy hh:mm layout.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(model.DateLayout, strings.TrimSpace(s))
}

// Validate checks a fully-built event record. The ID may be zero when the
// store has not assigned one yet.
func (v *EventValidator) Validate(event *model.Event) error {
	if err := v.validate.StructExcept(event, "ID"); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	if event.Date.IsZero() {
		return ValidationErrors{
			ValidationError{
				Field:   "Date",
				Message: "date must be set",
			},
		}
	}
	return nil
}

func (v *EventValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = "field is required"
		case "min":
			message = fmt.Sprintf("must be at least %s", err.Param())
		case "oneof":
			message = fmt.Sprintf("must be one of: %s", err.Param())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	v.logger.Debug("Event validation failed", "errors", validationErrors.Error())
	return validationErrors
}
