package ideas

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("notblank", validateNotBlank); err != nil {
		panic(fmt.Sprintf("failed to register notblank validator: %v", err))
	}
	if err := validate.RegisterValidation("priority", validatePriority); err != nil {
		panic(fmt.Sprintf("failed to register priority validator: %v", err))
	}
	if err := validate.RegisterValidation("idea_status", validateStatus); err != nil {
		panic(fmt.Sprintf("failed to register idea_status validator: %v", err))
	}
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validatePriority(fl validator.FieldLevel) bool {
	return Priority(fl.Field().String()).Valid()
}

func validateStatus(fl validator.FieldLevel) bool {
	return Status(fl.Field().String()).Valid()
}

// FieldError describes one invalid field
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every field of an Input that failed validation
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return "invalid idea: " + strings.Join(msgs, "; ")
}

// Field returns the message for the named field, or "" if it is valid
func (e *ValidationError) Field(name string) string {
	for _, f := range e.Fields {
		if f.Field == name {
			return f.Message
		}
	}
	return ""
}

// Validate checks in against the form rules and returns a *ValidationError
// naming each offending field
func Validate(in Input) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := &ValidationError{}
	for _, fe := range fieldErrs {
		verr.Fields = append(verr.Fields, FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe.Field(), fe.Tag()),
		})
	}
	return verr
}

func fieldMessage(field, tag string) string {
	switch field {
	case "Title":
		switch tag {
		case "required":
			return "Title is required"
		case "max":
			return "Title must be less than 100 characters"
		case "notblank":
			return "Title cannot be empty"
		}
	case "Description":
		return "Description must be less than 500 characters"
	case "Priority":
		return "Please select a priority level"
	case "Category":
		switch tag {
		case "required":
			return "Category is required"
		case "notblank":
			return "Category cannot be empty"
		}
	case "Status":
		return "Please select a status"
	case "Notes":
		return "Notes must be less than 300 characters"
	}
	return fmt.Sprintf("%s failed %s validation", field, tag)
}
