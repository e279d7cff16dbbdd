package response

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status string              `json:"status"`
	Error  string              `json:"error,omitempty"`
	Fields map[string][]string `json:"fields,omitempty"`
}

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

func OK() Response {
	return Response{
		Status: StatusOK,
	}
}

func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

// ValidationError reports every failed field, keyed by the field name the
// validator was configured to use.
func ValidationError(errs validator.ValidationErrors) Response {
	fields := make(map[string][]string, len(errs))

	for _, err := range errs {
		fields[err.Field()] = append(fields[err.Field()], fieldMessage(err))
	}

	return FieldErrors(fields)
}

func FieldErrors(fields map[string][]string) Response {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var msgs []string
	for _, name := range names {
		msgs = append(msgs, fields[name]...)
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(msgs, ", "),
		Fields: fields,
	}
}

func fieldMessage(err validator.FieldError) string {
	switch err.ActualTag() {
	case "required":
		return fmt.Sprintf("field %s is a required field", err.Field())
	case "url":
		return fmt.Sprintf("field %s is not a valid URL", err.Field())
	case "gt":
		return fmt.Sprintf("field %s must be greater than %s", err.Field(), err.Param())
	case "gte":
		return fmt.Sprintf("field %s must be at least %s", err.Field(), err.Param())
	case "oneof":
		return fmt.Sprintf("field %s must be one of [%s]", err.Field(), err.Param())
	default:
		return fmt.Sprintf("field %s is not valid", err.Field())
	}
}

