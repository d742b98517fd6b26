package customer

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrConstraintViolation = errors.New("constraint violation")
)

const msgBlank = "can't be blank"

// ValidationError collects per-field messages. It matches ErrValidation.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		for _, msg := range e.Fields[field] {
			parts = append(parts, field+" "+msg)
		}
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
