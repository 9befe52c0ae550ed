package service

import "errors"

var (
	ErrNotFound  = errors.New("complaint not found")
	ErrForbidden = errors.New("not authorized")
)

// FieldError is a single violated constraint. Validation reports every
// violated field, not just the first.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
