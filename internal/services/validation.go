package services

// ValidationError carries field-keyed messages the caller can render inline.
// It is distinct from authorization and not-found failures, which are plain
// sentinel errors.
type ValidationError struct {
	Fields map[string][]string
}

func (err *ValidationError) Error() string {
	return "validation failed"
}

func NewValidationError(field string, message string) *ValidationError {
	err := &ValidationError{Fields: map[string][]string{}}
	err.Add(field, message)
	return err
}

func (err *ValidationError) Add(field string, message string) {
	err.Fields[field] = append(err.Fields[field], message)
}

func (err *ValidationError) HasErrors() bool {
	return len(err.Fields) > 0
}
