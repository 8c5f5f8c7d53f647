package model

// ValidationError reports a user-correctable problem with submitted record
// fields. Handlers show its message on the form instead of failing the
// request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErrorf(message string) error {
	return &ValidationError{Message: message}
}
