package providers

import "fmt"

// StatusError reports a non-2xx response from the models endpoint.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API returned status %d: %s", e.StatusCode, e.Body)
}

// DecodeError reports a response body that is not valid UTF-8 text.
// Offset is the byte position of the first invalid sequence.
type DecodeError struct {
	Offset int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("response is not valid UTF-8 (invalid byte at offset %d)", e.Offset)
}

// ParseError reports a response body that is not syntactically valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse response as JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingFieldError reports a model record that lacks an expected field.
type MissingFieldError struct {
	Index int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("model at index %d has no %q field", e.Index, e.Field)
}
