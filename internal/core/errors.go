package core

import "fmt"

// ValidationError indicates the client's input failed schema validation.
// It names the offending field and surfaces as a 400 at the HTTP boundary.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Msg)
}

// MalformedResponseError indicates the model returned text that is not
// parseable as JSON.  The raw text is kept for logging only; it is never
// sent back to clients.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed model response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
