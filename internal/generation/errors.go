package generation

import "fmt"

// Error is returned when the language model call fails or yields nothing usable.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resume generation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("resume generation failed: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
