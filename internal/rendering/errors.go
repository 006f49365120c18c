package rendering

import "fmt"

// TemplateError is returned when a LaTeX template cannot be read, parsed or
// executed.
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return "template error: " + e.Message
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError is returned when there is nothing renderable.
type RenderError struct {
	Message string
}

func (e *RenderError) Error() string {
	return "render error: " + e.Message
}
