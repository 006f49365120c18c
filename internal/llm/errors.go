package llm

import "fmt"

// ResponseError is returned when the model answers without usable text,
// for example when the prompt or the output was blocked.
type ResponseError struct {
	Model  string
	Reason string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("model %s returned no text: %s", e.Model, e.Reason)
}
