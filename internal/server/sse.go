package server

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// SSE event names used by the generation stream
const (
	eventProgress = "progress"
	eventResult   = "result"
	eventError    = "error"
)

// ProgressEvent reports which generation stage is running.
type ProgressEvent struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// SSEWriter helps write Server-Sent Events
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewSSEWriter creates a new SSE writer
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteEvent sends an SSE event
func (s *SSEWriter) WriteEvent(event string, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(s.w, "event: %s\n", event); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", jsonData); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// WriteProgress sends a progress event
func (s *SSEWriter) WriteProgress(stage, message string) error {
	return s.WriteEvent(eventProgress, ProgressEvent{Stage: stage, Message: message})
}

// WriteError sends an error event
func (s *SSEWriter) WriteError(err error) {
	s.WriteEvent(eventError, map[string]any{ //nolint:errcheck
		"error":  err.Error(),
		"status": HTTPStatus(err),
	})
}

// WriteResult sends the final result event
func (s *SSEWriter) WriteResult(result any) error {
	return s.WriteEvent(eventResult, result)
}
