package github

import "fmt"

// NotFoundError is returned when the GitHub user does not exist.
type NotFoundError struct {
	Username string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("github user not found: %s", e.Username)
}

// APIError represents a non-success response from the GitHub API.
type APIError struct {
	URL        string
	StatusCode int
	Message    string
	Cause      error
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("github API error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("github API error for %s: HTTP status %d: %s", e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("github API error for %s: %s", e.URL, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}
