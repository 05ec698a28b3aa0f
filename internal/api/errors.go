package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/altinukshini/leadfinder/internal/model"
)

// AuthError is returned when the API rejects the token.
type AuthError struct {
	Op string
}

func (e *AuthError) Error() string {
	return "Invalid API token. Check your Apify token in Settings."
}

// TimeoutError is returned when a run is still pending after the last poll.
type TimeoutError struct {
	RunID    string
	Attempts int
	Waited   time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("run %s still pending after %d status checks (%s). Try with fewer filters or smaller max results.",
		e.RunID, e.Attempts, e.Waited.Truncate(time.Second))
}

// RemoteError covers non-2xx responses and runs that ended without success.
type RemoteError struct {
	Op         string
	StatusCode int
	RunStatus  model.RunStatus
	Snippet    string
}

func (e *RemoteError) Error() string {
	if e.RunStatus != "" {
		return fmt.Sprintf("run finished with status %s", e.RunStatus)
	}
	if e.Snippet == "" {
		return fmt.Sprintf("API Error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("API Error (%d): %s", e.StatusCode, e.Snippet)
}

// ProtocolError means the response did not have the expected shape.
type ProtocolError struct {
	Op     string
	Detail string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("unexpected response from %s: %s", e.Op, e.Detail)
}

// ValidationError is raised for missing local input before any request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsAuth reports whether err is, or wraps, an *AuthError.
func IsAuth(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

const snippetLen = 150

func newRemoteError(op string, status int, body []byte, token string) *RemoteError {
	s := string(body)
	if token != "" {
		s = strings.ReplaceAll(s, token, "<redacted>")
	}
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.TrimSpace(s)
	// Cut after redaction so a token crossing the limit cannot leak a prefix.
	if r := []rune(s); len(r) > snippetLen {
		s = string(r[:snippetLen])
	}
	return &RemoteError{Op: op, StatusCode: status, Snippet: s}
}
