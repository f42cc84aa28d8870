// ABOUTME: Tagged error kind shared by every tool-level operation.
// ABOUTME: Carries a machine-readable code, a message, and optional details.

package mcperr

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error is the single error shape surfaced to MCP callers.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// New creates a tagged error with optional structured details.
func New(code, message string, details any) *Error {
	return &Error{Code: code, Message: message, Details: details}
}

// Wrap tags an underlying error, preserving its message in the details
// payload the way callers expect to see it.
func Wrap(code, message string, err error) *Error {
	if err == nil {
		return &Error{Code: code, Message: message}
	}
	// Already-tagged errors pass through so the innermost code wins.
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged
	}
	return &Error{
		Code:    code,
		Message: message,
		Details: map[string]any{"original": err.Error()},
	}
}

// Format renders any error as the uniform JSON error shape.
func Format(err error) string {
	var tagged *Error
	if !errors.As(err, &tagged) {
		tagged = &Error{Code: "unknown_error", Message: err.Error()}
	}
	data, marshalErr := json.MarshalIndent(tagged, "", "  ")
	if marshalErr != nil {
		return fmt.Sprintf(`{"code":"unknown_error","message":%q}`, tagged.Message)
	}
	return string(data)
}
