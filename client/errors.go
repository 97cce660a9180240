package client

import (
	"errors"
	"fmt"
)

// ErrAuthenticationRequired is returned when a protected operation is
// attempted without a session token. No network call is made in that case.
var ErrAuthenticationRequired = errors.New("authentication required: please log in first")

// ValidationError reports missing or malformed user input, caught before
// any network call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Failure codes the server attaches to auth failures.
const (
	CodeAccountNotFound    = "account_not_found"
	CodeInvalidCredentials = "invalid_credentials"
	CodeEmailTaken         = "email_taken"
)

// AuthError reports a credential rejection from the server, tagged with the
// server's machine-readable code.
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "authentication failed"
}

// SubmissionError reports an order write rejected by the server.
type SubmissionError struct {
	Status  int
	Code    string
	Message string
}

func (e *SubmissionError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server error (status %d)", e.Status)
}

// TransportError wraps network and decode failures so callers can report
// them through the same path as server-reported failures.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
