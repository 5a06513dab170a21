// Package common provides shared utilities and types used across the
// application.
package common

import (
	"errors"
	"fmt"
)

// Errors surfaced by the parsing engine. The per-file driver matches on
// these to classify failures in its report.
var (
	// PDF decryption errors.
	ErrPasswordMissing = errors.New("encrypted PDF but no password configured")
	ErrPasswordWrong   = errors.New("no configured password decrypts this PDF")

	// Parsing errors.
	ErrStatementDateNotFound = errors.New("statement date not found")
	ErrNoTransactionsFound   = errors.New("no transactions found")
	ErrMissingHeader         = errors.New("no header line matched for column geometry")
)

// SafetyCheckError reports that the reconciled totals were not present
// among the document's numbers.
type SafetyCheckError struct {
	Expected []string
}

func (e *SafetyCheckError) Error() string {
	return fmt.Sprintf("safety check failed: totals %v not found in document", e.Expected)
}

// GenericParserError reports that the generic analyzer could not derive
// a configuration from the document.
type GenericParserError struct {
	Reason string
}

func (e *GenericParserError) Error() string {
	return fmt.Sprintf("generic parser: %s", e.Reason)
}

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
