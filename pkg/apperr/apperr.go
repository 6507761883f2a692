package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for HTTP mapping and logging.
type Kind int

const (
	// Validation - missing/malformed input, client's fault
	Validation Kind = iota
	// Conflict - duplicate email, item already present
	Conflict
	// NotFound - unknown user/order/item
	NotFound
	// Auth - incorrect password
	Auth
	// Forbidden - authenticated but wrong role for the operation
	Forbidden
	// Configuration - missing key material, fatal at startup
	Configuration
	// Store - underlying query failure, surfaced as generic server error
	Store
)

type Error struct {
	Kind    Kind
	Message string // client-facing message
	Err     error  // internal cause, for operators only
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches an internal cause. The cause is never shown to clients.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from err. Unknown errors map to Store so that
// nothing escapes as an unclassified fault.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Store
}

// MessageOf returns the client-facing message. Store and Configuration
// errors get a generic message; the specific cause stays in the logs.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		switch e.Kind {
		case Store, Configuration:
			return "Internal server error"
		default:
			return e.Message
		}
	}
	return "Internal server error"
}
