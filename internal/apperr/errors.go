// Package apperr defines the error taxonomy shared by the server boundaries.
// Every failure crossing a boundary is classified so handlers can decide
// between a client-correctable 400 and a generic 500 without string matching.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation marks missing or malformed caller input.
	KindValidation
	// KindConfiguration marks missing deployment configuration.
	KindConfiguration
	// KindUpstreamFetch marks a failure retrieving the source image.
	KindUpstreamFetch
	// KindUpstreamProvider marks a failure from the AI image provider.
	KindUpstreamProvider
	// KindPersistence marks a database write or read failure.
	KindPersistence
	// KindWallet marks a signing failure or user rejection.
	KindWallet
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConfiguration:
		return "configuration"
	case KindUpstreamFetch:
		return "upstream_fetch"
	case KindUpstreamProvider:
		return "upstream_provider"
	case KindPersistence:
		return "persistence"
	case KindWallet:
		return "wallet"
	default:
		return "unknown"
	}
}

// Error carries a kind, a caller-safe message and an optional wrapped cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func Validation(msg string) *Error {
	return New(KindValidation, msg)
}

func Configuration(msg string) *Error {
	return New(KindConfiguration, msg)
}

// Message returns the caller-safe message of err, falling back to the full
// error text when err carries no kind.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return err.Error()
}

// KindOf extracts the kind from err, or KindUnknown if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err (or anything it wraps) is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	return KindOf(err) == k
}
