// Package errs defines the error taxonomy shared by every picsum-dl package.
//
// Four kinds exist:
//   - KindConfig: bad command-line input, reported before any network activity
//   - KindNetwork: the request could not be completed
//   - KindAPI: the service answered with a non-success status or a bad payload
//   - KindIO: local filesystem failure
//
// Whether an error is fatal depends on where it happens, not on its kind: the
// batch downloader folds network, API and IO errors into its statistics, while
// info/list/search propagate them to the operator.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind int

const (
	KindConfig Kind = iota
	KindNetwork
	KindAPI
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "configuration error"
	case KindNetwork:
		return "network error"
	case KindAPI:
		return "API error"
	case KindIO:
		return "IO error"
	default:
		return "error"
	}
}

// Error is the concrete error type. Status is only set for KindAPI errors
// caused by an HTTP response.
type Error struct {
	Kind   Kind
	Op     string
	Msg    string
	Status int
	Err    error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	} else if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s during %s: %s", e.Kind, e.Op, msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Config reports invalid user input. It never wraps a cause.
func Config(format string, args ...any) *Error {
	return &Error{Kind: KindConfig, Msg: fmt.Sprintf(format, args...)}
}

// Network reports a request that could not be completed.
func Network(op string, err error) *Error {
	return &Error{Kind: KindNetwork, Op: op, Err: err}
}

// API reports a response that was received but is unusable.
func API(op, msg string) *Error {
	return &Error{Kind: KindAPI, Op: op, Msg: msg}
}

// APIStatus reports a non-success HTTP status.
func APIStatus(op string, status int, msg string) *Error {
	return &Error{Kind: KindAPI, Op: op, Status: status, Msg: msg}
}

// IO reports a local filesystem failure.
func IO(op string, err error) *Error {
	return &Error{Kind: KindIO, Op: op, Err: err}
}

// Is reports whether any error in err's chain is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// StatusOf returns the HTTP status recorded in err's chain, or 0.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}
