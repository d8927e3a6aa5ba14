package api

import (
	"errors"
	"fmt"
)

// ErrInvalidReference is reported for a missing or blank identifier. It is
// produced before any request is made.
var ErrInvalidReference = errors.New("invalid reference")

// ErrorKind classifies a failure for display and for tests.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindTransport
	KindDecode
	KindInvalidReference
	KindUnknown
)

// String returns the human-readable name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindTransport:
		return "TransportError"
	case KindDecode:
		return "DecodeError"
	case KindInvalidReference:
		return "InvalidReference"
	default:
		return "Unknown"
	}
}

// TransportError means the request did not complete with a 2xx response:
// the network was unreachable, the context ended, or the server answered
// with an error status (StatusCode is then non-zero).
type TransportError struct {
	Op         string
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		if e.Body != "" {
			return fmt.Sprintf("%s: GET %s: unexpected status %d: %s", e.Op, e.URL, e.StatusCode, e.Body)
		}
		return fmt.Sprintf("%s: GET %s: unexpected status %d", e.Op, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s: GET %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError means a response body did not match the expected shape.
type DecodeError struct {
	Op  string
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decoding response from %s: %v", e.Op, e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// KindOf reports the kind of err. A nil error is KindNone.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return KindTransport
	}
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return KindDecode
	}
	if errors.Is(err, ErrInvalidReference) {
		return KindInvalidReference
	}
	return KindUnknown
}
