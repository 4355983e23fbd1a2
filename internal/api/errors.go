package api

import (
	"errors"
	"fmt"
)

// ErrFailed matches every failed storefront call, whatever the cause.
var ErrFailed = errors.New("operation failed")

type ErrorKind int

const (
	// KindTransport means the request never produced a response.
	KindTransport ErrorKind = iota
	// KindStatus means the server answered with a non-2xx status.
	KindStatus
	// KindPayload means the body was unreadable or carried success=false.
	KindPayload
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindPayload:
		return "payload"
	default:
		return "unknown"
	}
}

type Error struct {
	Op         string
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s failure", e.Op, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == ErrFailed
}
