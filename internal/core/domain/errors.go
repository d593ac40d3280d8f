package domain

import "fmt"

// ErrorKind is the closed set of failure classes the service can surface.
// The handler layer owns the only mapping from kinds to HTTP responses.
type ErrorKind uint8

const (
	KindInvalidInput ErrorKind = iota
	KindForbidden
	KindInsufficientFunds
	KindAlreadyExists
	KindNotFound
	KindDatabase
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindForbidden:
		return "forbidden"
	case KindInsufficientFunds:
		return "insufficient_funds"
	case KindAlreadyExists:
		return "already_exists"
	case KindNotFound:
		return "not_found"
	case KindDatabase:
		return "database"
	}
	return "unknown"
}

// Error carries a kind tag and a caller-facing message. For KindDatabase the
// message is never sent to the caller; the wrapped cause is logged instead.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func InvalidInput(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func InsufficientFunds() *Error {
	return &Error{Kind: KindInsufficientFunds, Message: "You lack the funds to send this payment"}
}

func AlreadyExists(msg string) *Error {
	return &Error{Kind: KindAlreadyExists, Message: msg}
}

func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: "Could not find " + resource}
}

func Database(err error) *Error {
	return &Error{Kind: KindDatabase, Message: "database failure", Err: err}
}
