package services

import "errors"

// ErrorKind classifies a failure so HTTP status mapping is a total function
// over the taxonomy instead of message-text sniffing.
type ErrorKind int

const (
	// KindTransport covers non-2xx upstream responses, empty content and
	// anything else unclassified.
	KindTransport ErrorKind = iota
	KindValidation
	KindConfiguration
	KindRateLimited
	KindTimeout
	KindExtraction
	KindSchema
)

// Error carries the kind alongside a user-presentable message.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func WrapError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind carried by err. Untyped errors classify as
// transport failures.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindTransport
}
