package protocol

import "fmt"

// ErrorKind classifies decode failures.
type ErrorKind uint8

const (
	// MalformedMessage covers unknown methods, wrong params arity, wrong
	// slot types, and missing required fields.
	MalformedMessage ErrorKind = iota
	// InvalidColor is an unrecognized color token.
	InvalidColor
	// InvalidAttribute is an unrecognized face attribute token.
	InvalidAttribute
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedMessage:
		return "malformed message"
	case InvalidColor:
		return "invalid color"
	case InvalidAttribute:
		return "invalid attribute"
	}
	return fmt.Sprintf("error kind %d", uint8(k))
}

// DecodeError is the typed failure returned by the incoming decode path.
// Errors never escape a single decode call: one bad message fails that
// call and nothing else.
type DecodeError struct {
	Kind   ErrorKind
	Method string // wire method name, when known
	Token  string // offending color/attribute token
	Reason string
	Err    error // underlying structural error, when any
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case InvalidColor:
		return fmt.Sprintf("invalid color %q", e.Token)
	case InvalidAttribute:
		return fmt.Sprintf("invalid attribute %q", e.Token)
	}
	msg := "malformed message"
	if e.Method != "" {
		msg += ": " + e.Method
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error { return e.Err }

func malformed(method, reason string) *DecodeError {
	return &DecodeError{Kind: MalformedMessage, Method: method, Reason: reason}
}

func arityError(method string, want, got int) *DecodeError {
	return malformed(method, fmt.Sprintf("want %d params, got %d", want, got))
}
