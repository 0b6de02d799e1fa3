package lib

import (
	"fmt"
)

type ErrorKind int

const (
	KindConfig ErrorKind = iota + 1
	KindFeederExhausted
	KindLookup
	KindMalformedLine
	KindEmptyBoard
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "configuration error"
	case KindFeederExhausted:
		return "feeder exhausted"
	case KindLookup:
		return "lookup failure"
	case KindMalformedLine:
		return "malformed line"
	case KindEmptyBoard:
		return "empty board"
	}
	return "unknown error"
}

/*
	Error carries the kind of failure plus enough context to report it.
	Line is 1-based and zero when the error is not tied to an input line.
*/
type Error struct {
	Kind    ErrorKind
	Context string
	Line    int
	Part    *Part
	Err     error
}

var (
	ErrConfig          = &Error{Kind: KindConfig}
	ErrFeederExhausted = &Error{Kind: KindFeederExhausted}
	ErrLookup          = &Error{Kind: KindLookup}
	ErrMalformedLine   = &Error{Kind: KindMalformedLine}
	ErrEmptyBoard      = &Error{Kind: KindEmptyBoard}
)

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Context != "" {
		msg += ": " + e.Context
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrLookup) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func configError(line int, format string, args ...interface{}) *Error {
	return &Error{Kind: KindConfig, Line: line, Context: fmt.Sprintf(format, args...)}
}

func lineError(line int, text string, err error) *Error {
	return &Error{Kind: KindMalformedLine, Line: line, Context: fmt.Sprintf("%q", text), Err: err}
}
