package codefmt

import (
	"errors"
	"fmt"
	"go/token"
)

// CodeError is an error located in user's source code. The analyzer reports it
// as a diagnostic at its position, and the command prints the position before
// the message.
type CodeError struct {
	err  error
	pos  token.Pos
	end  token.Pos
	fset *token.FileSet
}

// Unwrap returns the underlying error.
func (e *CodeError) Unwrap() error { return e.err }

// Pos returns the position where the error occurred. It may be invalid.
func (e *CodeError) Pos() token.Pos { return e.pos }

// End returns the end position of the error. It may be invalid.
func (e *CodeError) End() token.Pos { return e.end }

// Message returns the error message without the position.
func (e *CodeError) Message() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

// Error implements the error interface. If pos is valid, the position is
// prepended to the error message.
func (e *CodeError) Error() string {
	if !e.pos.IsValid() || e.fset == nil {
		return e.Message()
	}
	return fmt.Sprintf("%s: %s", FormatPosition(e.fset.Position(e.pos)), e.Message())
}

// Errorf formats an error message located at the poser. Arguments are
// formatted by the verbs of [Formatter.Sprintf]. Wrapping another error is not
// allowed because a CodeError is a leaf of the error tree.
func (f Formatter) Errorf(poser Poser, format string, args ...any) error {
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			panic("CodeError cannot wrap error")
		}
	}

	var pos, end token.Pos
	if poser != nil {
		pos = poser.Pos()
		if ender, ok := poser.(Ender); ok {
			end = ender.End()
		}
	}

	msg := f.Sprintf(format, args...)
	return &CodeError{errors.New(msg), pos, end, f.Fset}
}

// CodeErrors flattens joined errors and returns every [CodeError] among them.
// Errors without a position are returned separately as rest.
func CodeErrors(err error) (codeErrs []*CodeError, rest []error) {
	queue := []error{err}
	for len(queue) != 0 {
		err := queue[0]
		queue = queue[1:]

		if err == nil {
			continue
		}
		if codeErr, ok := err.(*CodeError); ok {
			codeErrs = append(codeErrs, codeErr)
			continue
		}
		if u, ok := err.(interface{ Unwrap() []error }); ok {
			queue = append(queue, u.Unwrap()...)
			continue
		}
		rest = append(rest, err)
	}
	return codeErrs, rest
}
