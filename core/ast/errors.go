package ast

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax         = errors.New("syntax error")
	ErrFileTooLarge   = errors.New("file too large")
	ErrInvalidContent = errors.New("invalid content")
)

// ParseError reports a file whose imports could not be extracted.
// Line is 1-based and zero when the position is unknown.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
