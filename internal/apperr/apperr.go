// Package apperr carries the two error kinds the catalog surfaces:
// validation failures and missing nodes. The diagnostic message is for logs
// and tests; handlers collapse the kind to a canonical HTTP body.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Validationf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports that no node with the given id exists.
func NotFound(id string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("node with input id doesn't exist, input id = %s", id),
	}
}

func IsValidation(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindValidation
}

func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindNotFound
}
