package service

import (
	"errors"
	"strings"
)

var (
	ErrInternal              = errors.New("internal server error")
	ErrPostNotFound          = errors.New("post not found")
	ErrCommentNotFound       = errors.New("comment not found")
	ErrParentNotFound        = errors.New("parent comment not found")
	ErrParentPostMismatch    = errors.New("parent comment belongs to a different post")
	ErrForbidden             = errors.New("not enough permissions to modify this comment")
	ErrGuestCommentImmutable = errors.New("guest comments cannot be edited")
	ErrUserNotFound          = errors.New("user not found")
)

type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports every rejected input field at once.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

func isDomainError(err error) bool {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return true
	}

	for _, target := range []error{
		ErrInternal,
		ErrPostNotFound,
		ErrCommentNotFound,
		ErrParentNotFound,
		ErrParentPostMismatch,
		ErrForbidden,
		ErrGuestCommentImmutable,
		ErrUserNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
