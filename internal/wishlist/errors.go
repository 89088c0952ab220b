package wishlist

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure independently of its message.
type Kind string

const (
	KindValidation       Kind = "VALIDATION_ERROR"
	KindUserNotFound     Kind = "USER_NOT_FOUND"
	KindBookNotFound     Kind = "BOOK_NOT_FOUND"
	KindWishlistNotFound Kind = "WISHLIST_NOT_FOUND"
	KindEntryExists      Kind = "ENTRY_EXISTS"
	KindEntryNotFound    Kind = "ENTRY_NOT_FOUND"
	KindInternal         Kind = "INTERNAL_ERROR"
)

// Error is returned by every Service operation that fails.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Kind == KindInternal {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same kind, so callers can write
// errors.Is(err, &wishlist.Error{Kind: wishlist.KindEntryExists}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// KindOf returns the kind of err, or KindInternal when err did not come from
// this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
