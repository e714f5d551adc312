// Package apperr is the error taxonomy shared by services and handlers.
// Services return *Error for every failure the caller is expected to show
// to the user; anything else is treated as an internal failure.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindDuplicateOrder
	KindNotFound
	KindUnauthenticated
	KindForbidden
	KindPayment
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindDuplicateOrder:
		return "duplicate_order"
	case KindNotFound:
		return "not_found"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindPayment:
		return "payment"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Status is the HTTP status a handler answers with for this kind.
func (k Kind) Status() int {
	switch k {
	case KindValidation, KindDuplicateOrder:
		return http.StatusUnprocessableEntity
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindPayment:
		return http.StatusPaymentRequired
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	// Fields maps request field names to messages, for validation-style errors.
	Fields map[string]string
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	b.WriteString(": ")
	b.WriteString(e.Message)
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " [%s: %s]", k, e.Fields[k])
		}
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same kind and message, so sentinel values
// like ErrAlreadyEnrolled work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == e.Message
}

func Validation(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: "Validation failed!", Fields: fields}
}

func FieldError(field, message string) *Error {
	return Validation(map[string]string{field: message})
}

// DuplicateOrderMessage is the text shown for a sort order collision.
const DuplicateOrderMessage = "A lesson with this order already exists. Please choose a different order."

func DuplicateOrder(order int) *Error {
	return &Error{
		Kind:    KindDuplicateOrder,
		Message: fmt.Sprintf("Lesson order %d is already taken!", order),
		Fields:  map[string]string{"sort_order": DuplicateOrderMessage},
	}
}

func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Message: entity + " not found!"}
}

func Unauthenticated() *Error {
	return &Error{Kind: KindUnauthenticated, Message: "Unauthorized!"}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func Payment(reason string, err error) *Error {
	return &Error{Kind: KindPayment, Message: reason, Err: err}
}

func Conflict(message string, err error) *Error {
	return &Error{Kind: KindConflict, Message: message, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
