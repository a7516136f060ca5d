// Package apperrors defines the closed set of failures the domain layer can
// raise and the single mapping from those failures to HTTP responses.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

type Kind int

const (
	KindUnclassified Kind = iota
	KindBadQuery
	KindInvalidID
	KindInvalidPayload
	KindNotFound
	KindForeignKeyViolation
)

func (k Kind) String() string {
	switch k {
	case KindBadQuery:
		return "bad_query"
	case KindInvalidID:
		return "invalid_id"
	case KindInvalidPayload:
		return "invalid_payload"
	case KindNotFound:
		return "not_found"
	case KindForeignKeyViolation:
		return "foreign_key_violation"
	default:
		return "unclassified"
	}
}

// PostgreSQL SQLSTATE codes the classifier understands.
const (
	pgInvalidTextRepresentation = "22P02"
	pgNotNullViolation          = "23502"
	pgForeignKeyViolation       = "23503"
	pgUndefinedColumn           = "42703"
)

const (
	MessageBadRequest = "Bad Request"
	MessageNotFound   = "Not Found"
	MessageInternal   = "internal server error"
)

type Error struct {
	Kind    Kind
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

func BadQuery(message string) *Error {
	return &Error{Kind: KindBadQuery, Message: message}
}

func InvalidID(raw string) *Error {
	return &Error{Kind: KindInvalidID, Message: fmt.Sprintf("invalid id %q", raw)}
}

func InvalidPayload(reason string, cause error) *Error {
	return &Error{Kind: KindInvalidPayload, Message: reason, Err: cause}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func ForeignKeyViolation(cause error) *Error {
	return &Error{Kind: KindForeignKeyViolation, Message: "referenced row does not exist", Err: cause}
}

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnclassified
}

// IsForeignKeyViolation reports whether err carries a postgres FK violation.
func IsForeignKeyViolation(err error) bool {
	return pgCode(err) == pgForeignKeyViolation
}

// Classify maps err to an HTTP status and the message safe to show a client.
// Rules are evaluated in order and the first match wins.
func Classify(err error) (int, string) {
	kind := KindOf(err)
	code := pgCode(err)

	var appErr *Error
	errors.As(err, &appErr)

	switch {
	case kind == KindBadQuery:
		return http.StatusBadRequest, appErr.Message
	case kind == KindInvalidID || code == pgInvalidTextRepresentation:
		return http.StatusBadRequest, MessageBadRequest
	case kind == KindInvalidPayload || code == pgNotNullViolation:
		return http.StatusBadRequest, MessageBadRequest
	case kind == KindNotFound:
		return http.StatusNotFound, appErr.Message
	case kind == KindForeignKeyViolation || code == pgForeignKeyViolation:
		return http.StatusNotFound, MessageNotFound
	case code == pgUndefinedColumn:
		return http.StatusNotFound, MessageNotFound
	default:
		return http.StatusInternalServerError, MessageInternal
	}
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
