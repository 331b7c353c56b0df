package client

import (
	"errors"
	"fmt"
)

// ErrNotFound signals a missing resource, kept distinct from transient
// failures so callers can show a specific message.
var ErrNotFound = errors.New("resource not found")

// Kind classifies API failures by what the caller should do about them.
type Kind string

const (
	// KindValidation: the request was rejected; retrying the same call
	// will not help.
	KindValidation Kind = "validation"
	// KindServer: the backend failed; fallback data or a manual retry
	// is appropriate.
	KindServer Kind = "server"
	// KindMalformed: the response body could not be decoded into the
	// expected shape.
	KindMalformed Kind = "malformed"
)

type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api request failed (%s, status %d)", e.Kind, e.Status)
}

// IsKind reports whether err is an API error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}
	return false
}
