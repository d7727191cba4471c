package users

import "errors"

// Kind classifies a service failure so the transport boundary can pick a
// status code without inspecting message text.
type Kind int

const (
	// KindValidation marks a malformed request field.
	KindValidation Kind = iota + 1
	// KindConflict marks a signup that collides with an existing account.
	KindConflict
	// KindUnauthorized marks a failed credential check.
	KindUnauthorized
	// KindInternal marks an unexpected fault. Its detail is logged, never
	// surfaced to the caller.
	KindInternal
)

// Error is the typed result every service operation fails with.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Invalid builds a validation error.
func Invalid(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Conflicted builds a duplicate-account error. The message stays generic so
// callers cannot learn which field collided.
func Conflicted(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Unauthorized builds a failed-authentication error.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// Internal wraps an unexpected fault behind an opaque message.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "something went wrong", Err: err}
}

// KindOf extracts the classification from err. Anything that is not a
// service Error counts as internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the caller-safe message for err. Internal faults always
// map to the opaque message regardless of the underlying cause.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Message
	}
	return "something went wrong"
}
