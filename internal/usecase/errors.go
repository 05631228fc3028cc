package usecase

import (
	"errors"
)

// ErrorKind classifies use case failures for the transport layer.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindBadRequest
	KindUnauthorized
	KindNotFound
	KindConflict
)

func (k ErrorKind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// AppError is a classified failure with a caller-facing message.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewBadRequest(msg string) *AppError {
	return &AppError{Kind: KindBadRequest, Message: msg}
}

func NewUnauthorized(msg string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: msg}
}

func NewNotFound(msg string) *AppError {
	return &AppError{Kind: KindNotFound, Message: msg}
}

func NewConflict(msg string) *AppError {
	return &AppError{Kind: KindConflict, Message: msg}
}

// NewInternal wraps an unexpected failure. The cause is never shown to callers.
func NewInternal(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: errInternalServer, Err: err}
}

// KindOf returns the kind of err, or KindInternal for unclassified errors.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Caller-facing messages.
const (
	errInternalServer     = "Server error"
	msgUserExists         = "User already exists"
	msgStudentNumberInUse = "Student number already in use"
	msgStaffNumberInUse   = "Staff number already in use"
	msgMissingCredentials = "Please provide email and password"
	msgInvalidCredentials = "Invalid email or password"
	msgIncompleteProfile  = "User profile incomplete: missing firstName, lastName, or role"
	msgUserNotFound       = "User not found"
	msgInvalidToken       = "Not authorized, invalid or expired token"
	msgInvalidCode        = "Invalid verification code"
	msgAlreadyVerified    = "User is already verified"
	MsgTokenMissing       = "Not authorized, no token"
	MsgTokenVerifyFailed  = "Not authorized, token verification failed"
	MsgTokenUserNotFound  = "Not authorized, user not found"
)
