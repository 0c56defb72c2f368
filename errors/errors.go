package errors

import (
	"errors"
	"fmt"
)

// AppError is the error type crossing service boundaries. The Code decides
// what the user should be told; Cause keeps the underlying storage or
// transport error for logs.
type AppError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Cause }

func New(code Code, message string) error {
	return &AppError{Code: code, Message: message}
}

func Wrap(code Code, message string, cause error) error {
	return &AppError{Code: code, Message: message, Cause: cause}
}

func NotFound(msg string) error       { return New(CodeNotFound, msg) }
func SelfReference(msg string) error  { return New(CodeSelfReference, msg) }
func AlreadyExists(msg string) error  { return New(CodeAlreadyExists, msg) }
func NotFriends(msg string) error     { return New(CodeNotFriends, msg) }
func Forbidden(msg string) error      { return New(CodeForbidden, msg) }
func InvalidState(msg string) error   { return New(CodeInvalidState, msg) }
func InvalidContent(msg string) error { return New(CodeInvalidContent, msg) }
func Conflict(msg string) error       { return New(CodeConflict, msg) }

func Transient(msg string, cause error) error {
	return Wrap(CodeTransient, msg, cause)
}

// CodeOf extracts the Code of err, or CodeUnknown for untyped errors.
func CodeOf(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	return CodeOf(err) == code
}

var (
	ErrUserNotFound         = NotFound("user not found")
	ErrUsernameTaken        = AlreadyExists("username is already taken")
	ErrInvalidCredentials   = Forbidden("invalid credentials")
	ErrTokenGeneration      = New(CodeUnknown, "token generation failed")
	ErrEdgeNotFound         = NotFound("friendship not found")
	ErrEdgeExists           = AlreadyExists("a friendship already exists for this pair")
	ErrConversationNotFound = NotFound("conversation not found")
	ErrMessageNotFound      = NotFound("message not found")
	ErrNotParticipant       = Forbidden("you are not a participant in this conversation")
	ErrWorkerPanic          = errors.New("worker panic")
	ErrEmptyWords           = errors.New("no censored words loaded")
)
