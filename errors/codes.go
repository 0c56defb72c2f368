package errors

// Code classifies an error for the caller. The set is closed: every error
// crossing a service boundary carries exactly one of these.
type Code string

const (
	CodeUnknown        Code = "UNKNOWN"
	CodeNotFound       Code = "NOT_FOUND"
	CodeSelfReference  Code = "SELF_REFERENCE"
	CodeAlreadyExists  Code = "ALREADY_EXISTS"
	CodeNotFriends     Code = "NOT_FRIENDS"
	CodeForbidden      Code = "FORBIDDEN"
	CodeInvalidState   Code = "INVALID_STATE"
	CodeInvalidContent Code = "INVALID_CONTENT"
	CodeConflict       Code = "CONFLICT"
	CodeTransient      Code = "TRANSIENT"
)
