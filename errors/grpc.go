package errors

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MapToGRPCError converts a typed application error into a gRPC status error
// at the transport edge. Service layers never import grpc.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	var code codes.Code
	switch CodeOf(err) {
	case CodeNotFound:
		code = codes.NotFound
	case CodeAlreadyExists, CodeConflict:
		code = codes.AlreadyExists
	case CodeForbidden, CodeNotFriends:
		code = codes.PermissionDenied
	case CodeSelfReference, CodeInvalidContent:
		code = codes.InvalidArgument
	case CodeInvalidState:
		code = codes.FailedPrecondition
	case CodeTransient:
		code = codes.Unavailable
	default:
		code = codes.Internal
	}
	return status.Error(code, err.Error())
}
