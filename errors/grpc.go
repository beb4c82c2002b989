package errors

import (
	"context"
	stderrors "errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MapToGRPCError translates domain sentinels into gRPC status errors.
// Anything unknown is reported as Internal without leaking its message.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok && !isPlain(err) {
		return err
	}
	switch {
	case stderrors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case stderrors.Is(err, ErrStatusConflict):
		return status.Error(codes.Aborted, err.Error())
	case stderrors.Is(err, ErrFeedbackOnDraft):
		return status.Error(codes.FailedPrecondition, err.Error())
	case stderrors.Is(err, ErrInvalidRequest),
		stderrors.Is(err, ErrInvalidStatus),
		stderrors.Is(err, ErrInvalidKind),
		stderrors.Is(err, ErrInvalidPayload):
		return status.Error(codes.InvalidArgument, err.Error())
	case stderrors.Is(err, ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, err.Error())
	case stderrors.Is(err, ErrPermissionDenied):
		return status.Error(codes.PermissionDenied, err.Error())
	case stderrors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case stderrors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

// isPlain reports whether err is an ordinary error that status.FromError
// would only wrap as codes.Unknown.
func isPlain(err error) bool {
	s, _ := status.FromError(err)
	return s.Code() == codes.Unknown
}
