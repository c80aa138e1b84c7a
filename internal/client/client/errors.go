package client

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrUnavailable  = errors.New("store unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrInvalid      = errors.New("rejected by store")
	ErrRemote       = errors.New("store error")
)

// RemoteError is a failed store call. Error returns the store's message
// unchanged; Unwrap returns one of the sentinel kinds.
type RemoteError struct {
	Kind    error
	Code    codes.Code
	Message string
}

func (e *RemoteError) Error() string { return e.Message }
func (e *RemoteError) Unwrap() error { return e.Kind }

func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	var kind error
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		kind = ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		kind = ErrUnavailable
	case codes.NotFound:
		kind = ErrNotFound
	case codes.InvalidArgument, codes.FailedPrecondition, codes.AlreadyExists:
		kind = ErrInvalid
	default:
		kind = ErrRemote
	}
	return &RemoteError{Kind: kind, Code: st.Code(), Message: st.Message()}
}
