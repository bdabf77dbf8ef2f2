package league

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindNotFound
	KindConflict
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	}
	return "unknown"
}

// Error is the only error type returned by this package. Op names the
// operation that failed, Err is the underlying cause.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a league error anywhere in err's chain, and
// KindUnknown for anything else.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func validationError(op, format string, args ...any) error {
	return &Error{Kind: KindValidation, Op: op, Err: fmt.Errorf(format, args...)}
}

// decode turns a Firestore error into a league error. Firestore reports
// failures as gRPC statuses, this is the one place their codes are read.
func decode(op string, err error) error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return err
	}

	kind := KindUnknown
	switch status.Code(err) {
	case codes.NotFound:
		kind = KindNotFound
	case codes.AlreadyExists, codes.Aborted:
		kind = KindConflict
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		kind = KindValidation
	}
	return &Error{Kind: kind, Op: op, Err: err}
}
