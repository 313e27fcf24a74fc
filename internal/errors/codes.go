package errors

import "net/http"

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeUnimplemented      Code = "UNIMPLEMENTED"

	// Domain codes for the rules core

	// CodeInvalidState means caller-supplied state is internally
	// inconsistent (e.g. a level that does not match the total XP).
	CodeInvalidState Code = "INVALID_STATE"

	// CodeExpired means a time-bound entity (quest, session) no longer
	// accepts mutation.
	CodeExpired Code = "EXPIRED"

	// CodeInvalidSessionState means a scoring call or transition was
	// attempted from a session state that disallows it.
	CodeInvalidSessionState Code = "INVALID_SESSION_STATE"

	// CodeSessionFull means a join was attempted beyond session capacity.
	CodeSessionFull Code = "SESSION_FULL"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// HTTPStatus returns the corresponding HTTP status code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case CodeInvalidArgument, CodeInvalidState:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAlreadyExists, CodeSessionFull:
		return http.StatusConflict
	case CodePermissionDenied:
		return http.StatusForbidden
	case CodeFailedPrecondition, CodeInvalidSessionState:
		return http.StatusPreconditionFailed
	case CodeExpired:
		return http.StatusGone
	case CodeUnimplemented:
		return http.StatusNotImplemented
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	case CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
