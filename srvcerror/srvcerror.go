package srvcerror

import "net/http"

type Error struct {
	errorCode  string
	msgToUser  string // public
	dbgInfoErr error  // private, for debugging

	httpStatus int // optional, for HTTP responses
}

func (e *Error) Error() string {
	return e.msgToUser
}

func (e *Error) ErrorCode() string {
	return e.errorCode
}

func (e *Error) DebugInfo() error {
	return e.dbgInfoErr
}

func (e *Error) SetDebug(err error) *Error {
	e.dbgInfoErr = err
	return e
}

func (e *Error) HttpStatusCode() int {
	if e.httpStatus == 0 {
		return http.StatusInternalServerError
	}
	return e.httpStatus
}

func (e *Error) SetHttpStatusCode(code int) *Error {
	e.httpStatus = code
	return e
}

func New(errorCode string, msgToUser string) *Error {
	return &Error{
		errorCode: errorCode,
		msgToUser: msgToUser,
	}
}

// NewNotFound builds an error for a referenced entity that does not exist.
func NewNotFound(errorCode string, msgToUser string) *Error {
	return New(errorCode, msgToUser).SetHttpStatusCode(http.StatusNotFound)
}

// NewBadRequest builds an error for an invalid state transition or a
// malformed reference (wrong test type, expired deadline, unknown option).
func NewBadRequest(errorCode string, msgToUser string) *Error {
	return New(errorCode, msgToUser).SetHttpStatusCode(http.StatusBadRequest)
}

// NewAccessDenied builds an error for a failed permission or account-state
// check.
func NewAccessDenied(errorCode string, msgToUser string) *Error {
	return New(errorCode, msgToUser).SetHttpStatusCode(http.StatusForbidden)
}

const ErrCodeInternalServerError = "internal_server_error"

func ErrInternalSE() *Error {
	return New(
		ErrCodeInternalServerError,
		"internal server error",
	).SetHttpStatusCode(http.StatusInternalServerError)
}
