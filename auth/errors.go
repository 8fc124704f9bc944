package auth

import (
	"net/http"

	"github.com/hirelane/backend/srvcerror"
)

const ErrCodeAccessDenied = "access_denied"

func ErrPermissionDenied() *srvcerror.Error {
	return srvcerror.NewAccessDenied(
		ErrCodeAccessDenied,
		"you do not have permission to perform this operation",
	)
}

func ErrWrongAccountState() *srvcerror.Error {
	return srvcerror.NewAccessDenied(
		ErrCodeAccessDenied,
		"your account state does not allow this operation",
	)
}

const ErrCodeNotAuthenticated = "not_authenticated"

func ErrNotAuthenticated() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNotAuthenticated,
		"authentication required",
	).SetHttpStatusCode(http.StatusUnauthorized)
}
