package autherrors

import (
	"net/http"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Email or password is incorrect",
		http.StatusUnauthorized,
	)

	ErrInactiveAccount = apperror.New(
		apperror.CodeForbidden,
		"This account has been deactivated",
		http.StatusForbidden,
	)

	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Could not issue a session token",
		http.StatusInternalServerError,
	)
)
