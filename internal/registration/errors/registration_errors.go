package registrationerrors

import (
	"net/http"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/apperror"
)

var (
	ErrRegistrationFailed = apperror.New(
		apperror.CodeInternalError,
		"Registration could not be completed",
		http.StatusInternalServerError,
	)
)
