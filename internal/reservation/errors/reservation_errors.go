package reservationerrors

import (
	"net/http"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/apperror"
)

var (
	ErrTableUnavailable = apperror.New(
		apperror.CodeConflict,
		"The selected table is not available",
		http.StatusConflict,
	)

	ErrReservationInPast = apperror.New(
		apperror.CodeInvalidInput,
		"Reservation time must be in the future",
		http.StatusBadRequest,
	)
)
