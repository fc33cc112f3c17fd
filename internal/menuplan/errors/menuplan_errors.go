package menuplanerrors

import (
	"net/http"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/apperror"
)

var (
	ErrMenuPlanNotFound = apperror.New(
		apperror.CodeNotFound,
		"Menu plan not found",
		http.StatusNotFound,
	)

	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"End date must not be before start date",
		http.StatusBadRequest,
	)
)
