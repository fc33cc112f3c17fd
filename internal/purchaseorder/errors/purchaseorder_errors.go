package purchaseordererrors

import (
	"net/http"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/apperror"
)

var (
	ErrPurchaseOrderNotFound = apperror.New(
		apperror.CodeNotFound,
		"Purchase order not found",
		http.StatusNotFound,
	)

	ErrInvalidAction = apperror.New(
		apperror.CodeInvalidInput,
		"Action must be confirm or reject",
		http.StatusBadRequest,
	)
)
