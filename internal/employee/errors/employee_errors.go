package employeeerrors

import (
	"net/http"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee id",
		http.StatusBadRequest,
	)

	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Role id is not a known staff role",
		http.StatusBadRequest,
	)

	ErrEmailTaken = apperror.New(
		apperror.CodeConflict,
		"Email is already in use",
		http.StatusConflict,
	)
)
