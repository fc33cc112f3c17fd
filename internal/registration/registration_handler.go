package registration

import (
	"net/http"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/apperror"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/contextutil"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/response"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("registration.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("registration.handler")
	}
	return &Handler{svc: service, logger: l}
}

func writeError(c *gin.Context, err error) {
	if appErr, ok := err.(*apperror.AppError); ok {
		response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, appErr.Details)
		return
	}

	response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "Internal server error", nil)
}

// Register handles owner signup. Binding violations and uniqueness violations
// are merged so the caller sees every failing field in one response.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest

	violations := validation.Violations{}
	if err := c.ShouldBindJSON(&req); err != nil {
		violations = validation.Collect(err)
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	unique, err := h.svc.ValidateUniqueness(ctx, req)
	if err != nil {
		writeError(c, err)
		return
	}
	violations.Merge(unique)

	if !violations.Empty() {
		writeError(c, apperror.UnprocessableEntity(violations))
		return
	}

	res, err := h.svc.Register(ctx, req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}
