package profile

import (
	"net/http"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/authctx"
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
	l := zap.L().Named("profile.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("profile.handler")
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

// Update validates first and authorizes second: binding violations merge with
// the uniqueness probe so every failing field reports in one response, and
// only a clean request reaches the identity check.
func (h *Handler) Update(c *gin.Context) {
	ac := authctx.FromGin(c)

	var req UpdateProfileRequest

	violations := validation.Violations{}
	if err := c.ShouldBindJSON(&req); err != nil {
		violations = validation.Collect(err)
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	unique, err := h.svc.ValidateEmail(ctx, ac, req.Email)
	if err != nil {
		writeError(c, err)
		return
	}
	violations.Merge(unique)

	if !violations.Empty() {
		writeError(c, apperror.UnprocessableEntity(violations))
		return
	}

	res, err := h.svc.Update(ctx, ac, req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}
