package menuplan

import (
	"net/http"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/authctx"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/apperror"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/contextutil"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("menuplan.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("menuplan.handler")
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

func (h *Handler) GetCurrent(c *gin.Context) {
	ac := authctx.FromGin(c)
	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	resp, err := h.svc.GetCurrent(ctx, ac.RestaurantID())
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	ac := authctx.FromGin(c)
	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	res, err := h.svc.GetByID(ctx, ac.RestaurantID(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Create(c *gin.Context) {
	ac := authctx.FromGin(c)

	var req CreateMenuPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.New(apperror.CodeInvalidInput, err.Error(), http.StatusBadRequest))
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	res, err := h.svc.Create(ctx, ac.RestaurantID(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}
