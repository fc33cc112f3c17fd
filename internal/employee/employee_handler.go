package employee

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
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
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

func (h *Handler) GetAll(c *gin.Context) {
	ac := authctx.FromGin(c)
	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	resp, err := h.svc.GetAll(ctx, ac.RestaurantID())
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

	var req CreateEmployeeRequest
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

func (h *Handler) ToggleStatus(c *gin.Context) {
	ac := authctx.FromGin(c)

	var body struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, apperror.New(apperror.CodeInvalidInput, err.Error(), http.StatusBadRequest))
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	if err := h.svc.ToggleStatus(ctx, ac.RestaurantID(), c.Param("id"), *body.IsActive); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
