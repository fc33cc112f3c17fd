package purchaseorder

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/authctx"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/render"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/apperror"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/contextutil"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	rdb    *redis.Client
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("purchaseorder.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("purchaseorder.handler")
	}
	return &Handler{svc: service, logger: l}
}

// NewHandlerWithRedis enables response caching for idempotent creates.
func NewHandlerWithRedis(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	h := NewHandler(service, logger...)
	h.rdb = rdb
	return h
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

func (h *Handler) Create(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	ac := authctx.FromGin(c)

	var req CreatePurchaseOrderRequest
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

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(res); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
			}
		}
	}

	response.Success(c, http.StatusCreated, res, nil)
}

// Respond is the landing page for supplier email links. It is the one HTML
// endpoint in the API and carries no staff authentication.
func (h *Handler) Respond(c *gin.Context) {
	poNumber := c.Query("po_number")
	action := c.Query("action")
	message := c.Query("message")

	if poNumber == "" || action == "" {
		writeError(c, apperror.New(apperror.CodeInvalidInput, "po_number and action are required", http.StatusBadRequest))
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	result, err := h.svc.Respond(ctx, poNumber, action, message)
	if err != nil {
		writeError(c, err)
		return
	}

	html, err := render.PurchaseOrderPage(render.PurchaseOrderPageProps{
		Action:   result.Action,
		PONumber: result.PONumber,
		Message:  result.Message,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
