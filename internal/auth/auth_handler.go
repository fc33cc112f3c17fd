package auth

import (
	"net/http"
	"os"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/apperror"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/contextutil"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const cookieMaxAge = 86400

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
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

func setGuardCookie(c *gin.Context, name, token string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		Secure:   os.Getenv("APP_ENV") == "production",
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) LoginOwner(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.New(apperror.CodeInvalidInput, err.Error(), http.StatusBadRequest))
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	token, resp, err := h.svc.LoginOwner(ctx, req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	setGuardCookie(c, "owner_token", token)
	response.Success(c, http.StatusOK, gin.H{"user": resp, "token": token}, nil)
}

func (h *Handler) LoginEmployee(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.New(apperror.CodeInvalidInput, err.Error(), http.StatusBadRequest))
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	token, resp, err := h.svc.LoginEmployee(ctx, req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	setGuardCookie(c, "employee_token", token)
	response.Success(c, http.StatusOK, gin.H{"user": resp, "token": token}, nil)
}

// Logout clears both guard cookies; a request may carry either.
func (h *Handler) Logout(c *gin.Context) {
	for _, name := range []string{"owner_token", "employee_token"} {
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   os.Getenv("APP_ENV") == "production",
			SameSite: http.SameSiteLaxMode,
		})
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"}, nil)
}
