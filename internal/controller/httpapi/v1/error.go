package v1

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/device-management-toolkit/storefront/internal/entity/dto/v1"
	"github.com/device-management-toolkit/storefront/internal/rpc"
	"github.com/device-management-toolkit/storefront/internal/session"
	"github.com/device-management-toolkit/storefront/internal/usecase/catalog"
	"github.com/device-management-toolkit/storefront/internal/usecase/checkout"
	"github.com/device-management-toolkit/storefront/internal/usecase/orders"
	"github.com/device-management-toolkit/storefront/pkg/apperrors"
)

type response struct {
	Error   string `json:"error,omitempty" example:"message"`
	Message string `json:"message,omitempty" example:"message"`
}

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, response{Error: msg, Message: msg})
}

func ErrorResponse(c *gin.Context, err error) {
	var (
		validatorErr validator.ValidationErrors
		notValidErr  dto.NotValidError
		authErr      *session.AuthError
		rpcErr       *rpc.Error
	)

	switch {
	case errors.As(err, &notValidErr):
		notValidErrorHandle(c, notValidErr)
	case errors.As(err, &validatorErr):
		abort(c, http.StatusBadRequest, validatorErr.Error())
	case errors.As(err, &authErr):
		authErrorHandle(c, authErr)
	case errors.Is(err, rpc.ErrNotAuthenticated):
		abort(c, http.StatusUnauthorized, "not authenticated")
	case errors.As(err, &rpcErr):
		rpcErrorHandle(c, rpcErr)
	case errors.Is(err, checkout.ErrEmptyCart), errors.Is(err, orders.ErrInvalidState):
		abort(c, http.StatusBadRequest, friendlyMessage(err))
	case errors.Is(err, orders.ErrNotFound), errors.Is(err, catalog.ErrProductNotFound):
		abort(c, http.StatusNotFound, friendlyMessage(err))
	default:
		abort(c, http.StatusInternalServerError, "general error")
	}
}

func friendlyMessage(err error) string {
	var appErr apperrors.InternalError
	if errors.As(err, &appErr) && appErr.FriendlyMessage() != "" {
		return appErr.FriendlyMessage()
	}

	return err.Error()
}

func notValidErrorHandle(c *gin.Context, err dto.NotValidError) {
	msg := err.App.FriendlyMessage()
	if msg == "" {
		msg = "invalid request"
	}

	abort(c, http.StatusBadRequest, msg)
}

func authErrorHandle(c *gin.Context, err *session.AuthError) {
	switch err.Reason {
	case session.ReasonInvalidInput:
		abort(c, http.StatusBadRequest, err.Error())
	case session.ReasonUnreachable, session.ReasonMalformedResponse:
		abort(c, http.StatusBadGateway, err.Reason)
	default:
		abort(c, http.StatusUnauthorized, err.Reason)
	}
}

func rpcErrorHandle(c *gin.Context, err *rpc.Error) {
	var netErr net.Error

	switch {
	case err.Kind == rpc.KindRemote:
		abort(c, http.StatusBadGateway, err.Message)
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		abort(c, http.StatusGatewayTimeout, "erp request timed out")
	default:
		abort(c, http.StatusBadGateway, "erp unreachable")
	}
}
