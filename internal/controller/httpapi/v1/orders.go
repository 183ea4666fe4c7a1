package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/device-management-toolkit/storefront/internal/entity"
	"github.com/device-management-toolkit/storefront/internal/entity/dto/v1"
	"github.com/device-management-toolkit/storefront/internal/usecase/orders"
	"github.com/device-management-toolkit/storefront/pkg/apperrors"
	"github.com/device-management-toolkit/storefront/pkg/logger"
)

var ErrValidationOrders = dto.NotValidError{App: apperrors.CreateAppError("OrdersAPI")}

type orderRoutes struct {
	t orders.Feature
	l logger.Interface
}

func NewOrderRoutes(handler *gin.RouterGroup, t orders.Feature, l logger.Interface) {
	r := &orderRoutes{t, l}

	h := handler.Group("/orders")
	{
		h.GET("", r.list)
		h.GET("/:id", r.get)
		h.GET("/:id/lines", r.lines)
		h.POST("/:id/confirm", r.confirm)
	}
}

func (r *orderRoutes) list(c *gin.Context) {
	var q dto.OrderQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		ErrorResponse(c, ErrValidationOrders.Wrap("list", "ShouldBindQuery", err))

		return
	}

	items, err := r.t.List(c.Request.Context(), entity.OrderState(q.State), q.Limit)
	if err != nil {
		r.l.Error(err, "http - v1 - orders - list")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, items)
}

func (r *orderRoutes) get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		ErrorResponse(c, ErrValidationOrders.Wrap("get", "pathID", err))

		return
	}

	order, err := r.t.Get(c.Request.Context(), id)
	if err != nil {
		r.l.Error(err, "http - v1 - orders - get")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, order)
}

func (r *orderRoutes) lines(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		ErrorResponse(c, ErrValidationOrders.Wrap("lines", "pathID", err))

		return
	}

	items, err := r.t.Lines(c.Request.Context(), id)
	if err != nil {
		r.l.Error(err, "http - v1 - orders - lines")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, items)
}

func (r *orderRoutes) confirm(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		ErrorResponse(c, ErrValidationOrders.Wrap("confirm", "pathID", err))

		return
	}

	order, err := r.t.Confirm(c.Request.Context(), id)
	if err != nil {
		r.l.Error(err, "http - v1 - orders - confirm")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, order)
}
