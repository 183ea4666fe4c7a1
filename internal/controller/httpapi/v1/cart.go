package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/device-management-toolkit/storefront/internal/entity/dto/v1"
	"github.com/device-management-toolkit/storefront/internal/usecase/catalog"
	"github.com/device-management-toolkit/storefront/internal/usecase/checkout"
	"github.com/device-management-toolkit/storefront/pkg/apperrors"
	"github.com/device-management-toolkit/storefront/pkg/logger"
)

var (
	ErrValidationCart = dto.NotValidError{App: apperrors.CreateAppError("CartAPI")}

	errInvalidID = errors.New("id must be a positive integer")
)

type cartRoutes struct {
	cart     CartFeature
	catalog  catalog.Feature
	checkout checkout.Feature
	l        logger.Interface
}

func NewCartRoutes(handler *gin.RouterGroup, cart CartFeature, cat catalog.Feature, co checkout.Feature, l logger.Interface) {
	r := &cartRoutes{cart, cat, co, l}

	h := handler.Group("/cart")
	{
		h.GET("", r.get)
		h.DELETE("", r.clear)
		h.POST("/items", r.addItem)
		h.PUT("/items/:id", r.setQuantity)
		h.DELETE("/items/:id", r.removeItem)
		h.POST("/checkout", r.checkout)
	}
}

func (r *cartRoutes) snapshot() dto.CartResponse {
	return dto.CartResponse{
		Items:     r.cart.Items(),
		ItemCount: r.cart.ItemCount(),
		Total:     r.cart.Total(),
	}
}

func (r *cartRoutes) get(c *gin.Context) {
	c.JSON(http.StatusOK, r.snapshot())
}

func (r *cartRoutes) clear(c *gin.Context) {
	if err := r.cart.Clear(); err != nil {
		r.l.Error(err, "http - v1 - cart - clear")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, r.snapshot())
}

func (r *cartRoutes) addItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, ErrValidationCart.Wrap("addItem", "ShouldBindJSON", err))

		return
	}

	product, err := r.catalog.Product(c.Request.Context(), req.ProductID)
	if err != nil {
		r.l.Error(err, "http - v1 - cart - addItem")
		ErrorResponse(c, err)

		return
	}

	if err := r.cart.AddItem(*product, req.Quantity); err != nil {
		r.l.Error(err, "http - v1 - cart - addItem")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, r.snapshot())
}

func pathID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}

	return id, nil
}

func (r *cartRoutes) setQuantity(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		ErrorResponse(c, ErrValidationCart.Wrap("setQuantity", "pathID", err))

		return
	}

	var req dto.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, ErrValidationCart.Wrap("setQuantity", "ShouldBindJSON", err))

		return
	}

	changed, err := r.cart.SetQuantity(id, *req.Quantity)
	if err != nil {
		r.l.Error(err, "http - v1 - cart - setQuantity")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.CartChangeResponse{Changed: changed, CartResponse: r.snapshot()})
}

func (r *cartRoutes) removeItem(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		ErrorResponse(c, ErrValidationCart.Wrap("removeItem", "pathID", err))

		return
	}

	changed, err := r.cart.RemoveItem(id)
	if err != nil {
		r.l.Error(err, "http - v1 - cart - removeItem")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.CartChangeResponse{Changed: changed, CartResponse: r.snapshot()})
}

func (r *cartRoutes) checkout(c *gin.Context) {
	var q dto.CheckoutQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		ErrorResponse(c, ErrValidationCart.Wrap("checkout", "ShouldBindQuery", err))

		return
	}

	order, err := r.checkout.PlaceOrder(c.Request.Context(), q.Confirm)

	// the order exists and the cart is gone; answering with an error would invite a duplicate
	var placedErr *checkout.OrderPlacedError
	if errors.As(err, &placedErr) && order != nil {
		r.l.Warn("http - v1 - cart - checkout: %v", err)
		c.JSON(http.StatusCreated, order)

		return
	}

	if err != nil {
		r.l.Error(err, "http - v1 - cart - checkout")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusCreated, order)
}
