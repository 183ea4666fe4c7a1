package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/device-management-toolkit/storefront/internal/entity/dto/v1"
	"github.com/device-management-toolkit/storefront/internal/usecase/catalog"
	"github.com/device-management-toolkit/storefront/pkg/apperrors"
	"github.com/device-management-toolkit/storefront/pkg/logger"
)

var ErrValidationCatalog = dto.NotValidError{App: apperrors.CreateAppError("CatalogAPI")}

type catalogRoutes struct {
	t catalog.Feature
	l logger.Interface
}

func NewCatalogRoutes(handler *gin.RouterGroup, t catalog.Feature, l logger.Interface) {
	r := &catalogRoutes{t, l}

	handler.GET("/products", r.products)
	handler.GET("/products/:id", r.product)
	handler.GET("/partners", r.partners)
}

func (r *catalogRoutes) products(c *gin.Context) {
	var q dto.ProductQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		ErrorResponse(c, ErrValidationCatalog.Wrap("products", "ShouldBindQuery", err))

		return
	}

	items, err := r.t.Products(c.Request.Context(), q.Limit)
	if err != nil {
		r.l.Error(err, "http - v1 - products")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, items)
}

func (r *catalogRoutes) product(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		ErrorResponse(c, ErrValidationCatalog.Wrap("product", "pathID", err))

		return
	}

	item, err := r.t.Product(c.Request.Context(), id)
	if err != nil {
		r.l.Error(err, "http - v1 - product")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, item)
}

func (r *catalogRoutes) partners(c *gin.Context) {
	var q dto.PartnerQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		ErrorResponse(c, ErrValidationCatalog.Wrap("partners", "ShouldBindQuery", err))

		return
	}

	items, err := r.t.Partners(c.Request.Context(), q.Query, q.Limit)
	if err != nil {
		r.l.Error(err, "http - v1 - partners")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, items)
}
