package dto

import (
	"github.com/device-management-toolkit/storefront/internal/entity"
	"github.com/device-management-toolkit/storefront/pkg/apperrors"
)

// NotValidError is returned when a request fails binding or validation.
type NotValidError struct {
	App apperrors.InternalError
}

func (e NotValidError) Error() string {
	return e.App.Error()
}

func (e NotValidError) Unwrap() error {
	return e.App
}

// Wrap -.
func (e NotValidError) Wrap(function, call string, err error) error {
	e.App = e.App.Wrap(function, call, err)

	return e
}

// LoginRequest falls back to the configured ERP server and database when
// those fields are left empty.
type LoginRequest struct {
	ServerAddress string `json:"serverAddress" binding:"omitempty,url" example:"http://localhost:8069"`
	DatabaseName  string `json:"databaseName" example:"shop"`
	Username      string `json:"username" binding:"required" example:"admin"`
	Password      string `json:"password" binding:"required" example:"admin"`
}

// SessionResponse -.
type SessionResponse struct {
	Authenticated bool `json:"authenticated"`
	entity.SessionInfo
}

// ProductQuery -.
type ProductQuery struct {
	Limit int `form:"limit" binding:"omitempty,gte=0,lte=1000"`
}

// PartnerQuery -.
type PartnerQuery struct {
	Query string `form:"q"`
	Limit int    `form:"limit" binding:"omitempty,gte=0,lte=200"`
}

// OrderQuery -.
type OrderQuery struct {
	State string `form:"state" binding:"omitempty,oneof=draft sent sale done cancel"`
	Limit int    `form:"limit" binding:"omitempty,gte=0,lte=1000"`
}

// CheckoutQuery -.
type CheckoutQuery struct {
	Confirm bool `form:"confirm"`
}

// AddCartItemRequest adds quantity of a product; 0 or omitted adds one.
type AddCartItemRequest struct {
	ProductID int `json:"productId" binding:"required,gt=0" example:"7"`
	Quantity  int `json:"quantity" binding:"omitempty,gte=0" example:"1"`
}

// SetQuantityRequest replaces a line's quantity; 0 removes the line.
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required" example:"3"`
}

// CartResponse -.
type CartResponse struct {
	Items     []entity.CartItem `json:"items"`
	ItemCount int               `json:"itemCount"`
	Total     float64           `json:"total"`
}

// CartChangeResponse reports whether a line existed, with the cart after the change.
type CartChangeResponse struct {
	Changed bool `json:"changed"`
	CartResponse
}

