package orders

import (
	"context"

	"github.com/device-management-toolkit/storefront/internal/entity"
)

type (
	// Repository is the ERP side of sales orders.
	Repository interface {
		GetSalesOrder(ctx context.Context, orderID int) (*entity.Order, error)
		GetSalesOrders(ctx context.Context, state entity.OrderState, limit int) ([]entity.Order, error)
		GetOrderLines(ctx context.Context, orderID int) ([]entity.OrderLineRecord, error)
		ConfirmSalesOrder(ctx context.Context, orderID int) (bool, error)
	}

	// Feature -.
	Feature interface {
		List(ctx context.Context, state entity.OrderState, limit int) ([]entity.Order, error)
		Get(ctx context.Context, orderID int) (*entity.Order, error)
		Lines(ctx context.Context, orderID int) ([]entity.OrderLineRecord, error)
		Confirm(ctx context.Context, orderID int) (*entity.Order, error)
	}
)
