package checkout

import (
	"context"

	"github.com/device-management-toolkit/storefront/internal/entity"
)

type (
	// Repository creates and reads back sales orders.
	Repository interface {
		CreateSalesOrder(ctx context.Context, partnerID int, lines []entity.OrderLine) (int, error)
		ConfirmSalesOrder(ctx context.Context, orderID int) (bool, error)
		GetSalesOrder(ctx context.Context, orderID int) (*entity.Order, error)
	}

	// Session identifies the buyer.
	Session interface {
		SessionInfo() (entity.SessionInfo, bool)
	}

	// Cart is the part of the cart checkout consumes.
	Cart interface {
		IsEmpty() bool
		ToOrderLines() []entity.OrderLine
		Clear() error
	}

	// Feature -.
	Feature interface {
		PlaceOrder(ctx context.Context, confirm bool) (*entity.Order, error)
	}
)
