package v1

import (
	"context"

	"github.com/device-management-toolkit/storefront/internal/entity"
)

type (
	// SessionFeature is what the session routes need from the session manager.
	SessionFeature interface {
		Authenticate(ctx context.Context, serverAddress, databaseName, username, password string) (entity.SessionInfo, error)
		SessionInfo() (entity.SessionInfo, bool)
		Logout(ctx context.Context) error
	}

	// CartFeature is what the cart routes need from the cart store.
	CartFeature interface {
		AddItem(product entity.Product, quantity int) error
		RemoveItem(productID int) (bool, error)
		SetQuantity(productID, quantity int) (bool, error)
		Items() []entity.CartItem
		ItemCount() int
		Total() float64
		Clear() error
	}
)
