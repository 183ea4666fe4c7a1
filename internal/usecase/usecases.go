package usecase

import (
	"github.com/device-management-toolkit/storefront/config"
	"github.com/device-management-toolkit/storefront/internal/cache"
	"github.com/device-management-toolkit/storefront/internal/cart"
	"github.com/device-management-toolkit/storefront/internal/rpc"
	"github.com/device-management-toolkit/storefront/internal/session"
	"github.com/device-management-toolkit/storefront/internal/usecase/catalog"
	"github.com/device-management-toolkit/storefront/internal/usecase/checkout"
	"github.com/device-management-toolkit/storefront/internal/usecase/orders"
	"github.com/device-management-toolkit/storefront/pkg/logger"
)

// Usecases -.
type Usecases struct {
	Session  *session.Manager
	Cart     *cart.Store
	Catalog  catalog.Feature
	Orders   orders.Feature
	Checkout checkout.Feature
}

// NewUseCases wires the use cases around one session, its RPC client and the cart.
func NewUseCases(sess *session.Manager, client *rpc.Client, shoppingCart *cart.Store, c *cache.Cache, cfg *config.Config, log logger.Interface) *Usecases {
	catalogUC := catalog.New(client, c, log, catalog.WithDefaultLimit(cfg.Catalog.DefaultLimit))

	return &Usecases{
		Session:  sess,
		Cart:     shoppingCart,
		Catalog:  catalogUC,
		Orders:   orders.New(client, log),
		Checkout: checkout.New(client, sess, shoppingCart, log, catalogUC.Invalidate),
	}
}
