// Package catalog serves products and partners, cached for a short while.
package catalog

import (
	"context"
	"errors"

	"github.com/device-management-toolkit/storefront/internal/cache"
	"github.com/device-management-toolkit/storefront/internal/entity"
	"github.com/device-management-toolkit/storefront/pkg/apperrors"
	"github.com/device-management-toolkit/storefront/pkg/logger"
)

var (
	ErrCatalogUseCase = apperrors.CreateAppError("CatalogUseCase")

	// ErrProductNotFound is returned when no product has the requested id.
	ErrProductNotFound = errors.New("product not found")
)

// UseCase -.
type UseCase struct {
	repo         Repository
	cache        *cache.Cache
	defaultLimit int
	log          logger.Interface
}

var _ Feature = (*UseCase)(nil)

// Option -.
type Option func(*UseCase)

// WithDefaultLimit sets the product page size used when callers pass no limit.
func WithDefaultLimit(n int) Option {
	return func(uc *UseCase) {
		uc.defaultLimit = n
	}
}

// New -.
func New(repo Repository, c *cache.Cache, log logger.Interface, opts ...Option) *UseCase {
	uc := &UseCase{
		repo:  repo,
		cache: c,
		log:   log,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Products returns up to limit sellable products.
func (uc *UseCase) Products(ctx context.Context, limit int) ([]entity.Product, error) {
	if limit <= 0 {
		limit = uc.defaultLimit
	}

	key := cache.MakeCatalogKey(limit)

	if cached, ok := uc.cache.Get(key); ok {
		if products, ok := cached.([]entity.Product); ok {
			uc.log.Debug("catalog - cache hit %s", key)

			return products, nil
		}
	}

	products, err := uc.repo.GetCatalog(ctx, limit)
	if err != nil {
		return nil, ErrCatalogUseCase.Wrap("Products", "uc.repo.GetCatalog", err)
	}

	uc.cache.Set(key, products)

	return products, nil
}

// Product looks up one product. It always asks the ERP so prices added to
// the cart are current.
func (uc *UseCase) Product(ctx context.Context, productID int) (*entity.Product, error) {
	product, err := uc.repo.GetProduct(ctx, productID)
	if err != nil {
		return nil, ErrCatalogUseCase.Wrap("Product", "uc.repo.GetProduct", err)
	}

	if product == nil {
		return nil, ErrCatalogUseCase.Wrap("Product", "uc.repo.GetProduct", ErrProductNotFound)
	}

	return product, nil
}

// Partners searches customers by name.
func (uc *UseCase) Partners(ctx context.Context, searchTerm string, limit int) ([]entity.Partner, error) {
	key := cache.MakePartnersKey(searchTerm, limit)

	if cached, ok := uc.cache.Get(key); ok {
		if partners, ok := cached.([]entity.Partner); ok {
			return partners, nil
		}
	}

	partners, err := uc.repo.GetPartners(ctx, searchTerm, limit)
	if err != nil {
		return nil, ErrCatalogUseCase.Wrap("Partners", "uc.repo.GetPartners", err)
	}

	uc.cache.Set(key, partners)

	return partners, nil
}

// Invalidate drops cached product pages, e.g. after a sale changed stock.
func (uc *UseCase) Invalidate() {
	cache.InvalidateCatalog(uc.cache)
}
