package catalog

import (
	"context"

	"github.com/device-management-toolkit/storefront/internal/entity"
)

type (
	// Repository is the ERP side of the catalog.
	Repository interface {
		GetCatalog(ctx context.Context, limit int) ([]entity.Product, error)
		GetProduct(ctx context.Context, productID int) (*entity.Product, error)
		GetPartners(ctx context.Context, searchTerm string, limit int) ([]entity.Partner, error)
	}

	// Feature -.
	Feature interface {
		Products(ctx context.Context, limit int) ([]entity.Product, error)
		Product(ctx context.Context, productID int) (*entity.Product, error)
		Partners(ctx context.Context, searchTerm string, limit int) ([]entity.Partner, error)
		Invalidate()
	}
)
