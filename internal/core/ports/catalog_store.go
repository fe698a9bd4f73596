package ports

import (
	"context"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
)

// CatalogStore defines the catalog contract consumed by order processing
// and product entry.
type CatalogStore interface {
	// GetProduct resolves a product identifier to its catalog entry.
	// Returns an ObjectNotFoundError when the identifier does not resolve.
	GetProduct(ctx context.Context, id kernel.UUID) (*catalog.Product, error)

	// AddProduct persists a new catalog product.
	AddProduct(ctx context.Context, product *catalog.Product) error

	// ResolveOrCreateSupplier resolves a supplier by exact name, creating
	// one with empty contact fields when absent. The operation is
	// idempotent: repeated calls with the same name return the same
	// identifier.
	ResolveOrCreateSupplier(ctx context.Context, name string) (kernel.UUID, error)
}
