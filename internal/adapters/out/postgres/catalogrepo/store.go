package catalogrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCatalogStore implements CatalogStore using GORM.
type GormCatalogStore struct {
	db *gorm.DB
}

// NewGormCatalogStore creates a new GORM catalog store.
func NewGormCatalogStore(db *gorm.DB) *GormCatalogStore {
	return &GormCatalogStore{db: db}
}

// GetProduct retrieves a product by ID.
func (s *GormCatalogStore) GetProduct(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := s.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productId", id.String())
		}
		return nil, err
	}

	return productToDomain(dto)
}

// AddProduct saves a new product to the database.
func (s *GormCatalogStore) AddProduct(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(product)
	return s.db.WithContext(ctx).Create(&dto).Error
}

// ResolveOrCreateSupplier resolves a supplier by exact name, creating one
// with empty contact fields when absent. Product entry relies on this
// create-on-lookup behavior and must never block on a missing supplier.
func (s *GormCatalogStore) ResolveOrCreateSupplier(ctx context.Context, name string) (kernel.UUID, error) {
	if name == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError("name")
	}

	dto := SupplierDTO{
		ID:    uuid.New(),
		Email: "",
		Phone: "",
	}
	err := s.db.WithContext(ctx).
		Where(SupplierDTO{Name: name}).
		Attrs(dto).
		FirstOrCreate(&dto).Error
	if err != nil {
		return kernel.UUID{}, errs.NewPersistenceError("upsert supplier", err)
	}

	return kernel.UUIDFromBytes(dto.ID[:])
}
