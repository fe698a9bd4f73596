package catalog

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrProductIsNotConstructed indicates usage of a Product that was not built via a constructor.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a sellable catalog entry.
type Product struct {
	id kernel.UUID

	name string

	description string

	price kernel.Money

	stockQuantity int

	categoryID kernel.UUID

	supplierID kernel.UUID

	isConstructed bool
}

// NewProduct creates a catalog product. Category and supplier references
// must already be resolved.
func NewProduct(
	id kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	stockQuantity int,
	categoryID kernel.UUID,
	supplierID kernel.UUID,
) (*Product, error) {
	product := &Product{
		isConstructed: true,
	}

	err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setDescription(description),
		product.setPrice(price),
		product.setStockQuantity(stockQuantity),
		product.setCategoryID(categoryID),
		product.setSupplierID(supplierID),
	)
	if err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a product from stored values.
func RestoreProduct(
	id kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	stockQuantity int,
	categoryID kernel.UUID,
	supplierID kernel.UUID,
) (*Product, error) {
	return NewProduct(id, name, description, price, stockQuantity, categoryID, supplierID)
}

// Validate checks that the product was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// StockQuantity returns the units on hand.
func (p *Product) StockQuantity() int {
	return p.stockQuantity
}

// CategoryID returns the category reference.
func (p *Product) CategoryID() kernel.UUID {
	return p.categoryID
}

// SupplierID returns the supplier reference.
func (p *Product) SupplierID() kernel.UUID {
	return p.supplierID
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setDescription(description string) error {
	p.description = description
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	p.price = price
	return nil
}

func (p *Product) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return errs.NewValueIsInvalidError("stockQuantity")
	}
	p.stockQuantity = stockQuantity
	return nil
}

func (p *Product) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	p.categoryID = categoryID
	return nil
}

func (p *Product) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}
	p.supplierID = supplierID
	return nil
}
