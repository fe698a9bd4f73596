package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrProductNameIsRequired  = errors.New("product name is required")
	ErrSupplierNameIsRequired = errors.New("supplier name is required")
)

// CreateProductCommand represents a product entry request. The supplier is
// given by name and resolved, or created with empty contact fields, inside
// the same transaction as the product insert.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID     kernel.UUID
	name          string
	description   string
	price         kernel.Money
	stockQuantity int
	categoryID    kernel.UUID
	supplierName  string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalog product.
func NewCreateProductCommand(
	productID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	stockQuantity int,
	categoryID kernel.UUID,
	supplierName string,
) (CreateProductCommand, error) {
	productCommand := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setProductID(productID),
		productCommand.setName(name),
		productCommand.setStockQuantity(stockQuantity),
		productCommand.setCategoryID(categoryID),
		productCommand.setSupplierName(supplierName),
	); err != nil {
		return CreateProductCommand{}, err
	}

	productCommand.description = description
	productCommand.price = price

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateProductCommandIsNotConstructed if validation fails.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier assigned to the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the product description, possibly empty.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Price returns the unit price.
func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

// StockQuantity returns the initial units on hand.
func (c CreateProductCommand) StockQuantity() int {
	return c.stockQuantity
}

// CategoryID returns the category reference.
func (c CreateProductCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// SupplierName returns the supplier name to resolve or create.
func (c CreateProductCommand) SupplierName() string {
	return c.supplierName
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return errs.NewValueIsInvalidError("stockQuantity")
	}

	c.stockQuantity = stockQuantity
	return nil
}

func (c *CreateProductCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}

func (c *CreateProductCommand) setSupplierName(supplierName string) error {
	if strings.TrimSpace(supplierName) == "" {
		return ErrSupplierNameIsRequired
	}

	c.supplierName = supplierName
	return nil
}
