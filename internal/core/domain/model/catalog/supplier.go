package catalog

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrSupplierIsNotConstructed indicates usage of a Supplier that was not built via a constructor.
var ErrSupplierIsNotConstructed = errors.New("Supplier must be created via NewSupplier constructor")

// Supplier is the source a product is bought from. Suppliers created
// during product entry carry empty contact fields until filled in later.
type Supplier struct {
	id kernel.UUID

	name string

	email string

	phone string

	isConstructed bool
}

// NewSupplier creates a supplier. Contact fields may be empty.
func NewSupplier(id kernel.UUID, name string, email string, phone string) (*Supplier, error) {
	supplier := &Supplier{
		isConstructed: true,
	}

	err := errors.Join(
		supplier.setID(id),
		supplier.setName(name),
	)
	if err != nil {
		return nil, err
	}

	supplier.email = email
	supplier.phone = phone

	return supplier, nil
}

// Validate checks that the supplier was properly constructed.
func (s *Supplier) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSupplierIsNotConstructed
	}
	return nil
}

// ID returns the supplier identifier.
func (s *Supplier) ID() kernel.UUID {
	return s.id
}

// Name returns the supplier name. Names are unique within the catalog.
func (s *Supplier) Name() string {
	return s.name
}

// Email returns the contact email, possibly empty.
func (s *Supplier) Email() string {
	return s.email
}

// Phone returns the contact phone, possibly empty.
func (s *Supplier) Phone() string {
	return s.phone
}

func (s *Supplier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Supplier) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}
