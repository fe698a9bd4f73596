package shipment

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed indicates usage of a Delivery that was not built via a constructor.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrDeliveryDateIsMissing is returned when the status implies physical
	// movement but no delivery date was supplied.
	ErrDeliveryDateIsMissing = errs.NewValueIsRequiredError("deliveryDate")

	// ErrDeliveryDateIsUnexpected is returned when a delivery date is supplied
	// for a status that does not carry one.
	ErrDeliveryDateIsUnexpected = errs.NewValueIsInvalidError("deliveryDate")
)

// Delivery tracks the shipment of a single order. At most one delivery
// exists per order.
type Delivery struct {
	id kernel.UUID

	// orderID is a weak reference to the order being fulfilled
	orderID kernel.UUID

	status Status

	// deliveryDate is set exactly when status requires it
	deliveryDate *time.Time

	isConstructed bool
}

// NewDelivery creates a delivery for an order. The delivery date must be
// present if and only if the status requires one.
func NewDelivery(id kernel.UUID, orderID kernel.UUID, status Status, deliveryDate *time.Time) (*Delivery, error) {
	delivery := &Delivery{
		isConstructed: true,
	}

	err := errors.Join(
		delivery.setID(id),
		delivery.setOrderID(orderID),
		delivery.setStatus(status, deliveryDate),
	)
	if err != nil {
		return nil, err
	}

	return delivery, nil
}

// RestoreDelivery reconstructs a delivery from stored values.
func RestoreDelivery(id kernel.UUID, orderID kernel.UUID, status Status, deliveryDate *time.Time) (*Delivery, error) {
	return NewDelivery(id, orderID, status, deliveryDate)
}

// Validate checks that the delivery was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the identifier of the order being fulfilled.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// Status returns the current delivery status.
func (d *Delivery) Status() Status {
	return d.status
}

// DeliveryDate returns the delivery date, or nil while the parcel has not
// left the warehouse or the delivery failed.
func (d *Delivery) DeliveryDate() *time.Time {
	return d.deliveryDate
}

// ChangeStatus moves the delivery to a new status. A date must accompany
// statuses that require one and must be absent otherwise.
func (d *Delivery) ChangeStatus(newStatus Status, deliveryDate *time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}
	return d.setStatus(newStatus, deliveryDate)
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setStatus(status Status, deliveryDate *time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status.RequiresDeliveryDate() && deliveryDate == nil {
		return ErrDeliveryDateIsMissing
	}
	if !status.RequiresDeliveryDate() && deliveryDate != nil {
		return ErrDeliveryDateIsUnexpected
	}
	d.status = status
	d.deliveryDate = deliveryDate
	return nil
}
