package shipment

import (
	"storefront/internal/pkg/errs"
)

// Status represents the fulfillment state of a delivery.
type Status int

const (
	// Unknown is the zero value and is never valid.
	Unknown Status = iota
	// Preparing means the parcel has not left the warehouse yet.
	Preparing
	// Shipped means the parcel was handed to the carrier.
	Shipped
	// InTransit means the parcel is on its way to the customer.
	InTransit
	// Delivered means the parcel reached the customer.
	Delivered
	// Failed means the delivery attempt did not succeed.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Preparing: "Preparing",
		Shipped:   "Shipped",
		InTransit: "In Transit",
		Delivered: "Delivered",
		Failed:    "Failed",
	}
}

func getValidStatusStrings() map[string]Status {
	return map[string]Status{
		"Preparing":  Preparing,
		"Shipped":    Shipped,
		"In Transit": InTransit,
		"Delivered":  Delivered,
		"Failed":     Failed,
	}
}

// StatusFromString parses a delivery status from its storage representation.
func StatusFromString(value string) (Status, error) {
	if status, ok := getValidStatusStrings()[value]; ok {
		return status, nil
	}
	return Unknown, errs.NewValueIsInvalidError("delivery status")
}

// Validate reports whether the status is one of the known values.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidError("delivery status")
	}
	return nil
}

// RequiresDeliveryDate reports whether a delivery in this status carries
// a delivery date.
func (s Status) RequiresDeliveryDate() bool {
	return s == Shipped || s == InTransit || s == Delivered
}

func (s Status) String() string {
	if value, ok := getStatusStrings()[s]; ok {
		return value
	}
	return "Unknown"
}
