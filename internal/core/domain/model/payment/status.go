package payment

import (
	"storefront/internal/pkg/errs"
)

// Status represents the settlement state of a transaction.
type Status int

const (
	// StatusUnknown is the zero value and is never valid.
	StatusUnknown Status = iota
	// Completed means the payment settled successfully.
	Completed
	// Refunded means the payment was returned after the order was cancelled.
	Refunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Completed:     "Completed",
		Refunded:      "Refunded",
	}
}

func getValidStatusStrings() map[string]Status {
	return map[string]Status{
		"Completed": Completed,
		"Refunded":  Refunded,
	}
}

// StatusFromString parses a transaction status from its storage representation.
func StatusFromString(value string) (Status, error) {
	if status, ok := getValidStatusStrings()[value]; ok {
		return status, nil
	}
	return StatusUnknown, errs.NewValueIsInvalidError("transaction status")
}

// Validate reports whether the status is one of the known values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s.String()]; !ok {
		return errs.NewValueIsInvalidError("transaction status")
	}
	return nil
}

func (s Status) String() string {
	if value, ok := getStatusStrings()[s]; ok {
		return value
	}
	return "Unknown"
}
