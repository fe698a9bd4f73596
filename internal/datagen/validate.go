package datagen

import (
	"fmt"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/payment"
	"storefront/internal/core/domain/model/shipment"
)

// ValidateDerived checks the derivation rules that the database schema does
// not enforce. Generated records that fail these checks are never written.
func ValidateDerived(ord *order.Order, delivery *shipment.Delivery, transaction *payment.Transaction) error {
	if err := ord.Validate(); err != nil {
		return err
	}

	history := ord.History()
	if len(history) == 0 {
		return fmt.Errorf("order %s has no status history", ord.ID())
	}
	for _, record := range history {
		if record.OccurredAt().Before(ord.OrderDate()) {
			return fmt.Errorf("order %s has a history record before the order date", ord.ID())
		}
	}
	if history[len(history)-1].Status() != ord.Status() {
		return fmt.Errorf("order %s status %s does not match its most recent history record",
			ord.ID(), ord.Status())
	}

	if delivery != nil {
		if err := validateDelivery(ord, delivery); err != nil {
			return err
		}
	}
	if transaction != nil {
		if err := validateTransaction(ord, transaction); err != nil {
			return err
		}
	}

	return nil
}

func validateDelivery(ord *order.Order, delivery *shipment.Delivery) error {
	if err := delivery.Validate(); err != nil {
		return err
	}
	if !delivery.OrderID().IsEqual(ord.ID()) {
		return fmt.Errorf("delivery %s does not reference order %s", delivery.ID(), ord.ID())
	}

	hasDate := delivery.DeliveryDate() != nil
	if hasDate != delivery.Status().RequiresDeliveryDate() {
		return fmt.Errorf("delivery %s date presence does not match status %s",
			delivery.ID(), delivery.Status())
	}
	if hasDate && delivery.DeliveryDate().Before(ord.OrderDate()) {
		return fmt.Errorf("delivery %s is dated before order %s was placed", delivery.ID(), ord.ID())
	}

	return nil
}

func validateTransaction(ord *order.Order, transaction *payment.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return err
	}
	if !transaction.OrderID().IsEqual(ord.ID()) {
		return fmt.Errorf("transaction %s does not reference order %s", transaction.ID(), ord.ID())
	}
	if !transaction.Amount().IsEqual(ord.TotalAmount()) {
		return fmt.Errorf("transaction %s amount %s does not mirror order total %s",
			transaction.ID(), transaction.Amount(), ord.TotalAmount())
	}
	if !transaction.TransactionDate().Equal(ord.OrderDate()) {
		return fmt.Errorf("transaction %s is not dated at the order date", transaction.ID())
	}

	refunded := transaction.Status() == payment.Refunded
	if refunded != (ord.Status() == order.Cancelled) {
		return fmt.Errorf("transaction %s status %s does not match order status %s",
			transaction.ID(), transaction.Status(), ord.Status())
	}

	return nil
}
