package payment

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// ErrTransactionIsNotConstructed indicates usage of a Transaction that was not built via a constructor.
var ErrTransactionIsNotConstructed = errors.New("Transaction must be created via NewTransaction constructor")

// Transaction records the payment for a single order.
type Transaction struct {
	id kernel.UUID

	// orderID is a weak reference to the paid order
	orderID kernel.UUID

	amount kernel.Money

	status Status

	method Method

	transactionDate time.Time

	isConstructed bool
}

// NewTransaction creates a payment transaction from stored or derived values.
func NewTransaction(
	id kernel.UUID,
	orderID kernel.UUID,
	amount kernel.Money,
	status Status,
	method Method,
	transactionDate time.Time,
) (*Transaction, error) {
	transaction := &Transaction{
		isConstructed: true,
	}

	err := errors.Join(
		transaction.setID(id),
		transaction.setOrderID(orderID),
		transaction.setAmount(amount),
		transaction.setStatus(status),
		transaction.setMethod(method),
		transaction.setTransactionDate(transactionDate),
	)
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

// DeriveFromOrder builds the transaction an order implies: the amount equals
// the order total, the date equals the order date, and the status is Refunded
// when the order was cancelled and Completed otherwise.
func DeriveFromOrder(id kernel.UUID, ord *order.Order, method Method) (*Transaction, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}

	status := Completed
	if ord.Status().IsTerminalForPayment() {
		status = Refunded
	}

	return NewTransaction(id, ord.ID(), ord.TotalAmount(), status, method, ord.OrderDate())
}

// Validate checks that the transaction was properly constructed.
func (t *Transaction) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransactionIsNotConstructed
	}
	return nil
}

// ID returns the transaction identifier.
func (t *Transaction) ID() kernel.UUID {
	return t.id
}

// OrderID returns the identifier of the paid order.
func (t *Transaction) OrderID() kernel.UUID {
	return t.orderID
}

// Amount returns the paid amount.
func (t *Transaction) Amount() kernel.Money {
	return t.amount
}

// Status returns the settlement status.
func (t *Transaction) Status() Status {
	return t.status
}

// Method returns the payment method.
func (t *Transaction) Method() Method {
	return t.method
}

// TransactionDate returns when the payment was made.
func (t *Transaction) TransactionDate() time.Time {
	return t.transactionDate
}

func (t *Transaction) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Transaction) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	t.orderID = orderID
	return nil
}

func (t *Transaction) setAmount(amount kernel.Money) error {
	t.amount = amount
	return nil
}

func (t *Transaction) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	t.status = status
	return nil
}

func (t *Transaction) setMethod(method Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	t.method = method
	return nil
}

func (t *Transaction) setTransactionDate(transactionDate time.Time) error {
	if transactionDate.IsZero() {
		return errs.NewValueIsRequiredError("transactionDate")
	}
	t.transactionDate = transactionDate
	return nil
}
