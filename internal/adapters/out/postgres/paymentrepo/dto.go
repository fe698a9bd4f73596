// Package paymentrepo provides persistence for payment transactions.
package paymentrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionDTO represents the database structure for persisting payment
// transactions.
type TransactionDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID       `gorm:"type:uuid;index"`
	Amount          decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status          string          `gorm:"type:varchar(16)"`
	Method          string          `gorm:"type:varchar(16)"`
	TransactionDate time.Time
}

// TableName specifies the database table name for transaction entities.
func (TransactionDTO) TableName() string {
	return "transactions"
}

func fromDomain(transaction *payment.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:              transaction.ID().Bytes(),
		OrderID:         transaction.OrderID().Bytes(),
		Amount:          transaction.Amount().Decimal(),
		Status:          transaction.Status().String(),
		Method:          transaction.Method().String(),
		TransactionDate: transaction.TransactionDate(),
	}
}

func toDomain(dto TransactionDTO) (*payment.Transaction, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.MoneyFromDecimal(dto.Amount)
	if err != nil {
		return nil, err
	}

	status, err := payment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	method, err := payment.MethodFromString(dto.Method)
	if err != nil {
		return nil, err
	}

	return payment.NewTransaction(id, orderID, amount, status, method, dto.TransactionDate)
}
