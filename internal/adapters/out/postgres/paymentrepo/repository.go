package paymentrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/payment"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTransactionRepository implements TransactionRepository using GORM.
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GORM transaction repository.
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// Add saves a new transaction to the database.
func (r *GormTransactionRepository) Add(ctx context.Context, transaction *payment.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return err
	}

	dto := fromDomain(transaction)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByOrderID retrieves the transaction for an order.
func (r *GormTransactionRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Transaction, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto TransactionDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transaction for order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
