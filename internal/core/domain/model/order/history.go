package order

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrStatusRecordIsNotConstructed is returned when a StatusRecord was not
// created through the NewStatusRecord factory function.
var ErrStatusRecordIsNotConstructed = errors.New("StatusRecord must be created via NewStatusRecord constructor")

// StatusRecord is one append-only entry of an order's status history.
// Records are never updated or deleted; ordered by timestamp they
// reconstruct the order's full status progression, and the most recent
// record always equals the order's current status.
type StatusRecord struct {
	id         kernel.UUID
	status     Status
	occurredAt time.Time

	isConstructed bool
}

// NewStatusRecord creates a history entry for the given status at the given
// time. The timestamp must not be the zero time; the aggregate additionally
// enforces that it is not earlier than the order date.
func NewStatusRecord(id kernel.UUID, status Status, occurredAt time.Time) (StatusRecord, error) {
	if err := id.Validate(); err != nil {
		return StatusRecord{}, err
	}
	if err := status.Validate(); err != nil {
		return StatusRecord{}, err
	}
	if occurredAt.IsZero() {
		return StatusRecord{}, errs.NewValueIsRequiredError("occurredAt")
	}

	return StatusRecord{
		id:            id,
		status:        status,
		occurredAt:    occurredAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the record was created via NewStatusRecord.
func (r StatusRecord) Validate() error {
	if !r.isConstructed {
		return ErrStatusRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (r StatusRecord) ID() kernel.UUID {
	return r.id
}

// Status returns the status the order entered.
func (r StatusRecord) Status() Status {
	return r.status
}

// OccurredAt returns when the status change happened.
func (r StatusRecord) OccurredAt() time.Time {
	return r.occurredAt
}
