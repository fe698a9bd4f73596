// Package guard provides a defensive-construction helper for value objects.
// Embedding a ConstructorGuard in a struct makes zero-value instances
// detectable, so commands and queries can refuse to operate on objects that
// bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by Validate when
// a nil error is passed as the validation error. This ensures validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created through
// their designated constructor functions. It works by maintaining an internal
// flag that is only set when the object is created through the proper
// constructor, so any zero-value struct fails validation.
//
// Example usage:
//
//	var ErrDiscountNotConstructed = errors.New("Discount must be created via NewDiscount")
//
//	type Discount struct {
//	    code    string
//	    percent decimal.Decimal
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewDiscount(code string, percent decimal.Decimal) (Discount, error) {
//	    if code == "" {
//	        return Discount{}, errors.New("code is required")
//	    }
//	    return Discount{
//	        code:    code,
//	        percent: percent,
//	        guard:   guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (d Discount) Validate() error {
//	    return d.guard.Validate(ErrDiscountNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. Call this in the constructor of domain objects so
// they can be distinguished from zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed through
// its designated constructor function.
//
// Returns:
//   - nil if the object was properly constructed
//   - validationError if the object was not constructed through its constructor
//   - ErrDefaultConstructorGuard if validationError is nil and object not constructed
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
