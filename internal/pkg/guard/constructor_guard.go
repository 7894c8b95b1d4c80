// Package guard provides ConstructorGuard, a small marker that lets value objects,
// entities, commands and queries detect whether they were built by their
// constructor or are zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when no
// specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records that an object was created through its constructor.
// Embed it in a struct, set it with NewConstructorGuard in the constructor and
// check it from the struct's Validate method:
//
//	var ErrLineItemNotConstructed = errors.New("LineItem must be created via NewLineItem")
//
//	type LineItem struct {
//	    quantity int
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewLineItem(quantity int) (LineItem, error) {
//	    if quantity < 1 {
//	        return LineItem{}, errors.New("quantity must be at least 1")
//	    }
//	    return LineItem{quantity: quantity, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (l LineItem) Validate() error {
//	    return l.guard.Validate(ErrLineItemNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
