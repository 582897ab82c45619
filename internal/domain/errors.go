package domain

import "errors"

// Error kinds shared by the lifecycle services. Services wrap these with
// fmt.Errorf("%w: ...") so handlers can map them with errors.Is.
var (
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("not found")
	ErrInvalidState        = errors.New("invalid state transition")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrReference           = errors.New("unresolved reference")
)
