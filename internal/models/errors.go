package models

import (
	"errors"
	"fmt"
)

// Not-found sentinels, mapped to 404 at the API layer.
var (
	ErrMaterialNotFound = errors.New("Material not found")
	ErrSupplierNotFound = errors.New("Supplier not found")
)

// ConstraintKind identifies which storage-level rule was violated.
type ConstraintKind string

const (
	DuplicateCode ConstraintKind = "duplicate_code"
	DuplicateName ConstraintKind = "duplicate_name"
	PriceTooLow   ConstraintKind = "price_too_low"
)

// Fixed user-facing messages per constraint kind. These are stable API
// strings; clients match on them.
const (
	MsgDuplicateCode = "Material code already exists. Please use a unique material code."
	MsgPriceTooLow   = "Material buy price must be at least 100. Please enter a valid price (≥ 100)."
	MsgDuplicateName = "Supplier name already exists. Please use a unique supplier name."
)

// ValidationError is a domain-rule failure on a single field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConstraintError is a uniqueness or numeric-range rule enforced by the
// storage layer, translated into one of the fixed messages above.
type ConstraintError struct {
	Kind    ConstraintKind
	Message string
}

func (e *ConstraintError) Error() string { return e.Message }

func NewConstraintError(kind ConstraintKind) *ConstraintError {
	msg := "Data integrity constraint violation. Please check your input values."
	switch kind {
	case DuplicateCode:
		msg = MsgDuplicateCode
	case DuplicateName:
		msg = MsgDuplicateName
	case PriceTooLow:
		msg = MsgPriceTooLow
	}
	return &ConstraintError{Kind: kind, Message: msg}
}

// IsDomainError reports whether err is a validation or constraint failure,
// as opposed to an unexpected storage error.
func IsDomainError(err error) bool {
	var ve *ValidationError
	var ce *ConstraintError
	return errors.As(err, &ve) || errors.As(err, &ce)
}
