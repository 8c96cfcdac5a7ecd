package order

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedItemType = errors.New("unsupported item type")
	ErrValidation          = errors.New("order validation failed")
	ErrRemoteRejection     = errors.New("order rejected by store")
	ErrCouponNotFound      = errors.New("coupon not in order")
	ErrOrderPlaced         = errors.New("order already placed")
)

// ValidationError names the document key that failed the local pre-submit check.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("order has invalid value for key %q", e.Field)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// IsValidation helps callers distinguish local rule violations from remote and transport failures.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// RejectionError is returned when an exchange answers with the failure status.
type RejectionError struct {
	Stage    string
	Response *Response
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s order failed: status %d", e.Stage, e.Response.Status)
}

func (e *RejectionError) Unwrap() error { return ErrRemoteRejection }
