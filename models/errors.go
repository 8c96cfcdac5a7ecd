package models

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is returned when a raw catalog record lacks a required key.
	ErrMissingField = errors.New("missing field")
	// ErrUnknownCode is returned when a code is not present in its collection.
	ErrUnknownCode = errors.New("unknown code")
	// ErrInvalidReference is returned when a product references a variant, topping or side
	// that the catalog does not define for its product type.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrToppingUnavailable is returned when ordering a product with a topping outside its available set.
	ErrToppingUnavailable = errors.New("topping not available")
	// ErrInvalidTopping is returned when a topping request names an unknown coverage or amount.
	ErrInvalidTopping = errors.New("invalid topping request")
)

type MissingFieldError struct {
	Entity string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s record: missing field %q", e.Entity, e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

type UnknownCodeError struct {
	Kind string
	Code string
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("unknown %s code %q", e.Kind, e.Code)
}

func (e *UnknownCodeError) Unwrap() error { return ErrUnknownCode }

// InvalidReferenceError names the dangling code and the product that references it.
type InvalidReferenceError struct {
	Product string
	Kind    string
	Code    string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("product %s references unknown %s %q", e.Product, e.Kind, e.Code)
}

func (e *InvalidReferenceError) Unwrap() error { return ErrInvalidReference }
