package models

import "errors"

var (
	ErrConflictData        = errors.New("data conflicts with existing data")
	ErrDataNotFound        = errors.New("data not found")
	ErrInvalidCredentials  = errors.New("invalid login or password")
	ErrInternalError       = errors.New("internal error")
	ErrInvalidTransition   = errors.New("order status transition is not allowed")
	ErrInvalidCart         = errors.New("cart is empty or inconsistent")
	ErrRestrictedAccount   = errors.New("customer account is restricted")
	ErrValidation          = errors.New("required field is missing or invalid")
	ErrExternalService     = errors.New("external service call failed")
	ErrInsufficientBalance = errors.New("insufficient loyalty point balance")
)
