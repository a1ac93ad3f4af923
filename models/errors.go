package models

import "errors"

// Domain errors raised by the model layer. Handlers map these to HTTP
// status codes; messages here are internal and never sent to clients.
var (
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrStatusFinal        = errors.New("order status can no longer change")
)
