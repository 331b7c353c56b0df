package order

import "errors"

var (
	// -- Validation & Input --
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidStatus = errors.New("invalid order status")

	// -- Resource State --
	ErrOrderNotFound = errors.New("order not found")

	// -- Database & Operation Failures --
	ErrFailedListOrders  = errors.New("failed to list orders")
	ErrFailedGetOrder    = errors.New("failed to get order")
	ErrFailedCreateOrder = errors.New("failed to create order")
	ErrFailedUpdateOrder = errors.New("failed to update order")
)
