package account

import "errors"

var (
	// ErrInvalidAmount is returned when a monetary amount is zero or negative where a positive one is required.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrBelowMinimumOpening is returned when a savings account would be funded below the minimum opening deposit.
	ErrBelowMinimumOpening = errors.New("savings account requires a minimum opening deposit of 1000")

	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrUnknownAccountType is returned when an account type name is not savings, investment or cheque.
	ErrUnknownAccountType = errors.New("unknown account type")

	// ErrMissingRequiredArgument is returned when a cheque account is opened without employer and company address.
	ErrMissingRequiredArgument = errors.New("employer and company address are required for a cheque account")

	// ErrMissingIdentity is returned when an account is built without a number or an owner.
	ErrMissingIdentity = errors.New("account number and owner are required")
)
