package bank

import "errors"

var (
	// ErrCustomerNotFound is returned when a customer ID does not match any customer.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrDuplicateCustomer is returned when restoring a customer whose ID is already taken.
	ErrDuplicateCustomer = errors.New("customer already exists")

	// ErrMalformedCustomerID is returned when an ID is not of the form IND-<n> or CMP-<n>.
	ErrMalformedCustomerID = errors.New("malformed customer id")
)
