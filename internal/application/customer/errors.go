package customer

import "errors"

var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrListCustomers       = errors.New("failed to list customers")
	ErrGetCustomerByID     = errors.New("failed to get customer by id")
	ErrCreateCustomer      = errors.New("failed to create customer")
	ErrDeleteCustomer      = errors.New("failed to delete customer")
	ErrListOrders          = errors.New("failed to list orders")
	ErrGetOrder            = errors.New("failed to get order")
	ErrCreateOrder         = errors.New("failed to create order")
	ErrDeleteOrder         = errors.New("failed to delete order")
)
