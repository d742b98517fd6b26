package customer

import (
	"context"
	"fmt"

	domain "github.com/mohammadpnp/customer-orders/internal/domain/customer"
)

type ListOrdersInput struct {
	CustomerID string
}

type ListOrders interface {
	Execute(ctx context.Context, in ListOrdersInput) ([]OrderOutput, error)
}

type orderLister interface {
	ListByCustomer(ctx context.Context, customerID uint64) ([]domain.Order, error)
}

type listOrders struct {
	customers customerChecker
	orders    orderLister
}

func NewListOrders(customers customerChecker, orders orderLister) ListOrders {
	return &listOrders{customers: customers, orders: orders}
}

func (uc *listOrders) Execute(ctx context.Context, in ListOrdersInput) ([]OrderOutput, error) {
	customerID, ok := parseID(in.CustomerID)
	if !ok {
		return nil, ErrCustomerNotFound
	}

	exists, err := uc.customers.Exists(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListOrders, err)
	}
	if !exists {
		return nil, ErrCustomerNotFound
	}

	orders, err := uc.orders.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListOrders, err)
	}
	return toOrderOutputs(orders), nil
}
