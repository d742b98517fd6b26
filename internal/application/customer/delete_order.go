package customer

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/customer-orders/internal/domain/customer"
)

type DeleteOrderInput struct {
	CustomerID string
	OrderID    string
}

type DeleteOrder interface {
	Execute(ctx context.Context, in DeleteOrderInput) error
}

type orderDeleter interface {
	Delete(ctx context.Context, customerID, orderID uint64) error
}

type deleteOrder struct {
	customers customerChecker
	orders    orderDeleter
}

func NewDeleteOrder(customers customerChecker, orders orderDeleter) DeleteOrder {
	return &deleteOrder{customers: customers, orders: orders}
}

func (uc *deleteOrder) Execute(ctx context.Context, in DeleteOrderInput) error {
	customerID, ok := parseID(in.CustomerID)
	if !ok {
		return ErrCustomerNotFound
	}

	exists, err := uc.customers.Exists(ctx, customerID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteOrder, err)
	}
	if !exists {
		return ErrCustomerNotFound
	}

	orderID, ok := parseID(in.OrderID)
	if !ok {
		return ErrOrderNotFound
	}

	if err := uc.orders.Delete(ctx, customerID, orderID); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("%w: %v", ErrDeleteOrder, err)
	}
	return nil
}
