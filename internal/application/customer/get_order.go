package customer

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/customer-orders/internal/domain/customer"
)

type GetOrderInput struct {
	CustomerID string
	OrderID    string
}

type GetOrder interface {
	Execute(ctx context.Context, in GetOrderInput) (OrderOutput, error)
}

type orderGetter interface {
	GetByID(ctx context.Context, customerID, orderID uint64) (*domain.Order, error)
}

type getOrder struct {
	customers customerChecker
	orders    orderGetter
}

func NewGetOrder(customers customerChecker, orders orderGetter) GetOrder {
	return &getOrder{customers: customers, orders: orders}
}

func (uc *getOrder) Execute(ctx context.Context, in GetOrderInput) (OrderOutput, error) {
	customerID, ok := parseID(in.CustomerID)
	if !ok {
		return OrderOutput{}, ErrCustomerNotFound
	}

	exists, err := uc.customers.Exists(ctx, customerID)
	if err != nil {
		return OrderOutput{}, fmt.Errorf("%w: %v", ErrGetOrder, err)
	}
	if !exists {
		return OrderOutput{}, ErrCustomerNotFound
	}

	orderID, ok := parseID(in.OrderID)
	if !ok {
		return OrderOutput{}, ErrOrderNotFound
	}

	o, err := uc.orders.GetByID(ctx, customerID, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return OrderOutput{}, ErrOrderNotFound
		}
		return OrderOutput{}, fmt.Errorf("%w: %v", ErrGetOrder, err)
	}
	return toOrderOutput(*o), nil
}
