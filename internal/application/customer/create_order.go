package customer

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/customer-orders/internal/domain/customer"
)

type CreateOrderInput struct {
	CustomerID string
	Name       string
	Shipped    *bool
	Delivered  *bool
}

type CreateOrder interface {
	Execute(ctx context.Context, in CreateOrderInput) (OrderOutput, error)
}

type customerChecker interface {
	Exists(ctx context.Context, id uint64) (bool, error)
}

type orderCreator interface {
	Create(ctx context.Context, o domain.Order) (domain.Order, error)
}

type createOrder struct {
	customers customerChecker
	orders    orderCreator
}

func NewCreateOrder(customers customerChecker, orders orderCreator) CreateOrder {
	return &createOrder{customers: customers, orders: orders}
}

func (uc *createOrder) Execute(ctx context.Context, in CreateOrderInput) (OrderOutput, error) {
	customerID, ok := parseID(in.CustomerID)
	if !ok {
		return OrderOutput{}, ErrCustomerNotFound
	}

	exists, err := uc.customers.Exists(ctx, customerID)
	if err != nil {
		return OrderOutput{}, fmt.Errorf("%w: %v", ErrCreateOrder, err)
	}
	if !exists {
		return OrderOutput{}, ErrCustomerNotFound
	}

	order, err := domain.NewOrder(customerID, in.Name, in.Shipped, in.Delivered)
	if err != nil {
		return OrderOutput{}, err
	}

	saved, err := uc.orders.Create(ctx, order)
	if err != nil {
		// The customer can vanish between the existence check and the insert;
		// the foreign key rejects the row in that case.
		if errors.Is(err, domain.ErrConstraintViolation) {
			return OrderOutput{}, fmt.Errorf("%w: %v", ErrConstraintViolation, err)
		}
		return OrderOutput{}, fmt.Errorf("%w: %v", ErrCreateOrder, err)
	}

	return toOrderOutput(saved), nil
}
