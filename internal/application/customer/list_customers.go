package customer

import (
	"context"
	"fmt"

	domain "github.com/mohammadpnp/customer-orders/internal/domain/customer"
)

type ListCustomers interface {
	Execute(ctx context.Context) ([]CustomerOutput, error)
}

type customerLister interface {
	List(ctx context.Context) ([]domain.Customer, error)
}

type listCustomers struct {
	repo customerLister
}

func NewListCustomers(repo customerLister) ListCustomers {
	return &listCustomers{repo: repo}
}

func (uc *listCustomers) Execute(ctx context.Context) ([]CustomerOutput, error) {
	customers, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListCustomers, err)
	}

	out := make([]CustomerOutput, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerOutput(c))
	}
	return out, nil
}
