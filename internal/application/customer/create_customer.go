package customer

import (
	"context"
	"fmt"

	domain "github.com/mohammadpnp/customer-orders/internal/domain/customer"
)

type CreateCustomerInput struct {
	Name    string
	Address string
}

type CreateCustomer interface {
	Execute(ctx context.Context, in CreateCustomerInput) (CustomerOutput, error)
}

type customerCreator interface {
	Create(ctx context.Context, c domain.Customer) (domain.Customer, error)
}

type createCustomer struct {
	repo customerCreator
}

func NewCreateCustomer(repo customerCreator) CreateCustomer {
	return &createCustomer{repo: repo}
}

// Execute returns a *domain.ValidationError untouched so callers can report
// the offending fields.
func (uc *createCustomer) Execute(ctx context.Context, in CreateCustomerInput) (CustomerOutput, error) {
	c, err := domain.NewCustomer(in.Name, in.Address)
	if err != nil {
		return CustomerOutput{}, err
	}

	saved, err := uc.repo.Create(ctx, c)
	if err != nil {
		return CustomerOutput{}, fmt.Errorf("%w: %v", ErrCreateCustomer, err)
	}

	return toCustomerOutput(saved), nil
}
