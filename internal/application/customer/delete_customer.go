package customer

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/customer-orders/internal/domain/customer"
)

type DeleteCustomerInput struct {
	ID string
}

type DeleteCustomer interface {
	Execute(ctx context.Context, in DeleteCustomerInput) error
}

type customerDeleter interface {
	Delete(ctx context.Context, id uint64) error
}

type deleteCustomer struct {
	repo customerDeleter
}

func NewDeleteCustomer(repo customerDeleter) DeleteCustomer {
	return &deleteCustomer{repo: repo}
}

func (uc *deleteCustomer) Execute(ctx context.Context, in DeleteCustomerInput) error {
	id, ok := parseID(in.ID)
	if !ok {
		return ErrCustomerNotFound
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("%w: %v", ErrDeleteCustomer, err)
	}
	return nil
}
