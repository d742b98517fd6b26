package customer

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/customer-orders/internal/domain/customer"
)

type GetCustomerByIDInput struct {
	ID string
}

type GetCustomerByID interface {
	Execute(ctx context.Context, in GetCustomerByIDInput) (CustomerOutput, error)
}

type customerGetter interface {
	GetByID(ctx context.Context, id uint64) (*domain.Customer, error)
}

type getCustomerByID struct {
	repo customerGetter
}

func NewGetCustomerByID(repo customerGetter) GetCustomerByID {
	return &getCustomerByID{repo: repo}
}

func (uc *getCustomerByID) Execute(ctx context.Context, in GetCustomerByIDInput) (CustomerOutput, error) {
	id, ok := parseID(in.ID)
	if !ok {
		return CustomerOutput{}, ErrCustomerNotFound
	}

	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return CustomerOutput{}, ErrCustomerNotFound
		}
		return CustomerOutput{}, fmt.Errorf("%w: %v", ErrGetCustomerByID, err)
	}

	return toCustomerOutput(*c), nil
}
