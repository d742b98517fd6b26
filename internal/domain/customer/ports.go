package customer

import "context"

type CustomerRepository interface {
	List(ctx context.Context) ([]Customer, error)
	GetByID(ctx context.Context, id uint64) (*Customer, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	Create(ctx context.Context, c Customer) (Customer, error)
	// Delete removes the customer and every order referencing it atomically.
	Delete(ctx context.Context, id uint64) error
}

type OrderRepository interface {
	Create(ctx context.Context, o Order) (Order, error)
	GetByID(ctx context.Context, customerID, orderID uint64) (*Order, error)
	ListByCustomer(ctx context.Context, customerID uint64) ([]Order, error)
	Delete(ctx context.Context, customerID, orderID uint64) error
}
