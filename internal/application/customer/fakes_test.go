package customer_test

import (
	"context"

	domain "github.com/mohammadpnp/customer-orders/internal/domain/customer"
)

type fakeCustomerRepo struct {
	customers map[uint64]domain.Customer
	order     []uint64
	nextID    uint64
	returnErr error
	deleted   []uint64
}

func newFakeCustomerRepo(customers ...domain.Customer) *fakeCustomerRepo {
	f := &fakeCustomerRepo{customers: make(map[uint64]domain.Customer)}
	for _, c := range customers {
		f.customers[c.ID] = c
		f.order = append(f.order, c.ID)
		if c.ID > f.nextID {
			f.nextID = c.ID
		}
	}
	return f
}

func (f *fakeCustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	if f.returnErr != nil {
		return nil, f.returnErr
	}
	out := make([]domain.Customer, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.customers[id])
	}
	return out, nil
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id uint64) (*domain.Customer, error) {
	if f.returnErr != nil {
		return nil, f.returnErr
	}
	c, ok := f.customers[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return &c, nil
}

func (f *fakeCustomerRepo) Exists(ctx context.Context, id uint64) (bool, error) {
	if f.returnErr != nil {
		return false, f.returnErr
	}
	_, ok := f.customers[id]
	return ok, nil
}

func (f *fakeCustomerRepo) Create(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	if f.returnErr != nil {
		return domain.Customer{}, f.returnErr
	}
	f.nextID++
	c.ID = f.nextID
	f.customers[c.ID] = c
	f.order = append(f.order, c.ID)
	return c, nil
}

func (f *fakeCustomerRepo) Delete(ctx context.Context, id uint64) error {
	if f.returnErr != nil {
		return f.returnErr
	}
	if _, ok := f.customers[id]; !ok {
		return domain.ErrCustomerNotFound
	}
	delete(f.customers, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeOrderRepo struct {
	orders    []domain.Order
	createErr error
	returnErr error
	created   int
}

func (f *fakeOrderRepo) Create(ctx context.Context, o domain.Order) (domain.Order, error) {
	if f.createErr != nil {
		return domain.Order{}, f.createErr
	}
	f.created++
	o.ID = uint64(len(f.orders) + 1)
	f.orders = append(f.orders, o)
	return o, nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, customerID, orderID uint64) (*domain.Order, error) {
	if f.returnErr != nil {
		return nil, f.returnErr
	}
	for _, o := range f.orders {
		if o.ID == orderID && o.CustomerID == customerID {
			return &o, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (f *fakeOrderRepo) ListByCustomer(ctx context.Context, customerID uint64) ([]domain.Order, error) {
	if f.returnErr != nil {
		return nil, f.returnErr
	}
	var out []domain.Order
	for _, o := range f.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, customerID, orderID uint64) error {
	if f.returnErr != nil {
		return f.returnErr
	}
	for i, o := range f.orders {
		if o.ID == orderID && o.CustomerID == customerID {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return domain.ErrOrderNotFound
}

func boolPtr(v bool) *bool { return &v }
