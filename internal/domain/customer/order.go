package customer

import "strings"

type Order struct {
	ID         uint64
	CustomerID uint64
	Name       string
	Shipped    bool
	Delivered  bool
}

// NewOrder requires shipped and delivered to be explicitly provided; a nil
// pointer means the value was absent, false is a present value.
func NewOrder(customerID uint64, name string, shipped, delivered *bool) (Order, error) {
	verr := &ValidationError{}
	if customerID == 0 {
		verr.Add("customer", "must exist")
	}
	if strings.TrimSpace(name) == "" {
		verr.Add("name", msgBlank)
	}
	if shipped == nil {
		verr.Add("shipped", msgBlank)
	}
	if delivered == nil {
		verr.Add("delivered", msgBlank)
	}
	if !verr.Empty() {
		return Order{}, verr
	}

	return Order{
		CustomerID: customerID,
		Name:       name,
		Shipped:    *shipped,
		Delivered:  *delivered,
	}, nil
}
