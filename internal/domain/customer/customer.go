package customer

import "strings"

type Customer struct {
	ID      uint64
	Name    string
	Address string
	Orders  []Order
}

// NewCustomer validates the required fields. The returned Customer has no ID
// until a repository persists it.
func NewCustomer(name, address string) (Customer, error) {
	verr := &ValidationError{}
	if strings.TrimSpace(name) == "" {
		verr.Add("name", msgBlank)
	}
	if strings.TrimSpace(address) == "" {
		verr.Add("address", msgBlank)
	}
	if !verr.Empty() {
		return Customer{}, verr
	}

	return Customer{
		Name:    name,
		Address: address,
	}, nil
}
