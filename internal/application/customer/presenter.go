package customer

import domain "github.com/mohammadpnp/customer-orders/internal/domain/customer"

// CustomerOutput is the single wire shape for a customer on every endpoint.
type CustomerOutput struct {
	ID      uint64        `json:"id"`
	Name    string        `json:"name"`
	Address string        `json:"address"`
	Orders  []OrderOutput `json:"orders"`
}

type OrderOutput struct {
	ID         uint64 `json:"id"`
	CustomerID uint64 `json:"customer_id"`
	Name       string `json:"name"`
	Shipped    bool   `json:"shipped"`
	Delivered  bool   `json:"delivered"`
}

func toCustomerOutput(c domain.Customer) CustomerOutput {
	return CustomerOutput{
		ID:      c.ID,
		Name:    c.Name,
		Address: c.Address,
		Orders:  toOrderOutputs(c.Orders),
	}
}

func toOrderOutput(o domain.Order) OrderOutput {
	return OrderOutput{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Name:       o.Name,
		Shipped:    o.Shipped,
		Delivered:  o.Delivered,
	}
}

func toOrderOutputs(orders []domain.Order) []OrderOutput {
	out := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderOutput(o))
	}
	return out
}
