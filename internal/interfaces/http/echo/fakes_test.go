package echo_test

import (
	"context"

	app "github.com/mohammadpnp/customer-orders/internal/application/customer"
)

type fakeListCustomers struct {
	out []app.CustomerOutput
	err error
}

func (f *fakeListCustomers) Execute(ctx context.Context) ([]app.CustomerOutput, error) {
	return f.out, f.err
}

type fakeGetCustomer struct {
	out   app.CustomerOutput
	err   error
	gotID string
}

func (f *fakeGetCustomer) Execute(ctx context.Context, in app.GetCustomerByIDInput) (app.CustomerOutput, error) {
	f.gotID = in.ID
	if f.err != nil {
		return app.CustomerOutput{}, f.err
	}
	return f.out, nil
}

type fakeCreateCustomer struct {
	out app.CustomerOutput
	err error
	got app.CreateCustomerInput
}

func (f *fakeCreateCustomer) Execute(ctx context.Context, in app.CreateCustomerInput) (app.CustomerOutput, error) {
	f.got = in
	if f.err != nil {
		return app.CustomerOutput{}, f.err
	}
	return f.out, nil
}

type fakeDeleteCustomer struct {
	err   error
	gotID string
}

func (f *fakeDeleteCustomer) Execute(ctx context.Context, in app.DeleteCustomerInput) error {
	f.gotID = in.ID
	return f.err
}

type fakeListOrders struct {
	out []app.OrderOutput
	err error
}

func (f *fakeListOrders) Execute(ctx context.Context, in app.ListOrdersInput) ([]app.OrderOutput, error) {
	return f.out, f.err
}

type fakeGetOrder struct {
	out app.OrderOutput
	err error
	got app.GetOrderInput
}

func (f *fakeGetOrder) Execute(ctx context.Context, in app.GetOrderInput) (app.OrderOutput, error) {
	f.got = in
	if f.err != nil {
		return app.OrderOutput{}, f.err
	}
	return f.out, nil
}

type fakeCreateOrder struct {
	out    app.OrderOutput
	err    error
	got    app.CreateOrderInput
	called bool
}

func (f *fakeCreateOrder) Execute(ctx context.Context, in app.CreateOrderInput) (app.OrderOutput, error) {
	f.called = true
	f.got = in
	if f.err != nil {
		return app.OrderOutput{}, f.err
	}
	return f.out, nil
}

type fakeDeleteOrder struct {
	err error
	got app.DeleteOrderInput
}

func (f *fakeDeleteOrder) Execute(ctx context.Context, in app.DeleteOrderInput) error {
	f.got = in
	return f.err
}
