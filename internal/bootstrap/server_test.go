package bootstrap_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/customer-orders/internal/application/customer"
	"github.com/mohammadpnp/customer-orders/internal/bootstrap"
	"github.com/mohammadpnp/customer-orders/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()

	gdb := testutil.NewSQLiteDB(t)
	return bootstrap.NewHTTPServer(gdb, bootstrap.ServerOptions{}), gdb
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestListCustomersReturnsEverySeededCustomer(t *testing.T) {
	e, gdb := newServer(t)
	for i := 1; i <= 15; i++ {
		testutil.InsertCustomer(t, gdb, fmt.Sprintf("Customer %d", i), fmt.Sprintf("%d Main St", i))
	}

	rec := do(e, http.MethodGet, "/api/v1/customers", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []app.CustomerOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 15)
	assert.Equal(t, "Customer 1", got[0].Name)
	assert.Equal(t, "15 Main St", got[14].Address)
}

func TestListCustomersEmpty(t *testing.T) {
	e, _ := newServer(t)

	rec := do(e, http.MethodGet, "/api/v1/customers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestShowCustomerIncludesOrders(t *testing.T) {
	e, gdb := newServer(t)
	c := testutil.InsertCustomer(t, gdb, "Arya Stark", "Winterfell")
	testutil.InsertOrder(t, gdb, c.ID, "Needle", true, true)

	rec := do(e, http.MethodGet, fmt.Sprintf("/api/v1/customers/%d", c.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got app.CustomerOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, c.ID, got.ID)
	assert.Equal(t, "Arya Stark", got.Name)
	assert.Equal(t, "Winterfell", got.Address)
	require.Len(t, got.Orders, 1)
	assert.Equal(t, "Needle", got.Orders[0].Name)
	assert.True(t, got.Orders[0].Delivered)
}

func TestShowMissingCustomerReturnsNotFoundMessage(t *testing.T) {
	e, gdb := newServer(t)
	for i := 0; i < 15; i++ {
		testutil.InsertCustomer(t, gdb, "Someone", "Somewhere")
	}

	rec := do(e, http.MethodGet, "/api/v1/customers/100", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Couldn't find customer with 'id'=100"}`, rec.Body.String())
}

func TestShowNonNumericCustomerIsNotFound(t *testing.T) {
	e, _ := newServer(t)

	rec := do(e, http.MethodGet, "/api/v1/customers/abc", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Couldn't find customer with 'id'=abc"}`, rec.Body.String())
}

func TestIDsBeyondSignedRangeAreNotFound(t *testing.T) {
	e, gdb := newServer(t)
	c := testutil.InsertCustomer(t, gdb, "Davos", "Dragonstone")
	const tooBig = "9223372036854775808"

	tests := []struct {
		name    string
		method  string
		path    string
		body    string
		message string
	}{
		{name: "show", method: http.MethodGet, path: "/api/v1/customers/" + tooBig},
		{name: "show max uint", method: http.MethodGet, path: "/api/v1/customers/18446744073709551615",
			message: "Couldn't find customer with 'id'=18446744073709551615"},
		{name: "list orders", method: http.MethodGet, path: "/api/v1/customers/" + tooBig + "/orders"},
		{name: "create order", method: http.MethodPost, path: "/api/v1/customers/" + tooBig + "/orders",
			body: `{"order":{"name":"Widget","shipped":true,"delivered":false}}`},
		{name: "delete customer", method: http.MethodDelete, path: "/api/v1/customers/" + tooBig},
		{name: "show order", method: http.MethodGet, path: fmt.Sprintf("/api/v1/customers/%d/orders/%s", c.ID, tooBig),
			message: "Couldn't find order with 'id'=" + tooBig},
		{name: "delete order", method: http.MethodDelete, path: fmt.Sprintf("/api/v1/customers/%d/orders/%s", c.ID, tooBig),
			message: "Couldn't find order with 'id'=" + tooBig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message := tt.message
			if message == "" {
				message = "Couldn't find customer with 'id'=" + tooBig
			}

			rec := do(e, tt.method, tt.path, tt.body)
			require.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"message":%q}`, message), rec.Body.String())
		})
	}
	assert.Zero(t, testutil.CountOrders(t, gdb))
}

func TestCreateOrderThenListShowsIt(t *testing.T) {
	e, gdb := newServer(t)
	c := testutil.InsertCustomer(t, gdb, "Jon Snow", "Castle Black")
	base := fmt.Sprintf("/api/v1/customers/%d/orders", c.ID)

	rec := do(e, http.MethodPost, base, `{"order":{"name":"Widget","shipped":false,"delivered":false}}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created app.OrderOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, c.ID, created.CustomerID)
	assert.Equal(t, "Widget", created.Name)
	assert.False(t, created.Shipped)
	assert.False(t, created.Delivered)

	rec = do(e, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []app.OrderOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, created, orders[0])

	rec = do(e, http.MethodGet, fmt.Sprintf("%s/%d", base, created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateOrderMissingFieldsIsRejected(t *testing.T) {
	e, gdb := newServer(t)
	c := testutil.InsertCustomer(t, gdb, "Sansa", "Winterfell")
	before := testutil.CountOrders(t, gdb)

	rec := do(e, http.MethodPost, fmt.Sprintf("/api/v1/customers/%d/orders", c.ID), `{"order":{}}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, "name")
	assert.Contains(t, body.Errors, "shipped")
	assert.Contains(t, body.Errors, "delivered")
	assert.Equal(t, before, testutil.CountOrders(t, gdb))
}

func TestCreateOrderNonBooleanFlagIsRejected(t *testing.T) {
	e, gdb := newServer(t)
	c := testutil.InsertCustomer(t, gdb, "Bran", "Winterfell")

	rec := do(e, http.MethodPost, fmt.Sprintf("/api/v1/customers/%d/orders", c.ID),
		`{"order":{"name":"Widget","shipped":"yes","delivered":false}}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Zero(t, testutil.CountOrders(t, gdb))
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	e, _ := newServer(t)

	rec := do(e, http.MethodPost, "/api/v1/customers/100/orders",
		`{"order":{"name":"Widget","shipped":true,"delivered":false}}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Couldn't find customer with 'id'=100"}`, rec.Body.String())
}

func TestCreateCustomerRoundTrip(t *testing.T) {
	e, _ := newServer(t)

	rec := do(e, http.MethodPost, "/api/v1/customers", `{"customer":{"name":"Tyrion","address":"Casterly Rock"}}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created app.CustomerOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotZero(t, created.ID)
	assert.Empty(t, created.Orders)

	rec = do(e, http.MethodGet, fmt.Sprintf("/api/v1/customers/%d", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodPost, "/api/v1/customers", `{"customer":{"name":"  "}}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDeleteCustomerRemovesItsOrders(t *testing.T) {
	e, gdb := newServer(t)
	doomed := testutil.InsertCustomer(t, gdb, "Ned", "Winterfell")
	kept := testutil.InsertCustomer(t, gdb, "Catelyn", "Riverrun")
	testutil.InsertOrder(t, gdb, doomed.ID, "Ice", true, true)
	testutil.InsertOrder(t, gdb, doomed.ID, "Cloak", false, false)
	testutil.InsertOrder(t, gdb, kept.ID, "Fish", false, false)

	rec := do(e, http.MethodDelete, fmt.Sprintf("/api/v1/customers/%d", doomed.ID), "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(1), testutil.CountOrders(t, gdb))

	rec = do(e, http.MethodGet, fmt.Sprintf("/api/v1/customers/%d", doomed.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(e, http.MethodDelete, fmt.Sprintf("/api/v1/customers/%d", doomed.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteOrderScopedToCustomer(t *testing.T) {
	e, gdb := newServer(t)
	owner := testutil.InsertCustomer(t, gdb, "Sam", "Oldtown")
	other := testutil.InsertCustomer(t, gdb, "Gilly", "Craster's Keep")
	o := testutil.InsertOrder(t, gdb, owner.ID, "Book", false, false)

	rec := do(e, http.MethodDelete, fmt.Sprintf("/api/v1/customers/%d/orders/%d", other.ID, o.ID), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, int64(1), testutil.CountOrders(t, gdb))

	rec = do(e, http.MethodDelete, fmt.Sprintf("/api/v1/customers/%d/orders/%d", owner.ID, o.ID), "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, testutil.CountOrders(t, gdb))
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	e, _ := newServer(t)

	rec := do(e, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	do(e, http.MethodGet, "/api/v1/customers", "")

	rec = do(e, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "customer_orders_http_requests_total"))
}

func TestResponsesCarryRequestID(t *testing.T) {
	e, _ := newServer(t)

	rec := do(e, http.MethodGet, "/api/v1/customers", "")
	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)
}
