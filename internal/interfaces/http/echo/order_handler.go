package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/customer-orders/internal/application/customer"
	"github.com/mohammadpnp/customer-orders/internal/infrastructure/metrics"
	"go.uber.org/zap"
)

type OrderUseCases struct {
	List   app.ListOrders
	Get    app.GetOrder
	Create app.CreateOrder
	Delete app.DeleteOrder
}

type OrderHandler struct {
	useCases OrderUseCases
	log      *zap.Logger
}

// shipped and delivered are pointers so an absent key stays distinguishable
// from an explicit false.
type createOrderRequest struct {
	Order struct {
		Name      string `json:"name"`
		Shipped   *bool  `json:"shipped"`
		Delivered *bool  `json:"delivered"`
	} `json:"order"`
}

func NewOrderHandler(useCases OrderUseCases, log *zap.Logger) *OrderHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderHandler{useCases: useCases, log: log}
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	customerID := c.Param("id")

	out, err := h.useCases.List.Execute(c.Request().Context(), app.ListOrdersInput{CustomerID: customerID})
	if err != nil {
		if errors.Is(err, app.ErrCustomerNotFound) {
			return notFound(c, "customer", customerID)
		}
		return internalError(c, h.log, "failed to list orders", err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	customerID, orderID := c.Param("id"), c.Param("order_id")

	out, err := h.useCases.Get.Execute(c.Request().Context(), app.GetOrderInput{
		CustomerID: customerID,
		OrderID:    orderID,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrCustomerNotFound):
			return notFound(c, "customer", customerID)
		case errors.Is(err, app.ErrOrderNotFound):
			return notFound(c, "order", orderID)
		}
		return internalError(c, h.log, "failed to get order", err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	customerID := c.Param("id")

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}

	out, err := h.useCases.Create.Execute(c.Request().Context(), app.CreateOrderInput{
		CustomerID: customerID,
		Name:       req.Order.Name,
		Shipped:    req.Order.Shipped,
		Delivered:  req.Order.Delivered,
	})
	if err != nil {
		if fields, ok := validationFields(err); ok {
			return unprocessable(c, fields)
		}
		switch {
		case errors.Is(err, app.ErrCustomerNotFound):
			return notFound(c, "customer", customerID)
		case errors.Is(err, app.ErrConstraintViolation):
			h.log.Warn("order rejected by storage constraint", zap.String("customer_id", customerID), zap.Error(err))
			return c.JSON(http.StatusConflict, errorBody{Message: "order conflicts with the current state of customer " + customerID})
		}
		return internalError(c, h.log, "failed to create order", err)
	}

	metrics.RecordMutation("order", "create")
	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	customerID, orderID := c.Param("id"), c.Param("order_id")

	err := h.useCases.Delete.Execute(c.Request().Context(), app.DeleteOrderInput{
		CustomerID: customerID,
		OrderID:    orderID,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrCustomerNotFound):
			return notFound(c, "customer", customerID)
		case errors.Is(err, app.ErrOrderNotFound):
			return notFound(c, "order", orderID)
		}
		return internalError(c, h.log, "failed to delete order", err)
	}

	metrics.RecordMutation("order", "delete")
	return c.NoContent(http.StatusNoContent)
}
