package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/customer-orders/internal/application/customer"
	"github.com/mohammadpnp/customer-orders/internal/infrastructure/metrics"
	"go.uber.org/zap"
)

type CustomerUseCases struct {
	List   app.ListCustomers
	Get    app.GetCustomerByID
	Create app.CreateCustomer
	Delete app.DeleteCustomer
}

type CustomerHandler struct {
	useCases CustomerUseCases
	log      *zap.Logger
}

type createCustomerRequest struct {
	Customer struct {
		Name    string `json:"name"`
		Address string `json:"address"`
	} `json:"customer"`
}

func NewCustomerHandler(useCases CustomerUseCases, log *zap.Logger) *CustomerHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &CustomerHandler{useCases: useCases, log: log}
}

func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	out, err := h.useCases.List.Execute(c.Request().Context())
	if err != nil {
		return internalError(c, h.log, "failed to list customers", err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	id := c.Param("id")

	out, err := h.useCases.Get.Execute(c.Request().Context(), app.GetCustomerByIDInput{ID: id})
	if err != nil {
		if errors.Is(err, app.ErrCustomerNotFound) {
			return notFound(c, "customer", id)
		}
		return internalError(c, h.log, "failed to get customer", err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}

	out, err := h.useCases.Create.Execute(c.Request().Context(), app.CreateCustomerInput{
		Name:    req.Customer.Name,
		Address: req.Customer.Address,
	})
	if err != nil {
		if fields, ok := validationFields(err); ok {
			return unprocessable(c, fields)
		}
		return internalError(c, h.log, "failed to create customer", err)
	}

	metrics.RecordMutation("customer", "create")
	return c.JSON(http.StatusCreated, out)
}

func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	id := c.Param("id")

	if err := h.useCases.Delete.Execute(c.Request().Context(), app.DeleteCustomerInput{ID: id}); err != nil {
		if errors.Is(err, app.ErrCustomerNotFound) {
			return notFound(c, "customer", id)
		}
		return internalError(c, h.log, "failed to delete customer", err)
	}

	metrics.RecordMutation("customer", "delete")
	return c.NoContent(http.StatusNoContent)
}
