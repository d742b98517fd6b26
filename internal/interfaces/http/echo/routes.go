package echo

import e "github.com/labstack/echo/v4"

func RegisterRoutes(server *e.Echo, customerHandler *CustomerHandler, orderHandler *OrderHandler) {
	v1 := server.Group("/api/v1")

	if customerHandler != nil {
		v1.GET("/customers", customerHandler.ListCustomers)
		v1.POST("/customers", customerHandler.CreateCustomer)
		v1.GET("/customers/:id", customerHandler.GetCustomer)
		v1.DELETE("/customers/:id", customerHandler.DeleteCustomer)
	}

	if orderHandler != nil {
		v1.GET("/customers/:id/orders", orderHandler.ListOrders)
		v1.POST("/customers/:id/orders", orderHandler.CreateOrder)
		v1.GET("/customers/:id/orders/:order_id", orderHandler.GetOrder)
		v1.DELETE("/customers/:id/orders/:order_id", orderHandler.DeleteOrder)
	}
}
