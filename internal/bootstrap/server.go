package bootstrap

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	app "github.com/mohammadpnp/customer-orders/internal/application/customer"
	"github.com/mohammadpnp/customer-orders/internal/infrastructure/metrics"
	"github.com/mohammadpnp/customer-orders/internal/infrastructure/repository"
	httpecho "github.com/mohammadpnp/customer-orders/internal/interfaces/http/echo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultBodyLimit = "1M"

type ServerOptions struct {
	Logger    *zap.Logger
	BodyLimit string
}

func NewHTTPServer(db *gorm.DB, opts ServerOptions) *echo.Echo {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	bodyLimit := opts.BodyLimit
	if bodyLimit == "" {
		bodyLimit = defaultBodyLimit
	}

	server := echo.New()
	server.HideBanner = true
	server.HidePort = true

	server.Use(middleware.Recover())
	server.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	server.Use(httpecho.Metrics())
	server.Use(httpecho.RequestLogger(logger))
	server.Use(middleware.BodyLimit(bodyLimit))

	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	customerHandler := httpecho.NewCustomerHandler(httpecho.CustomerUseCases{
		List:   app.NewListCustomers(customerRepo),
		Get:    app.NewGetCustomerByID(customerRepo),
		Create: app.NewCreateCustomer(customerRepo),
		Delete: app.NewDeleteCustomer(customerRepo),
	}, logger)
	orderHandler := httpecho.NewOrderHandler(httpecho.OrderUseCases{
		List:   app.NewListOrders(customerRepo, orderRepo),
		Get:    app.NewGetOrder(customerRepo, orderRepo),
		Create: app.NewCreateOrder(customerRepo, orderRepo),
		Delete: app.NewDeleteOrder(customerRepo, orderRepo),
	}, logger)

	httpecho.RegisterRoutes(server, customerHandler, orderHandler)

	server.GET("/healthz", func(c echo.Context) error {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request().Context())
		}
		if err != nil {
			logger.Warn("health check failed", zap.Error(err))
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	server.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	return server
}
