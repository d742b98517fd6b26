package echo

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mohammadpnp/customer-orders/internal/infrastructure/metrics"
	"go.uber.org/zap"
)

const unmatchedRoute = "unmatched"

// RequestLogger logs one line per request with its status and latency.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			req, res := c.Request(), c.Response()
			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.String("route", routeOf(c)),
				zap.Int("status", res.Status),
				zap.Duration("latency", time.Since(start)),
				zap.String("request_id", res.Header().Get(echo.HeaderXRequestID)),
			}

			switch {
			case res.Status >= 500:
				logger.Error("request", fields...)
			case res.Status >= 400:
				logger.Warn("request", fields...)
			default:
				logger.Info("request", fields...)
			}
			return nil
		}
	}
}

// Metrics feeds the Prometheus HTTP collectors.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			metrics.IncInFlight()
			defer metrics.DecInFlight()

			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			metrics.ObserveRequest(c.Request().Method, routeOf(c), c.Response().Status, time.Since(start))
			return nil
		}
	}
}

func routeOf(c echo.Context) string {
	if p := c.Path(); p != "" {
		return p
	}
	return unmatchedRoute
}
