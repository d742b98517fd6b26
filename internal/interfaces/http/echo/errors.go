package echo

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/labstack/echo/v4"
	domain "github.com/mohammadpnp/customer-orders/internal/domain/customer"
	"go.uber.org/zap"
)

const (
	msgValidationFailed = "validation failed"
	msgInvalidBody      = "invalid request body"
	msgInternalError    = "internal server error"
	msgNotIncluded      = "is not included in the list"
	msgInvalid          = "is invalid"
)

type errorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func notFound(c echo.Context, resource, rawID string) error {
	return c.JSON(http.StatusNotFound, errorBody{
		Message: fmt.Sprintf("Couldn't find %s with 'id'=%s", resource, rawID),
	})
}

func unprocessable(c echo.Context, fields map[string][]string) error {
	return c.JSON(http.StatusUnprocessableEntity, errorBody{
		Message: msgValidationFailed,
		Errors:  fields,
	})
}

func internalError(c echo.Context, logger *zap.Logger, msg string, err error) error {
	logger.Error(msg,
		zap.Error(err),
		zap.String("method", c.Request().Method),
		zap.String("path", c.Request().URL.Path),
	)
	return c.JSON(http.StatusInternalServerError, errorBody{Message: msgInternalError})
}

// bindError maps a failed Bind. A JSON value of the wrong type is a field
// problem (422); anything else is a malformed body (400).
func bindError(c echo.Context, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if i := strings.LastIndex(field, "."); i >= 0 {
			field = field[i+1:]
		}
		msg := msgInvalid
		if typeErr.Type != nil && typeErr.Type.Kind() == reflect.Bool {
			msg = msgNotIncluded
		}
		return unprocessable(c, map[string][]string{field: {msg}})
	}
	return c.JSON(http.StatusBadRequest, errorBody{Message: msgInvalidBody})
}

func validationFields(err error) (map[string][]string, bool) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Fields, true
	}
	return nil, false
}
