package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mrachkov/shop_cart/internal/service"
	"github.com/mrachkov/shop_cart/internal/transport"
)

// ErrorHandler is the single point where errors become HTTP statuses.
// Business-rule errors (not-found, duplicate, affected-rows mismatch) are
// client mistakes here and answer 400 with the message as body. Validation
// failures answer 400 with a field-to-message map. Everything unrecognized
// answers 500 with the raw message.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var verr *transport.ValidationError
	var herr *echo.HTTPError

	switch {
	case service.IsBusinessError(err):
		_ = c.String(http.StatusBadRequest, err.Error())
	case errors.As(err, &verr):
		_ = c.JSON(http.StatusBadRequest, verr.Fields)
	case errors.As(err, &herr):
		_ = c.String(herr.Code, fmt.Sprint(herr.Message))
	default:
		_ = c.String(http.StatusInternalServerError, err.Error())
	}
}
