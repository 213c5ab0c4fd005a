package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mrachkov/shop_cart/internal/events"
	"github.com/mrachkov/shop_cart/internal/logging"
	"github.com/mrachkov/shop_cart/internal/service"
)

type CartHTTP struct {
	Svc      *service.CartService
	Producer *events.Producer
}

func (h *CartHTTP) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, events.TopicCartEvents, fmt.Sprint(event["memberID"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka_publish_error", "error", err)
	}
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_cart")

	mID, err := memberID(c)
	if err != nil {
		l.Warn("get_cart_error", "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	items, err := h.Svc.GetCartProducts(ctx, mID)
	if err != nil {
		l.Error("get_cart_error", "error", err)
		return err
	}

	l.Info("get_cart_success")
	return c.JSON(http.StatusOK, items)
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_item")

	mID, err := memberID(c)
	if err != nil {
		l.Warn("add_to_cart_error", "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		l.Warn("add_to_cart_error", "status", 400, "reason", "product id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "product id is not an integer")
	}

	if err := h.Svc.AddToCart(ctx, mID, uint(productID)); err != nil {
		l.Warn("add_to_cart_error", "error", err)
		return err
	}

	h.publish(c, map[string]any{
		"type":      "cart_item_added",
		"memberID":  mID,
		"productID": productID,
	})

	l.Info("add_to_cart_success")
	return c.NoContent(http.StatusCreated)
}

func (h *CartHTTP) DeleteFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.delete_item")

	mID, err := memberID(c)
	if err != nil {
		l.Warn("delete_from_cart_error", "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		l.Warn("delete_from_cart_error", "status", 400, "reason", "product id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "product id is not an integer")
	}

	if err := h.Svc.DeleteFromCart(ctx, mID, uint(productID)); err != nil {
		l.Error("delete_from_cart_error", "error", err)
		return err
	}

	h.publish(c, map[string]any{
		"type":      "cart_item_removed",
		"memberID":  mID,
		"productID": productID,
	})

	l.Info("delete_from_cart_success")
	return c.NoContent(http.StatusOK)
}
